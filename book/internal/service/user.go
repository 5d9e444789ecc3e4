package service

import (
	"context"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/book/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type UserService struct {
	log  *zap.Logger
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{
		log:  log.Named("user"),
		repo: repo,
	}
}

// FindOrCreate returns the user linked to the external identity, creating it on first login.
// A known user is returned as stored; later changes of email or name are not applied.
func (s *UserService) FindOrCreate(ctx context.Context, claims model.IdentityClaims) (model.User, error) {
	if claims.ExternalID == "" || claims.Email == "" || claims.FullName == "" {
		return model.User{}, errs.MissingClaims()
	}

	user, err := s.repo.GetByExternalID(ctx, claims.ExternalID)
	if err != nil {
		return model.User{}, err
	}
	if user != nil {
		return *user, nil
	}

	created, err := s.repo.Create(ctx, model.NewUser(claims.ExternalID, claims.Email, claims.FullName))
	if err == nil {
		s.log.Info("user created", zap.Stringer("id", created.ID), zap.String("externalId", claims.ExternalID))
		return created, nil
	}
	if !errors.Is(err, errs.ErrUserExists) {
		return model.User{}, err
	}

	// a concurrent first login created the row
	user, err = s.repo.GetByExternalID(ctx, claims.ExternalID)
	if err != nil {
		return model.User{}, err
	}
	if user == nil {
		return model.User{}, errs.OperationFailed("Failed to create user for external id %s", claims.ExternalID)
	}
	return *user, nil
}
