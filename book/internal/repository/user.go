package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/Astemirdum/book-service/book/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var userColumns = []string{"id", "external_id", "email", "full_name", "role", "created_at"}

type userRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, log *zap.Logger) *userRepository {
	return &userRepository{
		db:  db,
		log: log.Named("repo.user"),
	}
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"external_id": externalID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "GetByExternalID")
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "GetByExternalID")
	}
	return &user, nil
}

// Create returns errs.ErrUserExists when the external id is already linked to a user.
func (r *userRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(user.ID, user.ExternalID, user.Email, user.FullName, user.Role, user.CreatedAt).
		Suffix("returning " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, errors.Wrap(err, "Create")
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if _, ok := pgError(err, pgerrcode.UniqueViolation); ok {
			return model.User{}, errs.ErrUserExists
		}
		r.log.Error("Create", zap.String("external_id", user.ExternalID), zap.Error(err))
		return model.User{}, errors.Wrap(err, "Create")
	}
	return created, nil
}
