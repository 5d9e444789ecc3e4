package handler

import (
	"context"

	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/book/internal/service"
	"github.com/Astemirdum/book-service/pkg/auth"
	"github.com/Astemirdum/book-service/pkg/openid"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Book, error)
	Create(ctx context.Context, in model.BookInput) (model.Book, error)
	Update(ctx context.Context, in model.BookInput, id uuid.UUID) (model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPaged(ctx context.Context, offset, limit int) ([]model.Book, int, error)
}

type ReservationService interface {
	Create(ctx context.Context, bookID, userID uuid.UUID) (model.Reservation, error)
	GetByID(ctx context.Context, p auth.Principal, bookID, reservationID uuid.UUID) (model.Reservation, error)
	Cancel(ctx context.Context, p auth.Principal, bookID, reservationID uuid.UUID) (model.Reservation, error)
	ListPaged(ctx context.Context, p auth.Principal, offset, limit int, userID *uuid.UUID) ([]model.Reservation, int, error)
}

type UserService interface {
	FindOrCreate(ctx context.Context, claims model.IdentityClaims) (model.User, error)
}

type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (openid.Identity, error)
}

var (
	_ BookService        = (*service.BookService)(nil)
	_ ReservationService = (*service.ReservationService)(nil)
	_ UserService        = (*service.UserService)(nil)
	_ IdentityProvider   = (*openid.Provider)(nil)
	_ IdentityProvider   = openid.Disabled{}
)
