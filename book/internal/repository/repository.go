package repository

import (
	"context"

	"github.com/Astemirdum/book-service/book/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type BookRepository interface {
	// GetByID returns nil when the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Create(ctx context.Context, book model.Book) error
	Update(ctx context.Context, book model.Book) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListPaged(ctx context.Context, offset, limit int) ([]model.Book, int, error)
}

type ReservationRepository interface {
	Add(ctx context.Context, reservation model.Reservation) error
	// GetByID returns nil when the reservation does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	// Update replaces the stored reservation and returns the row as persisted, or nil if nothing was replaced.
	Update(ctx context.Context, reservation model.Reservation) (*model.Reservation, error)
	// ListPaged computes the filtered total and the page in one statement. A nil userID means no filter.
	ListPaged(ctx context.Context, offset, limit int, userID *uuid.UUID) ([]model.Reservation, int, error)
	HasReservationsForBook(ctx context.Context, bookID uuid.UUID) (bool, error)
}

type UserRepository interface {
	// GetByExternalID returns nil when no user is linked to externalID.
	GetByExternalID(ctx context.Context, externalID string) (*model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
}

const (
	booksTableName        = `books`
	reservationsTableName = `reservations`
	usersTableName        = `users`

	reservationsBookFK = `reservations_book_id_fkey`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func pgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}
