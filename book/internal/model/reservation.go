package model

import (
	"time"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusCancelled Status = "Cancelled"
)

type Reservation struct {
	ID         uuid.UUID `json:"id" db:"id"`
	BookID     uuid.UUID `json:"bookId" db:"book_id"`
	UserID     uuid.UUID `json:"userId" db:"user_id"`
	ReservedAt time.Time `json:"reservedAt" db:"reserved_at"`
	Status     Status    `json:"status" db:"status"`
}

// NewReservation starts an Active reservation of bookID held by userID.
func NewReservation(bookID, userID uuid.UUID) (Reservation, error) {
	if bookID == uuid.Nil {
		return Reservation{}, errs.Validation("bookId", "Book ID cannot be empty.")
	}
	if userID == uuid.Nil {
		return Reservation{}, errs.Validation("userId", "User ID cannot be empty.")
	}
	return Reservation{
		ID:         uuid.New(),
		BookID:     bookID,
		UserID:     userID,
		ReservedAt: time.Now().UTC().Truncate(time.Microsecond),
		Status:     StatusActive,
	}, nil
}

// Cancel moves an Active reservation to Cancelled. Cancelled is terminal.
func (r *Reservation) Cancel() error {
	if r.Status != StatusActive {
		return errs.InvalidState("Only an active reservation can be cancelled.")
	}
	r.Status = StatusCancelled
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}
