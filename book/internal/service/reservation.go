package service

import (
	"context"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/book/internal/repository"
	"github.com/Astemirdum/book-service/pkg/auth"
	"github.com/Astemirdum/book-service/pkg/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService struct {
	log    *zap.Logger
	repo   repository.ReservationRepository
	books  repository.BookRepository
	events EventPublisher
}

func NewReservationService(
	repo repository.ReservationRepository,
	books repository.BookRepository,
	events EventPublisher,
	log *zap.Logger,
) *ReservationService {
	return &ReservationService{
		log:    log.Named("reservation"),
		repo:   repo,
		books:  books,
		events: events,
	}
}

// Create does not check for an existing active reservation of the same book by the same user.
func (s *ReservationService) Create(ctx context.Context, bookID, userID uuid.UUID) (model.Reservation, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return model.Reservation{}, err
	}
	if book == nil {
		return model.Reservation{}, errs.BookNotFound(bookID)
	}

	reservation, err := model.NewReservation(bookID, userID)
	if err != nil {
		return model.Reservation{}, err
	}
	if err := s.repo.Add(ctx, reservation); err != nil {
		return model.Reservation{}, err
	}

	publish(ctx, s.events, s.log, reservationEvent(kafka.EventReservationCreated, reservation))
	return reservation, nil
}

// GetByID answers NotFound both for a missing reservation and for one the principal may not see.
func (s *ReservationService) GetByID(
	ctx context.Context, p auth.Principal, bookID, reservationID uuid.UUID,
) (model.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	if reservation == nil || reservation.BookID != bookID {
		return model.Reservation{}, errs.ReservationNotFound(reservationID)
	}
	if !reservation.IsOwnedBy(p.UserID) && !p.IsAdmin() {
		s.log.Debug("reservation hidden from principal",
			zap.Stringer("reservationId", reservationID),
			zap.Stringer("userId", p.UserID))
		return model.Reservation{}, errs.ReservationNotFound(reservationID)
	}
	return *reservation, nil
}

func (s *ReservationService) Cancel(
	ctx context.Context, p auth.Principal, bookID, reservationID uuid.UUID,
) (model.Reservation, error) {
	reservation, err := s.GetByID(ctx, p, bookID, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	if err := reservation.Cancel(); err != nil {
		return model.Reservation{}, err
	}

	updated, err := s.repo.Update(ctx, reservation)
	if err != nil {
		return model.Reservation{}, err
	}
	if updated == nil || updated.Status != model.StatusCancelled {
		s.log.Error("cancel was not persisted", zap.Stringer("reservationId", reservationID))
		return model.Reservation{}, errs.OperationFailed(
			"Failed to update and retrieve reservation with ID %s", reservationID)
	}

	publish(ctx, s.events, s.log, reservationEvent(kafka.EventReservationCancelled, *updated))
	return *updated, nil
}

// ListPaged honours userID only for admins; everyone else sees their own reservations.
func (s *ReservationService) ListPaged(
	ctx context.Context, p auth.Principal, offset, limit int, userID *uuid.UUID,
) ([]model.Reservation, int, error) {
	if !p.IsAdmin() {
		own := p.UserID
		userID = &own
	}
	return s.repo.ListPaged(ctx, offset, limit, userID)
}
