package service

import (
	"context"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/book/internal/repository"
	"github.com/Astemirdum/book-service/pkg/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookService struct {
	log          *zap.Logger
	repo         repository.BookRepository
	reservations repository.ReservationRepository
	events       EventPublisher
}

func NewBookService(
	repo repository.BookRepository,
	reservations repository.ReservationRepository,
	events EventPublisher,
	log *zap.Logger,
) *BookService {
	return &BookService{
		log:          log.Named("book"),
		repo:         repo,
		reservations: reservations,
		events:       events,
	}
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	if book == nil {
		return model.Book{}, errs.BookNotFound(id)
	}
	return *book, nil
}

func (s *BookService) Create(ctx context.Context, in model.BookInput) (model.Book, error) {
	book, err := model.NewBook(in.Title, in.Author, in.Synopsis)
	if err != nil {
		return model.Book{}, err
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return model.Book{}, err
	}
	s.log.Debug("book created", zap.Stringer("id", book.ID))
	return book, nil
}

func (s *BookService) Update(ctx context.Context, in model.BookInput, id uuid.UUID) (model.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	if err := book.Update(in.Title, in.Author, in.Synopsis); err != nil {
		return model.Book{}, err
	}
	if err := s.repo.Update(ctx, book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// Delete refuses to remove a book that any reservation, active or cancelled, still references.
func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	has, err := s.reservations.HasReservationsForBook(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return errs.BookHasReservations(id)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.BookNotFound(id)
	}
	publish(ctx, s.events, s.log, kafka.Event{
		Type:   kafka.EventBookDeleted,
		BookID: id.String(),
	})
	return nil
}

func (s *BookService) ListPaged(ctx context.Context, offset, limit int) ([]model.Book, int, error) {
	return s.repo.ListPaged(ctx, offset, limit)
}
