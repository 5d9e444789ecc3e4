package service

import (
	"context"
	"time"

	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/pkg/kafka"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=events.go -destination=mocks/mock.go

type EventPublisher interface {
	Publish(ctx context.Context, event kafka.Event) error
}

// publish never fails the calling operation; the event stream is best effort.
func publish(ctx context.Context, events EventPublisher, log *zap.Logger, event kafka.Event) {
	event.Timestamp = time.Now().UTC()
	if err := events.Publish(ctx, event); err != nil {
		log.Warn("publish event",
			zap.String("type", string(event.Type)),
			zap.String("bookId", event.BookID),
			zap.Error(err))
	}
}

func reservationEvent(typ kafka.EventType, r model.Reservation) kafka.Event {
	return kafka.Event{
		Type:          typ,
		ReservationID: r.ID.String(),
		BookID:        r.BookID.String(),
		UserID:        r.UserID.String(),
		Status:        string(r.Status),
	}
}
