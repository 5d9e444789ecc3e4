package handler

import (
	"fmt"

	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1"

func bookURL(c echo.Context, id uuid.UUID) string {
	return fmt.Sprintf("%s://%s%s/books/%s", c.Scheme(), c.Request().Host, apiPrefix, id)
}

func reservationURL(c echo.Context, r model.Reservation) string {
	return fmt.Sprintf("%s/reservations/%s", bookURL(c, r.BookID), r.ID)
}

func toBookOutput(c echo.Context, b model.Book) model.BookOutput {
	self := bookURL(c, b.ID)
	return model.BookOutput{
		ID:       b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Synopsis: b.Synopsis,
		Links: &model.Links{
			Self:         self,
			Reservations: self + "/reservations",
		},
	}
}

func toReservationOutput(r model.Reservation) model.ReservationOutput {
	return model.ReservationOutput{
		ID:         r.ID,
		BookID:     r.BookID,
		UserID:     r.UserID,
		ReservedAt: r.ReservedAt,
		State:      string(r.Status),
	}
}
