package handler

import (
	"net/http"

	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/pkg/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateReservation
// @Summary Reserve a book
// @Tags reservations
// @Produce json
// @Param bookId path string true "book id"
// @Success 201 {object} model.ReservationOutput
// @Failure 404 {object} echo.HTTPError
// @Router /books/{bookId}/reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	p, err := auth.GetPrincipal(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID, err := pathUUID(c, "bookId")
	if err != nil {
		return err
	}

	reservation, err := h.reservationSvc.Create(c.Request().Context(), bookID, p.UserID)
	if err != nil {
		return h.httpError(err)
	}
	c.Response().Header().Set(echo.HeaderLocation, reservationURL(c, reservation))
	return c.JSON(http.StatusCreated, toReservationOutput(reservation))
}

// GetReservation
// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Param bookId path string true "book id"
// @Param reservationId path string true "reservation id"
// @Success 200 {object} model.ReservationOutput
// @Failure 404 {object} echo.HTTPError
// @Router /books/{bookId}/reservations/{reservationId} [get]
func (h *Handler) GetReservation(c echo.Context) error {
	p, bookID, reservationID, err := reservationParams(c)
	if err != nil {
		return err
	}
	reservation, err := h.reservationSvc.GetByID(c.Request().Context(), p, bookID, reservationID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, toReservationOutput(reservation))
}

// CancelReservation
// @Summary Cancel a reservation
// @Tags reservations
// @Produce json
// @Param bookId path string true "book id"
// @Param reservationId path string true "reservation id"
// @Success 200 {object} model.ReservationOutput
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /books/{bookId}/reservations/{reservationId} [delete]
func (h *Handler) CancelReservation(c echo.Context) error {
	p, bookID, reservationID, err := reservationParams(c)
	if err != nil {
		return err
	}
	reservation, err := h.reservationSvc.Cancel(c.Request().Context(), p, bookID, reservationID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, toReservationOutput(reservation))
}

// ListReservations accepts userId from anyone; only admins actually get it applied.
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Param offset query int false "offset" default(0)
// @Param limit query int false "limit" default(20)
// @Param userId query string false "owner filter, admins only"
// @Success 200 {object} model.ReservationListResponse
// @Failure 400 {object} echo.HTTPError
// @Router /reservations [get]
func (h *Handler) ListReservations(c echo.Context) error {
	p, err := auth.GetPrincipal(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	offset, limit, err := pagingParams(c)
	if err != nil {
		return err
	}
	var userID *uuid.UUID
	if userParam := c.QueryParam("userId"); userParam != "" {
		id, err := uuid.Parse(userParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "userId is invalid")
		}
		userID = &id
	}

	reservations, total, err := h.reservationSvc.ListPaged(c.Request().Context(), p, offset, limit, userID)
	if err != nil {
		return h.httpError(err)
	}
	items := make([]model.ReservationOutput, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, toReservationOutput(r))
	}
	return c.JSON(http.StatusOK, model.ReservationListResponse{
		Items: items,
		Paging: model.Paging{
			TotalCount: total,
			Offset:     offset,
			Limit:      limit,
		},
	})
}

func reservationParams(c echo.Context) (auth.Principal, uuid.UUID, uuid.UUID, error) {
	p, err := auth.GetPrincipal(c)
	if err != nil {
		return auth.Principal{}, uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID, err := pathUUID(c, "bookId")
	if err != nil {
		return auth.Principal{}, uuid.Nil, uuid.Nil, err
	}
	reservationID, err := pathUUID(c, "reservationId")
	if err != nil {
		return auth.Principal{}, uuid.Nil, uuid.Nil, err
	}
	return p, bookID, reservationID, nil
}
