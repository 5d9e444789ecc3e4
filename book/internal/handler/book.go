package handler

import (
	"net/http"

	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/labstack/echo/v4"
)

// ListBooks
// @Summary List books
// @Tags books
// @Produce json
// @Param offset query int false "offset" default(0)
// @Param limit query int false "limit" default(20)
// @Success 200 {object} model.BookListResponse
// @Failure 400 {object} echo.HTTPError
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	offset, limit, err := pagingParams(c)
	if err != nil {
		return err
	}
	books, total, err := h.bookSvc.ListPaged(c.Request().Context(), offset, limit)
	if err != nil {
		return h.httpError(err)
	}

	items := make([]model.BookOutput, 0, len(books))
	for _, b := range books {
		items = append(items, toBookOutput(c, b))
	}
	return c.JSON(http.StatusOK, model.BookListResponse{
		Items: items,
		Paging: model.Paging{
			TotalCount: total,
			Offset:     offset,
			Limit:      limit,
		},
	})
}

// GetBook
// @Summary Get a book
// @Tags books
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {object} model.BookOutput
// @Failure 404 {object} echo.HTTPError
// @Router /books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathUUID(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, toBookOutput(c, book))
}

// CreateBook
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.BookInput true "book"
// @Success 201 {object} model.BookOutput
// @Failure 400 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var in model.BookInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.Create(c.Request().Context(), in)
	if err != nil {
		return h.httpError(err)
	}
	out := toBookOutput(c, book)
	c.Response().Header().Set(echo.HeaderLocation, out.Links.Self)
	return c.JSON(http.StatusCreated, out)
}

// UpdateBook
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path string true "book id"
// @Param book body model.BookInput true "book"
// @Success 200 {object} model.BookOutput
// @Failure 404 {object} echo.HTTPError
// @Router /books/{bookId} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathUUID(c, "bookId")
	if err != nil {
		return err
	}
	var in model.BookInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.Update(c.Request().Context(), in, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, toBookOutput(c, book))
}

// DeleteBook
// @Summary Delete a book without reservations
// @Tags books
// @Param bookId path string true "book id"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /books/{bookId} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathUUID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.bookSvc.Delete(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
