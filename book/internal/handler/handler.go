package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/Astemirdum/book-service/pkg/auth"
	md "github.com/Astemirdum/book-service/pkg/middleware"
	"github.com/Astemirdum/book-service/pkg/serializer"
	"github.com/Astemirdum/book-service/pkg/validate"
	_ "github.com/Astemirdum/book-service/swagger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	bookSvc        BookService
	reservationSvc ReservationService
	userSvc        UserService
	idp            IdentityProvider
	sessions       *auth.Sessions
	log            *zap.Logger
}

func New(
	bookSvc BookService,
	reservationSvc ReservationService,
	userSvc UserService,
	idp IdentityProvider,
	sessions *auth.Sessions,
	log *zap.Logger,
) *Handler {
	return &Handler{
		bookSvc:        bookSvc,
		reservationSvc: reservationSvc,
		userSvc:        userSvc,
		idp:            idp,
		sessions:       sessions,
		log:            log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()
	e.JSONSerializer = serializer.JSONSerializer{}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/login", h.Login)
	api.GET("/callback", h.Callback)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookId", h.GetBook)

	authed := api.Group("", h.sessions.Middleware)
	authed.POST("/logout", h.Logout)
	authed.POST("/books/:bookId/reservations", h.CreateReservation)
	authed.GET("/books/:bookId/reservations/:reservationId", h.GetReservation)
	authed.DELETE("/books/:bookId/reservations/:reservationId", h.CancelReservation)
	authed.GET("/reservations", h.ListReservations)

	admin := authed.Group("", auth.RequireRole(auth.RoleAdmin))
	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:bookId", h.UpdateBook)
	admin.DELETE("/books/:bookId", h.DeleteBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError is the one place where domain error kinds become status codes.
func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrAuthenticationData):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	h.log.Error("internal error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func pagingParams(c echo.Context) (offset, limit int, err error) {
	limit = defaultLimit
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if offset, err = strconv.Atoi(offsetParam); err != nil || offset < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "offset is invalid")
		}
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if limit, err = strconv.Atoi(limitParam); err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
	}
	return offset, limit, nil
}
