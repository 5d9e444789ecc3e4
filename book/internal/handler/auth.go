package handler

import (
	"net/http"

	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/pkg/openid"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const stateCookieMaxAge = 5 * 60

// Login starts the authorization-code flow.
func (h *Handler) Login(c echo.Context) error {
	state := uuid.NewString()
	authURL := h.idp.AuthURL(state)
	if authURL == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, openid.ErrDisabled.Error())
	}
	c.SetCookie(&http.Cookie{
		Name:     openid.StateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   stateCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes the login: the provider's identity is linked to a local user and a session cookie is issued.
func (h *Handler) Callback(c echo.Context) error {
	stateCookie, err := c.Cookie(openid.StateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return echo.NewHTTPError(http.StatusBadRequest, "state is invalid")
	}
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}

	ctx := c.Request().Context()
	identity, err := h.idp.Exchange(ctx, code)
	if err != nil {
		if errors.Is(err, openid.ErrDisabled) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		h.log.Warn("code exchange", zap.Error(err))
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	user, err := h.userSvc.FindOrCreate(ctx, model.IdentityClaims{
		ExternalID: identity.Subject,
		Email:      identity.Email,
		FullName:   identity.FullName,
	})
	if err != nil {
		return h.httpError(err)
	}

	token, exp, err := h.sessions.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return h.httpError(err)
	}
	c.SetCookie(h.sessions.Cookie(token, exp))
	c.SetCookie(&http.Cookie{
		Name:   openid.StateCookieName,
		Path:   "/",
		MaxAge: -1,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie())
	return c.NoContent(http.StatusNoContent)
}
