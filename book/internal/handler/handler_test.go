package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/Astemirdum/book-service/book/internal/handler"
	"github.com/Astemirdum/book-service/book/internal/model"
	"github.com/Astemirdum/book-service/pkg/auth"
	"github.com/Astemirdum/book-service/pkg/openid"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/book-service/book/internal/handler/mocks"
)

const host = "http://example.com"

type mocks struct {
	books        *service_mocks.MockBookService
	reservations *service_mocks.MockReservationService
	users        *service_mocks.MockUserService
	idp          *service_mocks.MockIdentityProvider
}

func newRouter(t *testing.T) (*echo.Echo, mocks, *auth.Sessions) {
	t.Helper()
	c := gomock.NewController(t)
	m := mocks{
		books:        service_mocks.NewMockBookService(c),
		reservations: service_mocks.NewMockReservationService(c),
		users:        service_mocks.NewMockUserService(c),
		idp:          service_mocks.NewMockIdentityProvider(c),
	}
	sessions := auth.NewSessions(auth.Config{Secret: "test-secret", CookieName: "access_token", TTL: time.Hour})
	h := handler.New(m.books, m.reservations, m.users, m.idp, sessions, zap.NewNop())
	return h.NewRouter(), m, sessions
}

type caller struct {
	id   uuid.UUID
	role string
}

var (
	anonymous = caller{}
	alice     = caller{id: uuid.New(), role: auth.RoleUser}
	root      = caller{id: uuid.New(), role: auth.RoleAdmin}
)

func (c caller) principal() auth.Principal {
	roles := []string{auth.RoleUser}
	if c.role == auth.RoleAdmin {
		roles = append(roles, auth.RoleAdmin)
	}
	return auth.Principal{UserID: c.id, Roles: roles}
}

func do(t *testing.T, e *echo.Echo, s *auth.Sessions, who caller, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, http.NoBody)
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if who.id != uuid.Nil {
		token, exp, err := s.Issue(who.id, who.role, "")
		require.NoError(t, err)
		r.AddCookie(s.Cookie(token, exp))
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func trimmed(w *httptest.ResponseRecorder) string {
	return strings.Trim(w.Body.String(), "\n")
}

func bookJSON(b model.Book) string {
	self := fmt.Sprintf("%s/api/v1/books/%s", host, b.ID)
	return fmt.Sprintf(`{"id":"%s","title":"%s","author":"%s","synopsis":"%s","links":{"self":"%s","reservations":"%s/reservations"}}`,
		b.ID, b.Title, b.Author, b.Synopsis, self, self)
}

func reservationJSON(r model.Reservation) string {
	return fmt.Sprintf(`{"id":"%s","bookId":"%s","userId":"%s","reservedAt":"%s","state":"%s"}`,
		r.ID, r.BookID, r.UserID, r.ReservedAt.Format(time.RFC3339Nano), r.Status)
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: uuid.New(), Title: "Dune", Author: "Frank Herbert", Synopsis: "spice"}

	tests := []struct {
		name         string
		target       string
		mockBehavior func(m mocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			target: "/api/v1/books/" + book.ID.String(),
			mockBehavior: func(m mocks) {
				m.books.EXPECT().GetByID(gomock.Any(), book.ID).Return(book, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: bookJSON(book),
		},
		{
			name:   "not found",
			target: "/api/v1/books/" + book.ID.String(),
			mockBehavior: func(m mocks) {
				m.books.EXPECT().GetByID(gomock.Any(), book.ID).Return(model.Book{}, errs.BookNotFound(book.ID))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: fmt.Sprintf(`{"message":"Book not found with id: %s"}`, book.ID),
		},
		{
			name:         "bad id",
			target:       "/api/v1/books/42",
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"bookId is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, s := newRouter(t)
			tt.mockBehavior(m)

			w := do(t, e, s, anonymous, http.MethodGet, tt.target, "")
			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, trimmed(w))
		})
	}
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: uuid.New(), Title: "Dune", Author: "Frank Herbert"}

	tests := []struct {
		name         string
		query        string
		mockBehavior func(m mocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "defaults",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().ListPaged(gomock.Any(), 0, 20).Return([]model.Book{book}, 1, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[` + bookJSON(book) + `],"totalCount":1,"offset":0,"limit":20}`,
		},
		{
			name:  "past the end",
			query: "?offset=40&limit=10",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().ListPaged(gomock.Any(), 40, 10).Return(nil, 3, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[],"totalCount":3,"offset":40,"limit":10}`,
		},
		{
			name:         "negative offset",
			query:        "?offset=-1",
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"offset is invalid"}`,
		},
		{
			name:         "zero limit",
			query:        "?limit=0",
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"limit is invalid"}`,
		},
		{
			name:         "limit too large",
			query:        "?limit=101",
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"limit is invalid"}`,
		},
		{
			name:  "internal",
			query: "?limit=5",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().ListPaged(gomock.Any(), 0, 5).Return(nil, 0, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"db internal"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, s := newRouter(t)
			tt.mockBehavior(m)

			w := do(t, e, s, anonymous, http.MethodGet, "/api/v1/books"+tt.query, "")
			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, trimmed(w))
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: uuid.New(), Title: "Dune", Author: "Frank Herbert"}
	in := model.BookInput{Title: "Dune", Author: "Frank Herbert"}

	tests := []struct {
		name         string
		who          caller
		body         string
		mockBehavior func(m mocks)
		expectedCode int
		location     string
	}{
		{
			name: "ok",
			who:  root,
			body: `{"title":"Dune","author":"Frank Herbert"}`,
			mockBehavior: func(m mocks) {
				m.books.EXPECT().Create(gomock.Any(), in).Return(book, nil)
			},
			expectedCode: http.StatusCreated,
			location:     fmt.Sprintf("%s/api/v1/books/%s", host, book.ID),
		},
		{
			name:         "anonymous",
			who:          anonymous,
			body:         `{"title":"Dune","author":"Frank Herbert"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "not an admin",
			who:          alice,
			body:         `{"title":"Dune","author":"Frank Herbert"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "missing title",
			who:          root,
			body:         `{"author":"Frank Herbert"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			who:          root,
			body:         `{"title":`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "blank title",
			who:  root,
			body: `{"title":"   ","author":"Frank Herbert"}`,
			mockBehavior: func(m mocks) {
				m.books.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(model.Book{}, errs.Validation("title", "Title cannot be empty."))
			},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, s := newRouter(t)
			tt.mockBehavior(m)

			w := do(t, e, s, tt.who, http.MethodPost, "/api/v1/books", tt.body)
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.location != "" {
				require.Equal(t, tt.location, w.Header().Get(echo.HeaderLocation))
				require.Equal(t, bookJSON(book), trimmed(w))
			}
		})
	}
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	in := model.BookInput{Title: "Dune", Author: "Frank Herbert", Synopsis: "spice"}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		book := model.Book{ID: id, Title: in.Title, Author: in.Author, Synopsis: in.Synopsis}
		m.books.EXPECT().Update(gomock.Any(), in, id).Return(book, nil)

		w := do(t, e, s, root, http.MethodPut, "/api/v1/books/"+id.String(),
			`{"title":"Dune","author":"Frank Herbert","synopsis":"spice"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, bookJSON(book), trimmed(w))
	})
	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		m.books.EXPECT().Update(gomock.Any(), in, id).Return(model.Book{}, errs.BookNotFound(id))

		w := do(t, e, s, root, http.MethodPut, "/api/v1/books/"+id.String(),
			`{"title":"Dune","author":"Frank Herbert","synopsis":"spice"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	tests := []struct {
		name         string
		who          caller
		mockBehavior func(m mocks)
		expectedCode int
	}{
		{
			name: "ok",
			who:  root,
			mockBehavior: func(m mocks) {
				m.books.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "has reservations",
			who:  root,
			mockBehavior: func(m mocks) {
				m.books.EXPECT().Delete(gomock.Any(), id).Return(errs.BookHasReservations(id))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "not found",
			who:  root,
			mockBehavior: func(m mocks) {
				m.books.EXPECT().Delete(gomock.Any(), id).Return(errs.BookNotFound(id))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "not an admin",
			who:          alice,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, s := newRouter(t)
			tt.mockBehavior(m)

			w := do(t, e, s, tt.who, http.MethodDelete, "/api/v1/books/"+id.String(), "")
			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	bookID := uuid.New()
	reservation := model.Reservation{
		ID:         uuid.New(),
		BookID:     bookID,
		UserID:     alice.id,
		ReservedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:     model.StatusActive,
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		m.reservations.EXPECT().Create(gomock.Any(), bookID, alice.id).Return(reservation, nil)

		w := do(t, e, s, alice, http.MethodPost, fmt.Sprintf("/api/v1/books/%s/reservations", bookID), "")
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t,
			fmt.Sprintf("%s/api/v1/books/%s/reservations/%s", host, bookID, reservation.ID),
			w.Header().Get(echo.HeaderLocation))
		require.Equal(t, reservationJSON(reservation), trimmed(w))
	})
	t.Run("book not found", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		m.reservations.EXPECT().Create(gomock.Any(), bookID, alice.id).Return(model.Reservation{}, errs.BookNotFound(bookID))

		w := do(t, e, s, alice, http.MethodPost, fmt.Sprintf("/api/v1/books/%s/reservations", bookID), "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		e, _, s := newRouter(t)

		w := do(t, e, s, anonymous, http.MethodPost, fmt.Sprintf("/api/v1/books/%s/reservations", bookID), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_GetReservation(t *testing.T) {
	t.Parallel()
	bookID, reservationID := uuid.New(), uuid.New()
	target := fmt.Sprintf("/api/v1/books/%s/reservations/%s", bookID, reservationID)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		reservation := model.Reservation{
			ID: reservationID, BookID: bookID, UserID: alice.id,
			ReservedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), Status: model.StatusActive,
		}
		m.reservations.EXPECT().GetByID(gomock.Any(), alice.principal(), bookID, reservationID).Return(reservation, nil)

		w := do(t, e, s, alice, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, reservationJSON(reservation), trimmed(w))
	})
	t.Run("hidden", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		m.reservations.EXPECT().GetByID(gomock.Any(), alice.principal(), bookID, reservationID).
			Return(model.Reservation{}, errs.ReservationNotFound(reservationID))

		w := do(t, e, s, alice, http.MethodGet, target, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, fmt.Sprintf(`{"message":"Reservation not found with id: %s"}`, reservationID), trimmed(w))
	})
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	bookID, reservationID := uuid.New(), uuid.New()
	target := fmt.Sprintf("/api/v1/books/%s/reservations/%s", bookID, reservationID)
	cancelled := model.Reservation{
		ID: reservationID, BookID: bookID, UserID: alice.id,
		ReservedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), Status: model.StatusCancelled,
	}

	tests := []struct {
		name         string
		mockBehavior func(m mocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks) {
				m.reservations.EXPECT().Cancel(gomock.Any(), alice.principal(), bookID, reservationID).Return(cancelled, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: reservationJSON(cancelled),
		},
		{
			name: "already cancelled",
			mockBehavior: func(m mocks) {
				m.reservations.EXPECT().Cancel(gomock.Any(), alice.principal(), bookID, reservationID).
					Return(model.Reservation{}, errs.InvalidState("Only an active reservation can be cancelled."))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"Only an active reservation can be cancelled."}`,
		},
		{
			name: "lost update",
			mockBehavior: func(m mocks) {
				m.reservations.EXPECT().Cancel(gomock.Any(), alice.principal(), bookID, reservationID).
					Return(model.Reservation{}, errs.OperationFailed("Failed to update and retrieve reservation with ID %s", reservationID))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: fmt.Sprintf(`{"message":"Failed to update and retrieve reservation with ID %s"}`, reservationID),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, s := newRouter(t)
			tt.mockBehavior(m)

			w := do(t, e, s, alice, http.MethodDelete, target, "")
			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, trimmed(w))
		})
	}
}

func TestHandler_ListReservations(t *testing.T) {
	t.Parallel()
	other := uuid.New()

	tests := []struct {
		name         string
		who          caller
		query        string
		mockBehavior func(m mocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "user filter is passed through",
			who:   alice,
			query: "?userId=" + other.String(),
			mockBehavior: func(m mocks) {
				m.reservations.EXPECT().ListPaged(gomock.Any(), alice.principal(), 0, 20, &other).Return(nil, 0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[],"totalCount":0,"offset":0,"limit":20}`,
		},
		{
			name:  "admin without filter",
			who:   root,
			query: "?offset=2&limit=2",
			mockBehavior: func(m mocks) {
				m.reservations.EXPECT().ListPaged(gomock.Any(), root.principal(), 2, 2, nil).Return(nil, 7, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[],"totalCount":7,"offset":2,"limit":2}`,
		},
		{
			name:         "bad user id",
			who:          alice,
			query:        "?userId=nope",
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"userId is invalid"}`,
		},
		{
			name:         "anonymous",
			who:          anonymous,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"No session cookie"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m, s := newRouter(t)
			tt.mockBehavior(m)

			w := do(t, e, s, tt.who, http.MethodGet, "/api/v1/reservations"+tt.query, "")
			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, trimmed(w))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("redirects to the provider", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		m.idp.EXPECT().AuthURL(gomock.Any()).DoAndReturn(func(state string) string {
			return "https://idp.example.com/authorize?state=" + state
		})

		w := do(t, e, s, anonymous, http.MethodGet, "/api/v1/login", "")
		require.Equal(t, http.StatusFound, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, openid.StateCookieName, cookies[0].Name)
		require.Equal(t, "https://idp.example.com/authorize?state="+cookies[0].Value, w.Header().Get(echo.HeaderLocation))
	})
	t.Run("provider disabled", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		m.idp.EXPECT().AuthURL(gomock.Any()).Return("")

		w := do(t, e, s, anonymous, http.MethodGet, "/api/v1/login", "")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandler_Callback(t *testing.T) {
	t.Parallel()
	identity := openid.Identity{Subject: "google|1", Email: "jane@example.com", FullName: "Jane Doe"}
	user := model.User{ID: uuid.New(), ExternalID: identity.Subject, Email: identity.Email, FullName: identity.FullName, Role: model.RoleUser}

	callback := func(t *testing.T, e *echo.Echo, state, cookieState string) *httptest.ResponseRecorder {
		t.Helper()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/callback?code=abc&state="+state, http.NoBody)
		r.AddCookie(&http.Cookie{Name: openid.StateCookieName, Value: cookieState})
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		return w
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, m, s := newRouter(t)
		m.idp.EXPECT().Exchange(gomock.Any(), "abc").Return(identity, nil)
		m.users.EXPECT().FindOrCreate(gomock.Any(), model.IdentityClaims{
			ExternalID: identity.Subject,
			Email:      identity.Email,
			FullName:   identity.FullName,
		}).Return(user, nil)

		w := callback(t, e, "xyz", "xyz")
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/", w.Header().Get(echo.HeaderLocation))

		var session *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == "access_token" {
				session = c
			}
		}
		require.NotNil(t, session)
		p, err := s.Parse(session.Value)
		require.NoError(t, err)
		require.Equal(t, user.ID, p.UserID)
		require.False(t, p.IsAdmin())
	})
	t.Run("state mismatch", func(t *testing.T) {
		t.Parallel()
		e, _, _ := newRouter(t)

		w := callback(t, e, "xyz", "other")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("missing claims", func(t *testing.T) {
		t.Parallel()
		e, m, _ := newRouter(t)
		m.idp.EXPECT().Exchange(gomock.Any(), "abc").Return(openid.Identity{Subject: "google|1"}, nil)
		m.users.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(model.User{}, errs.MissingClaims())

		w := callback(t, e, "xyz", "xyz")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"User claims are missing required information."}`, trimmed(w))
	})
	t.Run("exchange failed", func(t *testing.T) {
		t.Parallel()
		e, m, _ := newRouter(t)
		m.idp.EXPECT().Exchange(gomock.Any(), "abc").Return(openid.Identity{}, context.DeadlineExceeded)

		w := callback(t, e, "xyz", "xyz")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()
	e, _, s := newRouter(t)

	w := do(t, e, s, alice, http.MethodPost, "/api/v1/logout", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "access_token", cookies[0].Name)
	require.Equal(t, -1, cookies[0].MaxAge)
}
