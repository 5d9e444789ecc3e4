package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"

	principalKey = "principal"
)

var ErrNoSession = errors.New("no session")

type Config struct {
	Secret     string        `json:"-" envconfig:"SESSION_SECRET"`
	CookieName string        `envconfig:"SESSION_COOKIE" default:"access_token"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	Secure     bool          `envconfig:"SESSION_SECURE"`
}

// Principal is the identity of the caller of the in-flight request.
type Principal struct {
	UserID uuid.UUID
	Roles  []string
}

func (p Principal) HasRole(role string) bool {
	for i := range p.Roles {
		if p.Roles[i] == role {
			return true
		}
	}
	return false
}

func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Sessions struct {
	cfg    Config
	secret []byte
	now    func() time.Time
}

func NewSessions(cfg Config) *Sessions {
	return &Sessions{
		cfg:    cfg,
		secret: []byte(cfg.Secret),
		now:    time.Now,
	}
}

// Issue signs a session token for userID. The subject is the internal user id.
func (s *Sessions) Issue(userID uuid.UUID, role, email string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.cfg.TTL)
	claims := Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *Sessions) Parse(tokenStr string) (Principal, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return Principal{}, errors.Wrap(ErrNoSession, "invalid token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, errors.Wrap(ErrNoSession, "invalid subject")
	}
	roles := []string{RoleUser}
	if claims.Role != "" && claims.Role != RoleUser {
		roles = append(roles, claims.Role)
	}
	return Principal{UserID: userID, Roles: roles}, nil
}

func (s *Sessions) Cookie(token string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Sessions) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Middleware resolves the principal from the session cookie and rejects anonymous requests.
func (s *Sessions) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(s.cfg.CookieName)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "No session cookie")
		}
		p, err := s.Parse(cookie.Value)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session")
		}
		c.Set(principalKey, p)
		return next(c)
	}
}

// RequireRole must run after Middleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := GetPrincipal(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			if !p.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient role")
			}
			return next(c)
		}
	}
}

type Get interface {
	Get(string) any
}

func GetPrincipal(getter Get) (Principal, error) {
	p, ok := getter.Get(principalKey).(Principal)
	if !ok {
		return Principal{}, ErrNoSession
	}
	return p, nil
}
