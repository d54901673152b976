package auth

import (
	"bloggo/domain"
	"context"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	claimsKey = "claims"
	userKey   = "currentUser"
)

const LoginPath = "/auth/login"

type UserLoader interface {
	UserByID(ctx context.Context, id int64) (*domain.User, error)
}

// Middleware resolves the session cookie into the current user. Requests without
// a valid cookie continue anonymously.
func Middleware(secret string, users UserLoader) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "cookie:" + CookieName,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return ParseToken(auth, secret)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(claimsKey).(*Claims)
			if !ok {
				return
			}
			id, err := claims.UserID()
			if err != nil {
				return
			}
			user, err := users.UserByID(c.Request().Context(), id)
			if err != nil {
				if err != domain.ErrNotFound {
					c.Logger().Errorf("load session user %d: %v", id, err)
				}
				return
			}
			SetCurrentUser(c, user)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// CurrentUser returns the authenticated user of the request, or nil.
func CurrentUser(c echo.Context) *domain.User {
	u, _ := c.Get(userKey).(*domain.User)
	return u
}

// SetCurrentUser attaches u to the request context.
func SetCurrentUser(c echo.Context, u *domain.User) {
	c.Set(userKey, u)
}

// RequireLogin redirects anonymous requests to the login form.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusFound, LoginPath)
		}
		return next(c)
	}
}
