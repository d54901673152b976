package handler

import (
	"bloggo/auth"
	"bloggo/blog"
	"bloggo/domain"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	Blog          *blog.Service
	JWTSecret     string
	SignupAllowed bool
}

// layout carries the fields every page template reads.
type layout struct {
	User  *domain.User
	Error string
}

func (h *Handler) layout(c echo.Context) layout {
	return layout{User: auth.CurrentUser(c)}
}

// pathID parses a numeric path parameter. Anything else cannot name a row.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Invalid id %q.", c.Param(name)))
	}
	return id, nil
}

// validationError reports whether err is a form problem to show back to the user.
func validationError(err error) (*domain.ValidationError, bool) {
	var verr *domain.ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}

func postError(err error, id int64) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Post id %d doesn't exist.", id))
	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Access denied.")
	}
	return err
}

func commentError(err error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Comment id %d doesn't exist.", id))
	}
	return postError(err, 0)
}
