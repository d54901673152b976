package handler

import (
	"bloggo/auth"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorPage struct {
	layout
	Code    int
	Status  string
	Message string
}

// ErrorHandler renders terminal request errors as an HTML page.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}
	if code != http.StatusNotFound {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			c.Logger().Error(err)
		}
		return
	}

	page := errorPage{
		layout:  layout{User: auth.CurrentUser(c)},
		Code:    code,
		Status:  http.StatusText(code),
		Message: message,
	}
	if err := c.Render(code, "error.html", page); err != nil {
		c.Logger().Error(err)
		c.String(code, message)
	}
}
