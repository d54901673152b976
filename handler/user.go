package handler

import (
	"bloggo/auth"
	"bloggo/domain"
	"net/http"

	"github.com/labstack/echo/v4"
)

type credentialsPage struct {
	layout
	Username string
}

func (h *Handler) GetLoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", credentialsPage{layout: h.layout(c)})
}

func (h *Handler) Login(c echo.Context) error {
	var form domain.CredentialsForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	user, err := h.Blog.Authenticate(c.Request().Context(), form)
	if verr, ok := validationError(err); ok {
		page := credentialsPage{layout: h.layout(c), Username: form.Username}
		page.Error = verr.Message
		return c.Render(http.StatusBadRequest, "login.html", page)
	}
	if err != nil {
		return err
	}

	cookie, err := auth.SessionCookie(user.ID, user.Username, h.JWTSecret)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) GetRegisterForm(c echo.Context) error {
	if !h.SignupAllowed {
		return errSignupDisabled
	}
	return c.Render(http.StatusOK, "register.html", credentialsPage{layout: h.layout(c)})
}

func (h *Handler) Register(c echo.Context) error {
	if !h.SignupAllowed {
		return errSignupDisabled
	}

	var form domain.CredentialsForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	user, err := h.Blog.Register(c.Request().Context(), form)
	if verr, ok := validationError(err); ok {
		page := credentialsPage{layout: h.layout(c), Username: form.Username}
		page.Error = verr.Message
		return c.Render(http.StatusBadRequest, "register.html", page)
	}
	if err != nil {
		return err
	}
	c.Logger().Infof("user %q registered", user.Username)

	return c.Redirect(http.StatusFound, auth.LoginPath)
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(auth.ExpiredCookie())
	return c.Redirect(http.StatusFound, "/")
}

var errSignupDisabled = echo.NewHTTPError(http.StatusForbidden, "Sign up has been disabled.")
