// Package server wires the blog handlers into an echo instance.
package server

import (
	"bloggo/auth"
	"bloggo/blog"
	"bloggo/config"
	"bloggo/handler"
	"bloggo/store"
	"bloggo/web"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/acme/autocert"
)

func New(cfg *config.Config, s *store.Store) (*echo.Echo, error) {
	renderer, err := web.NewTemplateRegistry()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(auth.Middleware(cfg.JWTSecret, s))

	h := handler.Handler{
		Blog:          blog.New(s),
		JWTSecret:     cfg.JWTSecret,
		SignupAllowed: cfg.SignupAllowed(),
	}
	login := auth.RequireLogin

	// Blog
	e.GET("/", h.GetPosts)
	e.GET("/create", h.GetCreateForm, login)
	e.POST("/create", h.CreatePost, login)
	e.GET("/:id/update", h.GetUpdateForm, login)
	e.POST("/:id/update", h.UpdatePost, login)
	e.GET("/:id/delete", h.DeletePost, login)
	e.POST("/:id/delete", h.DeletePost, login)
	e.GET("/:id/view", h.ViewPost)
	e.POST("/:id/comment", h.Comment, login)
	e.GET("/:post_id/:id/delete_comment", h.DeleteComment, login)

	// Auth
	a := e.Group("/auth")
	a.GET("/register", h.GetRegisterForm)
	a.POST("/register", h.Register)
	a.GET("/login", h.GetLoginForm)
	a.POST("/login", h.Login)
	a.GET("/logout", h.Logout)

	e.StaticFS("/static", web.Static())

	return e, nil
}

// Start serves on cfg.Addr, or with automatic TLS on :443 when no address is set.
func Start(e *echo.Echo, cfg *config.Config) error {
	if cfg.Addr != "" {
		return e.Start(cfg.Addr)
	}

	e.AutoTLSManager.Cache = autocert.DirCache(cfg.TLSCacheDir)
	if cfg.WhitelistHost != "" {
		e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.WhitelistHost)
	}
	e.Pre(middleware.HTTPSRedirect())
	return e.StartAutoTLS(":443")
}
