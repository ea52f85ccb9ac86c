package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/instaclone/internal/config"
	"github.com/nfrund/instaclone/internal/handlers"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/nfrund/instaclone/internal/metrics"
	"github.com/nfrund/instaclone/internal/middleware"
	"github.com/nfrund/instaclone/internal/rendering"
	"github.com/nfrund/instaclone/internal/signupform"
	"github.com/nfrund/instaclone/web"
)

// Dependencies are the services the server wires into its handlers.
type Dependencies struct {
	Config          config.Provider
	Renderer        *rendering.UniversalRenderer
	LoginForms      *loginform.Store
	LoginSubmitter  *loginform.Submitter
	SignUpSubmitter *signupform.Submitter
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E             *echo.Echo
	Cfg           config.Provider
	homeHandler   *handlers.HomeHandler
	authHandler   *handlers.AuthHandler
	signUpHandler *handlers.SignUpHandler
}

// New creates a Server with its middleware chain installed. Routes are added
// by RegisterRoutes.
func New(deps Dependencies) *Server {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(requestLogger())
	e.Use(echomw.Recover())
	e.Use(metrics.Middleware)
	e.Use(echomw.Secure())
	e.Use(session.Middleware(newSessionStore(cfg)))
	e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == "/health" || p == metrics.MetricsPath
		},
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   !cfg.IsDevelopment(),
		CookieSameSite: http.SameSiteLaxMode,
	}))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:             e,
		Cfg:           cfg,
		homeHandler:   handlers.NewHomeHandler(),
		authHandler:   handlers.NewAuthHandler(deps.LoginForms, deps.LoginSubmitter),
		signUpHandler: handlers.NewSignUpHandler(deps.SignUpSubmitter, deps.LoginForms),
	}
}

func newSessionStore(cfg config.Provider) *sessions.CookieStore {
	keys := [][]byte{[]byte(cfg.GetSessionSecret())}
	if enc := cfg.GetSessionEncryptionKey(); enc != "" {
		keys = append(keys, []byte(enc))
	}
	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

// setupErrorHandling logs unexpected errors with a stack trace before the
// default handler writes the response. echo.HTTPErrors are expected and are
// passed straight through.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// Middleware that already answered, like the rate limiter, reports nil.
		if err == nil {
			return
		}
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
