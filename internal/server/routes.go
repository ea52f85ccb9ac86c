package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/metrics"
	"github.com/nfrund/instaclone/internal/middleware"
	"github.com/nfrund/instaclone/web/src/templates/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	guest := middleware.GuestOnly(pages.HomePath)
	loginLimiter := middleware.RateLimiter(s.Cfg.GetRateLimitPerMinute())
	signUpLimiter := middleware.RateLimiter(s.Cfg.GetRateLimitPerMinute())

	s.E.GET(pages.HomePath, s.homeHandler.HomeGet, middleware.RequireAuth(pages.LoginPath)).Name = "home"

	s.E.GET(pages.LoginPath, s.authHandler.LoginGet, guest).Name = "login"
	s.E.POST(pages.LoginValidatePath, s.authHandler.LoginValidate)
	s.E.POST(pages.LoginPath, s.authHandler.LoginPost, loginLimiter)
	s.E.POST(pages.LogoutPath, s.authHandler.Logout)

	s.E.GET(pages.SignUpPath, s.signUpHandler.SignUpGet, guest).Name = "signUp"
	s.E.POST(pages.SignUpValidatePath, s.signUpHandler.SignUpValidate)
	s.E.POST(pages.SignUpPath, s.signUpHandler.SignUpPost, signUpLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.GET(metrics.MetricsPath, echo.WrapHandler(metrics.Handler()))
}
