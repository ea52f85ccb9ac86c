package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/authcookie"
)

// RequireAuth sends visitors without a session token to the login screen.
func RequireAuth(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !authcookie.LoggedIn(c) {
				return redirect(c, loginPath)
			}
			return next(c)
		}
	}
}

// GuestOnly sends logged-in users away from the login and sign-up screens.
func GuestOnly(homePath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authcookie.LoggedIn(c) {
				return redirect(c, homePath)
			}
			return next(c)
		}
	}
}

// redirect answers htmx requests with HX-Redirect so the whole page changes
// instead of the redirect target being swapped into a fragment.
func redirect(c echo.Context, to string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", to)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, to)
}
