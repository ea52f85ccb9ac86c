// Package authcookie stores the session token issued by a successful login.
package authcookie

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/domain"
)

// Name is the cookie carrying the session token.
const Name = "auth_token"

// Lifetime is how long a login lasts.
const Lifetime = 24 * time.Hour

// Set stores token in the auth cookie. An empty token expires the cookie.
func Set(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		// Secure only when served over TLS so local development keeps working.
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(Lifetime)
	}
	c.SetCookie(cookie)
}

// Clear expires the auth cookie.
func Clear(c echo.Context) {
	Set(c, "")
}

// Token returns the session token of the request, or "".
func Token(c echo.Context) string {
	cookie, err := c.Cookie(Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// LoggedIn reports whether the request carries a session token.
func LoggedIn(c echo.Context) bool {
	return Token(c) != ""
}

// Initializer starts a session by writing the token to the response of one request.
type Initializer struct {
	c echo.Context
}

var _ domain.SessionInitializer = (*Initializer)(nil)

// NewInitializer binds an Initializer to the current request.
func NewInitializer(c echo.Context) *Initializer {
	return &Initializer{c: c}
}

// Init implements domain.SessionInitializer.
func (i *Initializer) Init(_ context.Context, token string) error {
	Set(i.c, token)
	return nil
}
