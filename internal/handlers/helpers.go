package handlers

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	formSessionName = "form-session"
	formKeyLoginID  = "login_form_id"
)

// csrfToken returns the token set by the CSRF middleware, or "" when the
// middleware is not installed.
func csrfToken(c echo.Context) string {
	token, _ := c.Get(echomw.DefaultCSRFConfig.ContextKey).(string)
	return token
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// redirectTo changes the whole page, also when the request came from htmx.
func redirectTo(c echo.Context, to string) error {
	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", to)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

// triggerField names the input that fired an htmx request. The "field"
// form value is accepted for clients that do not send HX-Trigger-Name.
func triggerField(c echo.Context) string {
	if name := c.Request().Header.Get("HX-Trigger-Name"); name != "" {
		return name
	}
	return c.FormValue("field")
}

func loginFormID(c echo.Context) string {
	sess, err := session.Get(formSessionName, c)
	if err != nil {
		return ""
	}
	id, _ := sess.Values[formKeyLoginID].(string)
	return id
}

func setLoginFormID(c echo.Context, id string) error {
	sess, err := session.Get(formSessionName, c)
	if err != nil {
		return err
	}
	if id == "" {
		delete(sess.Values, formKeyLoginID)
	} else {
		sess.Values[formKeyLoginID] = id
	}
	return sess.Save(c.Request(), c.Response())
}
