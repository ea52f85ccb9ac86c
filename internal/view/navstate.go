package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// navKeyFormID names a form mounted for the next screen. Only the opaque ID
// travels in the cookie; the carried values stay on the server.
const navKeyFormID = "nav_form_id"

// HandOffForm tells the next screen to adopt the form with id instead of
// mounting an empty one.
func HandOffForm(c echo.Context, id string) error {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(id, navKeyFormID)
	return sess.Save(c.Request(), c.Response())
}

// TakeHandedOffForm returns the ID passed by HandOffForm, once. It returns ""
// when nothing was handed off.
func TakeHandedOffForm(c echo.Context) string {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return ""
	}
	id := firstFlash(sess.Flashes(navKeyFormID))
	if id != "" {
		_ = sess.Save(c.Request(), c.Response())
	}
	return id
}

func firstFlash(values []interface{}) string {
	if len(values) == 0 {
		return ""
	}
	s, _ := values[0].(string)
	return s
}
