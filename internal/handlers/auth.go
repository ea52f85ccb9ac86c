package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/authcookie"
	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/nfrund/instaclone/internal/middleware"
	"github.com/nfrund/instaclone/internal/view"
	"github.com/nfrund/instaclone/internal/view/dto/auth"
	"github.com/nfrund/instaclone/web/src/templates/pages"
)

const (
	expiredMessage = "Your login form expired. Please try again."
	logoutMessage  = "You have been logged out."
)

// AuthHandler serves the login screen and logout.
type AuthHandler struct {
	forms     *loginform.Store
	submitter *loginform.Submitter
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(forms *loginform.Store, submitter *loginform.Submitter) *AuthHandler {
	return &AuthHandler{forms: forms, submitter: submitter}
}

// LoginGet renders the login page with the form handed off by the previous
// screen, or a fresh one.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	id, f := h.mountForm(c)
	flashes := view.GetFlashData(c)

	if err := setLoginFormID(c, id); err != nil {
		return err
	}

	data := auth.LoginData{
		Form:         f.Snapshot(),
		Notification: f.TakeNotification(),
		CSRFToken:    csrfToken(c),
		Flashes:      flashes,
	}
	return c.Render(http.StatusOK, "", pages.LoginPage(data))
}

// LoginValidate applies one keystroke and swaps the field error and submit
// button out of band.
func (h *AuthHandler) LoginValidate(c echo.Context) error {
	f, _, ok := h.currentForm(c)
	if !ok {
		return h.expired(c)
	}

	field := triggerField(c)
	// The form may have been remounted by another tab, so the other fields
	// are taken as posted. Only the touched field is validated.
	if params, err := c.FormParams(); err == nil {
		for _, other := range loginform.Rules.Fields() {
			if vs, posted := params[other]; posted && other != field && len(vs) > 0 {
				_ = f.Sync(other, vs[0])
			}
		}
	}
	if err := f.Change(field, c.FormValue(field)); err != nil {
		if errors.Is(err, domain.ErrUnknownField) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.Render(http.StatusOK, "", pages.LoginValidation(f.Snapshot(), field))
}

// LoginPost submits the form. A started session leaves for the home screen;
// anything else re-renders the form in place.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	f, id, ok := h.currentForm(c)
	if !ok {
		return h.expired(c)
	}

	// Values can reach the form without keystrokes, e.g. browser autofill.
	for _, field := range loginform.Rules.Fields() {
		if v := c.FormValue(field); v != f.Value(field) {
			_ = f.Change(field, v)
		}
	}

	ctx := c.Request().Context()
	outcome, err := h.submitter.Submit(ctx, f, authcookie.NewInitializer(c))
	switch {
	case errors.Is(err, domain.ErrSubmitDisabled):
		middleware.FromContext(ctx).Debug("Login submit ignored", "state", f.State().String())
	case err != nil:
		return err
	case outcome.SessionStarted:
		h.forms.Discard(id)
			if err := setLoginFormID(c, ""); err != nil {
			return err
		}
		return redirectTo(c, pages.HomePath)
	}

	data := auth.LoginData{Form: f.Snapshot(), CSRFToken: csrfToken(c)}
	if !isHTMX(c) {
		return c.Render(http.StatusOK, "", pages.LoginPage(data))
	}
	// htmx only swaps 2xx responses, so a refused submit is still a 200.
	return c.Render(http.StatusOK, "", pages.LoginForm(data))
}

// Logout expires the auth cookie and returns to the login screen.
func (h *AuthHandler) Logout(c echo.Context) error {
	authcookie.Clear(c)
	view.SetFlashSuccess(c, logoutMessage)
	return redirectTo(c, pages.LoginPath)
}

// mountForm adopts a handed-off form when it is still stored and mounts an
// empty one otherwise. The form this browser used before is discarded.
func (h *AuthHandler) mountForm(c echo.Context) (string, *loginform.Form) {
	old := loginFormID(c)

	var (
		id string
		f  *loginform.Form
	)
	if handed := view.TakeHandedOffForm(c); handed != "" {
		if hf, ok := h.forms.Get(handed); ok {
			id, f = handed, hf
		}
	}
	if f == nil {
		id, f = h.forms.Mount(domain.NavigationState{})
	}
	if old != "" && old != id {
		h.forms.Discard(old)
	}
	return id, f
}

func (h *AuthHandler) currentForm(c echo.Context) (*loginform.Form, string, bool) {
	id := loginFormID(c)
	if id == "" {
		return nil, "", false
	}
	f, ok := h.forms.Get(id)
	return f, id, ok
}

func (h *AuthHandler) expired(c echo.Context) error {
	view.SetFlashError(c, expiredMessage)
	return redirectTo(c, pages.LoginPath)
}
