package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/form"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/nfrund/instaclone/internal/signupform"
	"github.com/nfrund/instaclone/internal/view"
	"github.com/nfrund/instaclone/internal/view/dto/auth"
	"github.com/nfrund/instaclone/web/src/templates/pages"
)

// SignUpHandler serves the account creation screen.
type SignUpHandler struct {
	submitter  *signupform.Submitter
	loginForms *loginform.Store
}

// NewSignUpHandler creates a new SignUpHandler. A created account's login
// form is mounted in loginForms.
func NewSignUpHandler(submitter *signupform.Submitter, loginForms *loginform.Store) *SignUpHandler {
	return &SignUpHandler{submitter: submitter, loginForms: loginForms}
}

func postedSignUpValues(c echo.Context) signupform.Values {
	v := signupform.Values{}
	for _, field := range signupform.Rules.Fields() {
		v[field] = c.FormValue(field)
	}
	return v
}

// SignUpGet renders the empty sign-up page.
func (h *SignUpHandler) SignUpGet(c echo.Context) error {
	data := auth.SignUpData{
		Values:    map[string]string{},
		Errors:    form.Errors{},
		CSRFToken: csrfToken(c),
		Flashes:   view.GetFlashData(c),
	}
	return c.Render(http.StatusOK, "", pages.SignUpPage(data))
}

// SignUpValidate validates the field that fired the request.
func (h *SignUpHandler) SignUpValidate(c echo.Context) error {
	values := postedSignUpValues(c)
	field := triggerField(c)

	msg, err := signupform.Rules.ValidateField(field, values[field])
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	errs := form.Errors{}
	if msg != "" {
		errs[field] = msg
	}
	return c.Render(http.StatusOK, "", pages.SignUpValidation(field, errs, signupform.Rules.Valid(values)))
}

// SignUpPost creates the account and hands a pre-filled login form to the
// login screen. The credentials stay on the server.
func (h *SignUpHandler) SignUpPost(c echo.Context) error {
	values := postedSignUpValues(c)

	res := h.submitter.Submit(c.Request().Context(), values)
	if res.Created {
		id, _ := h.loginForms.Mount(signupform.Navigation(values))
		if err := view.HandOffForm(c, id); err != nil {
			h.loginForms.Discard(id)
			return err
		}
		return redirectTo(c, pages.LoginPath)
	}

	data := auth.SignUpData{
		Values:    values,
		Errors:    res.Errors,
		CanSubmit: signupform.Rules.Valid(values),
		CSRFToken: csrfToken(c),
	}
	if !isHTMX(c) {
		return c.Render(http.StatusOK, "", pages.SignUpPage(data))
	}
	return c.Render(http.StatusOK, "", pages.SignUpForm(data))
}
