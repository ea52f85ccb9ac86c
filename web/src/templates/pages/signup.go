package pages

import (
	"github.com/nfrund/instaclone/internal/form"
	"github.com/nfrund/instaclone/internal/signupform"
	"github.com/nfrund/instaclone/internal/view/dto/auth"
	"github.com/nfrund/instaclone/web/src/templates/components"
	"github.com/nfrund/instaclone/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// SignUpTitle is the document title of the sign-up screen.
const SignUpTitle = "Sign Up"

const signUpSubmitLabel = "Sign up"

type signUpField struct {
	name, typ, placeholder string
}

var signUpFields = []signUpField{
	{signupform.FieldFirstName, "text", "First Name"},
	{signupform.FieldLastName, "text", "Last Name"},
	{signupform.FieldEmail, "email", "Email"},
	{signupform.FieldUserName, "text", "Username"},
	{signupform.FieldPassword, "password", "Password"},
}

// SignUpPage renders the full sign-up screen.
func SignUpPage(data auth.SignUpData) g.Node {
	return layouts.Base(SignUpTitle, data.CSRFToken, data.Flashes,
		components.AuthLayout(
			components.FormBox(
				h.P(h.Class("subtitle"), g.Text("Sign up to see photos and videos from your friends.")),
				SignUpForm(data),
			),
			components.BottomBox("Have an account?", "Log in", LoginPath),
		),
	)
}

// SignUpForm renders the form fragment.
func SignUpForm(data auth.SignUpData) g.Node {
	return h.Form(
		h.ID(SignUpFormID),
		h.Method("post"),
		h.Action(SignUpPath),
		hx.Post(SignUpPath),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "#"+SignUpSubmitID),
		components.SubmitLoading(SignUpSubmitID, signUpSubmitLabel),
		components.CSRFInput(data.CSRFToken),
		g.Map(signUpFields, func(f signUpField) g.Node {
			return g.Group{
				components.TextInput(components.FieldInput{
					Name:        f.name,
					Type:        f.typ,
					Placeholder: f.placeholder,
					Value:       data.Value(f.name),
					ValidateURL: SignUpValidatePath,
					HasError:    data.Error(f.name) != "",
				}),
				components.FormError(f.name, data.Error(f.name)),
			}
		}),
		components.SubmitButton(SignUpSubmitID, signUpSubmitLabel, false, !data.CanSubmit, false),
		components.FormError(signupform.FieldResult, data.Error(signupform.FieldResult)),
	)
}

// SignUpValidation is the keystroke response for the sign-up form.
func SignUpValidation(field string, errs form.Errors, canSubmit bool) g.Node {
	return g.Group{
		components.FormErrorOOB(field, errs[field]),
		components.FormErrorOOB(signupform.FieldResult, ""),
		components.SubmitButton(SignUpSubmitID, signUpSubmitLabel, false, !canSubmit, true),
	}
}
