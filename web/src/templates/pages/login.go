package pages

import (
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/nfrund/instaclone/internal/view/dto/auth"
	"github.com/nfrund/instaclone/web/src/templates/components"
	"github.com/nfrund/instaclone/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// LoginTitle is the document title of the login screen.
const LoginTitle = "Login"

const loginSubmitLabel = "Log in"

// LoginPage renders the full login screen.
func LoginPage(data auth.LoginData) g.Node {
	return layouts.Base(LoginTitle, data.CSRFToken, data.Flashes,
		components.AuthLayout(
			components.FormBox(
				components.Notification(data.Notification),
				LoginForm(data),
				components.Separator(),
				components.FacebookLogin(),
			),
			components.BottomBox("Don't have an account?", "Sign up", SignUpPath),
		),
	)
}

// LoginForm renders the form fragment. A failed submit swaps it in place.
func LoginForm(data auth.LoginData) g.Node {
	snap := data.Form
	return h.Form(
		h.ID(LoginFormID),
		h.Method("post"),
		h.Action(LoginPath),
		hx.Post(LoginPath),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "#"+LoginSubmitID),
		components.SubmitLoading(LoginSubmitID, loginSubmitLabel),
		components.CSRFInput(data.CSRFToken),
		components.TextInput(components.FieldInput{
			Name:        loginform.FieldUserName,
			Placeholder: "Username",
			Value:       snap.UserName,
			ValidateURL: LoginValidatePath,
			HasError:    snap.Error(loginform.FieldUserName) != "",
		}),
		components.FormError(loginform.FieldUserName, snap.Error(loginform.FieldUserName)),
		components.TextInput(components.FieldInput{
			Name:        loginform.FieldPassword,
			Type:        "password",
			Placeholder: "Password",
			Value:       snap.Password,
			ValidateURL: LoginValidatePath,
			HasError:    snap.Error(loginform.FieldPassword) != "",
		}),
		components.FormError(loginform.FieldPassword, snap.Error(loginform.FieldPassword)),
		components.SubmitButton(LoginSubmitID, loginSubmitLabel, snap.IsSubmitting, !snap.CanSubmit(), false),
		components.FormError(loginform.FieldResult, snap.Error(loginform.FieldResult)),
	)
}

// LoginValidation is the keystroke response: the touched field's error slot,
// the cleared result slot and the submit button, all swapped out of band.
func LoginValidation(snap loginform.Snapshot, field string) g.Node {
	return g.Group{
		components.FormErrorOOB(field, snap.Error(field)),
		components.FormErrorOOB(loginform.FieldResult, snap.Error(loginform.FieldResult)),
		components.SubmitButton(LoginSubmitID, loginSubmitLabel, snap.IsSubmitting, !snap.CanSubmit(), true),
	}
}
