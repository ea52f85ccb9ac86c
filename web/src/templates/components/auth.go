// Package components holds the building blocks shared by the auth screens.
package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// CSRFField is the form field name the CSRF middleware reads.
const CSRFField = "_csrf"

// AuthLayout centers the auth screens.
func AuthLayout(children ...g.Node) g.Node {
	return h.Main(h.Class("auth-layout"), h.Div(h.Class("auth-wrapper"), g.Group(children)))
}

// FormBox is the bordered box holding the logo and the form.
func FormBox(children ...g.Node) g.Node {
	return h.Div(
		h.Class("form-box"),
		h.H1(h.Class("logo"), g.Text("Instaclone")),
		g.Group(children),
	)
}

// FieldInput describes a text input that is validated on every keystroke.
type FieldInput struct {
	Name        string
	Type        string
	Placeholder string
	Value       string
	// ValidateURL receives the keystroke; the response is swapped out of band.
	ValidateURL string
	HasError    bool
}

// TextInput renders an input posting to its validate URL as the user types.
func TextInput(in FieldInput) g.Node {
	typ := in.Type
	if typ == "" {
		typ = "text"
	}
	return h.Input(
		h.Type(typ),
		h.Name(in.Name),
		h.ID(in.Name),
		h.Placeholder(in.Placeholder),
		h.Value(in.Value),
		h.AutoComplete("off"),
		g.If(in.HasError, h.Class("input input-error")),
		g.If(!in.HasError, h.Class("input")),
		g.If(in.ValidateURL != "", g.Group([]g.Node{
			hx.Post(in.ValidateURL),
			hx.Trigger("input changed"),
			hx.Swap("none"),
		})),
	)
}

// FormErrorID is the element id of the error slot for field.
func FormErrorID(field string) string {
	return field + "-error"
}

// FormError renders the error slot for field. The slot is always present so
// an out-of-band swap has something to replace.
func FormError(field, message string) g.Node {
	return h.Span(
		h.ID(FormErrorID(field)),
		h.Class("form-error"),
		g.If(message != "", g.Text(message)),
	)
}

// FormErrorOOB is FormError marked for an htmx out-of-band swap.
func FormErrorOOB(field, message string) g.Node {
	return h.Span(
		h.ID(FormErrorID(field)),
		h.Class("form-error"),
		hx.SwapOOB("true"),
		g.If(message != "", g.Text(message)),
	)
}

// LoadingLabel is the submit label while a submission is in flight.
const LoadingLabel = "Loading..."

// SubmitButton renders a submit input. The label switches to LoadingLabel
// while a submission is in flight.
func SubmitButton(id, label string, loading, disabled, oob bool) g.Node {
	if loading {
		label = LoadingLabel
	}
	return h.Input(
		h.Type("submit"),
		h.ID(id),
		h.Class("submit"),
		h.Value(label),
		g.If(disabled, h.Disabled()),
		g.If(oob, hx.SwapOOB("true")),
	)
}

// SubmitLoading goes on a form that posts itself. It shows LoadingLabel on
// the button with buttonID until the response arrives, then puts label back.
// Requests fired by the form's inputs leave the button alone.
func SubmitLoading(buttonID, label string) g.Node {
	set := func(text string) string {
		return fmt.Sprintf("if (event.detail.elt === this) this.querySelector('#%s').value = '%s'", buttonID, text)
	}
	return g.Group{
		hx.On(":before-request", set(LoadingLabel)),
		hx.On(":after-request", set(label)),
	}
}

// Notification shows a one-time message carried from the previous screen.
func Notification(message string) g.Node {
	if message == "" {
		return nil
	}
	return h.Div(h.Class("notification"), g.Text(message))
}

// Separator renders the "Or" divider.
func Separator() g.Node {
	return h.Div(
		h.Class("separator"),
		h.Div(h.Class("line")),
		h.Span(g.Text("Or")),
		h.Div(h.Class("line")),
	)
}

// FacebookLogin is presentational; it has no action.
func FacebookLogin() g.Node {
	return h.Div(h.Class("facebook-login"), h.Span(g.Text("Log in with Facebook")))
}

// BottomBox links to the companion screen.
func BottomBox(cta, linkText, link string) g.Node {
	return h.Div(
		h.Class("bottom-box"),
		h.Span(g.Text(cta)),
		h.A(h.Href(link), g.Text(linkText)),
	)
}

// CSRFInput embeds the CSRF token in a form.
func CSRFInput(token string) g.Node {
	if token == "" {
		return nil
	}
	return h.Input(h.Type("hidden"), h.Name(CSRFField), h.Value(token))
}
