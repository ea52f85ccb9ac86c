package auth

import (
	"github.com/nfrund/instaclone/internal/form"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/nfrund/instaclone/internal/view"
)

// LoginData is the view model for the login screen.
type LoginData struct {
	Form loginform.Snapshot
	// Notification is the one-time message carried from the previous screen.
	Notification string
	CSRFToken    string
	Flashes      view.FlashData
}

// SignUpData is the view model for the sign-up screen.
type SignUpData struct {
	Values    map[string]string
	Errors    form.Errors
	CanSubmit bool
	CSRFToken string
	Flashes   view.FlashData
}

// Value returns the posted value for field.
func (d SignUpData) Value(field string) string {
	return d.Values[field]
}

// Error returns the message shown for field, or "".
func (d SignUpData) Error(field string) string {
	return d.Errors[field]
}

// HomeData is the view model for the feed placeholder.
type HomeData struct {
	CSRFToken string
	Flashes   view.FlashData
}
