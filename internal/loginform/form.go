// Package loginform implements the login screen's validation and submission
// state machine, independent of how it is rendered.
//
//	Editing -> Validating -> {Valid, Invalid} -> Submitting -> {Succeeded, Failed} -> Editing
//
// Every field change re-validates the touched field and recomputes global
// validity. A submit is accepted only from a valid form with no submission in
// flight; the in-flight flag is cleared whatever the port answers.
package loginform

import (
	"fmt"
	"sync"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/form"
)

// Field names, as posted by the login form.
const (
	FieldUserName = "userName"
	FieldPassword = "password"

	// FieldResult keys the form-level error reported by the authentication port.
	FieldResult = "result"
)

// fallbackResultMessage is shown when the port rejects a login without a reason.
const fallbackResultMessage = "Login failed. Please try again."

// Rules are the login field rules.
var Rules = form.Rules{
	{
		Field:            FieldUserName,
		Required:         true,
		RequiredMessage:  "Username is required.",
		MinLength:        5,
		MinLengthMessage: "Username should be longer than 5 chars.",
	},
	{
		Field:           FieldPassword,
		Required:        true,
		RequiredMessage: "Password is required.",
	},
}

// State is the position of a form in its lifecycle.
type State int

const (
	Editing State = iota
	Validating
	Valid
	Invalid
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Snapshot is a consistent copy of the form used for rendering.
type Snapshot struct {
	UserName     string
	Password     string
	Errors       form.Errors
	IsValid      bool
	IsSubmitting bool
	State        State
}

// CanSubmit reports whether the submit control should be enabled.
func (s Snapshot) CanSubmit() bool {
	return s.IsValid && !s.IsSubmitting
}

// Error returns the message shown for field, or "".
func (s Snapshot) Error(field string) string {
	return s.Errors[field]
}

// Form holds the state of one login screen. It is safe for concurrent use.
type Form struct {
	mu           sync.Mutex
	values       map[string]string
	errors       form.Errors
	valid        bool
	submitting   bool
	state        State
	notification string
}

// New mounts a form, seeding the fields and the one-time notification from
// the navigation state carried by the previous screen. No errors are shown
// until a field changes, but validity already reflects the seeded values.
func New(nav domain.NavigationState) *Form {
	f := &Form{
		values: map[string]string{
			FieldUserName: nav.UserName,
			FieldPassword: nav.Password,
		},
		errors:       form.Errors{},
		state:        Editing,
		notification: nav.Message,
	}
	f.valid = Rules.Valid(f.values)
	return f
}

// Change applies a keystroke to field. It clears any stale result error,
// re-validates only the touched field and recomputes global validity. The
// other field's displayed error is left as it was.
func (f *Form) Change(field, value string) error {
	if !Rules.Has(field) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.errors, FieldResult)
	f.values[field] = value
	f.state = Validating

	msg, err := Rules.ValidateField(field, value)
	if err != nil {
		return err
	}
	if msg == "" {
		delete(f.errors, field)
	} else {
		f.errors[field] = msg
	}

	f.valid = Rules.Valid(f.values)
	switch {
	case f.submitting:
		// Fields stay editable while a submission is pending.
		f.state = Submitting
	case f.valid:
		f.state = Valid
	default:
		f.state = Invalid
	}
	return nil
}

// Sync stores value for field without validating it, so the field's
// displayed error is left alone. Global validity is recomputed by the next
// Change.
func (f *Form) Sync(field, value string) error {
	if !Rules.Has(field) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	f.mu.Lock()
	f.values[field] = value
	f.mu.Unlock()
	return nil
}

// Value returns the current value of field.
func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// IsValid reports whether every field passes its rules.
func (f *Form) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

// IsSubmitting reports whether a submission is in flight.
func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// CanSubmit reports whether Begin would accept a submission right now.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid && !f.submitting
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot copies the form for rendering.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(form.Errors, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return Snapshot{
		UserName:     f.values[FieldUserName],
		Password:     f.values[FieldPassword],
		Errors:       errs,
		IsValid:      f.valid,
		IsSubmitting: f.submitting,
		State:        f.state,
	}
}

// TakeNotification returns the carried-over message the first time it is
// called and "" afterwards.
func (f *Form) TakeNotification() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := f.notification
	f.notification = ""
	return msg
}

// Begin moves a valid, idle form to Submitting and returns the credentials to
// send. It returns domain.ErrSubmitDisabled otherwise.
func (f *Form) Begin() (domain.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.valid || f.submitting {
		return domain.Credentials{}, domain.ErrSubmitDisabled
	}
	f.submitting = true
	f.state = Submitting
	return domain.Credentials{
		UserName: f.values[FieldUserName],
		Password: f.values[FieldPassword],
	}, nil
}

// Resolve records the port's answer and clears the in-flight flag. A rejected
// attempt sets the "result" error; field values are kept. The returned token,
// when non-empty, must be forwarded to the session initializer whatever ok says.
func (f *Form) Resolve(res domain.AuthResult) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	if !res.OK {
		msg := res.Error
		if msg == "" {
			msg = fallbackResultMessage
		}
		f.errors[FieldResult] = msg
		f.state = Failed
	} else {
		f.state = Succeeded
	}
	return res.Token
}
