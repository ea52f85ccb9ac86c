package loginform

import (
	"strings"
	"testing"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm(t *testing.T) *Form {
	t.Helper()
	f := New(domain.NavigationState{})
	require.NoError(t, f.Change(FieldUserName, "alice1"))
	require.NoError(t, f.Change(FieldPassword, "secret"))
	require.True(t, f.IsValid())
	return f
}

func TestForm_New(t *testing.T) {
	t.Run("empty mount is invalid but shows no errors", func(t *testing.T) {
		f := New(domain.NavigationState{})
		snap := f.Snapshot()

		assert.False(t, snap.IsValid)
		assert.Empty(t, snap.Errors)
		assert.Equal(t, Editing, snap.State)
		assert.False(t, f.CanSubmit())
	})

	t.Run("navigation state pre-fills and notifies once", func(t *testing.T) {
		f := New(domain.NavigationState{UserName: "alice1", Password: "secret", Message: "Welcome"})

		snap := f.Snapshot()
		assert.Equal(t, "alice1", snap.UserName)
		assert.Equal(t, "secret", snap.Password)
		assert.True(t, snap.IsValid, "seeded values already satisfy the rules")

		assert.Equal(t, "Welcome", f.TakeNotification())
		assert.Empty(t, f.TakeNotification(), "notification must render exactly once")
	})
}

func TestForm_Sync(t *testing.T) {
	f := New(domain.NavigationState{})
	require.NoError(t, f.Change(FieldPassword, ""))
	require.Equal(t, "Password is required.", f.Snapshot().Error(FieldPassword))

	require.NoError(t, f.Sync(FieldPassword, "secret"))
	assert.Equal(t, "secret", f.Value(FieldPassword))
	assert.Equal(t, "Password is required.", f.Snapshot().Error(FieldPassword), "synced fields keep their error")

	require.NoError(t, f.Change(FieldUserName, "alice1"))
	assert.True(t, f.CanSubmit(), "validity covers the synced value")
	assert.Equal(t, "Password is required.", f.Snapshot().Error(FieldPassword))

	assert.ErrorIs(t, f.Sync("bogus", "x"), domain.ErrUnknownField)
}

func TestForm_ChangeValidation(t *testing.T) {
	t.Run("short usernames are invalid and show the length error", func(t *testing.T) {
		for n := 1; n < 5; n++ {
			f := New(domain.NavigationState{Password: "secret"})
			require.NoError(t, f.Change(FieldUserName, strings.Repeat("a", n)))

			snap := f.Snapshot()
			assert.False(t, snap.IsValid, "length %d", n)
			assert.Equal(t, "Username should be longer than 5 chars.", snap.Error(FieldUserName))
			assert.Equal(t, Invalid, snap.State)
		}
	})

	t.Run("empty fields show the required errors", func(t *testing.T) {
		f := New(domain.NavigationState{UserName: "alice1", Password: "secret"})
		require.NoError(t, f.Change(FieldUserName, ""))
		require.NoError(t, f.Change(FieldPassword, ""))

		snap := f.Snapshot()
		assert.False(t, snap.IsValid)
		assert.Equal(t, "Username is required.", snap.Error(FieldUserName))
		assert.Equal(t, "Password is required.", snap.Error(FieldPassword))
	})

	t.Run("fixing a field removes its error", func(t *testing.T) {
		f := New(domain.NavigationState{Password: "secret"})
		require.NoError(t, f.Change(FieldUserName, "al"))
		require.NoError(t, f.Change(FieldUserName, "alice1"))

		snap := f.Snapshot()
		assert.Empty(t, snap.Error(FieldUserName))
		assert.True(t, snap.IsValid)
		assert.Equal(t, Valid, snap.State)
	})

	t.Run("only the touched field's displayed error is recomputed", func(t *testing.T) {
		f := New(domain.NavigationState{})
		require.NoError(t, f.Change(FieldPassword, ""))
		require.NoError(t, f.Change(FieldUserName, "alice1"))

		snap := f.Snapshot()
		assert.Equal(t, "Password is required.", snap.Error(FieldPassword))
		assert.False(t, snap.IsValid, "global validity still sees the empty password")
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		f := New(domain.NavigationState{})
		assert.ErrorIs(t, f.Change("email", "x"), domain.ErrUnknownField)
	})
}

func TestForm_BeginAndResolve(t *testing.T) {
	t.Run("begin is refused while invalid", func(t *testing.T) {
		f := New(domain.NavigationState{})
		_, err := f.Begin()
		assert.ErrorIs(t, err, domain.ErrSubmitDisabled)
		assert.False(t, f.IsSubmitting())
	})

	t.Run("begin is refused while in flight", func(t *testing.T) {
		f := validForm(t)

		creds, err := f.Begin()
		require.NoError(t, err)
		assert.Equal(t, domain.Credentials{UserName: "alice1", Password: "secret"}, creds)
		assert.Equal(t, Submitting, f.State())
		assert.False(t, f.CanSubmit())

		_, err = f.Begin()
		assert.ErrorIs(t, err, domain.ErrSubmitDisabled)
	})

	t.Run("fields stay editable while in flight", func(t *testing.T) {
		f := validForm(t)
		_, err := f.Begin()
		require.NoError(t, err)

		require.NoError(t, f.Change(FieldPassword, "secret2"))
		assert.Equal(t, "secret2", f.Value(FieldPassword))
		assert.Equal(t, Submitting, f.State())
		assert.True(t, f.IsSubmitting())
	})

	t.Run("rejection sets the result error and keeps values", func(t *testing.T) {
		f := validForm(t)
		_, err := f.Begin()
		require.NoError(t, err)

		token := f.Resolve(domain.AuthResult{OK: false, Error: "Invalid credentials"})

		snap := f.Snapshot()
		assert.Empty(t, token)
		assert.Equal(t, "Invalid credentials", snap.Error(FieldResult))
		assert.Equal(t, "alice1", snap.UserName)
		assert.Equal(t, "secret", snap.Password)
		assert.False(t, snap.IsSubmitting)
		assert.Equal(t, Failed, snap.State)
		assert.True(t, snap.CanSubmit(), "user may resubmit explicitly")
	})

	t.Run("rejection without a reason still shows a message", func(t *testing.T) {
		f := validForm(t)
		_, _ = f.Begin()
		f.Resolve(domain.AuthResult{OK: false})

		assert.Equal(t, fallbackResultMessage, f.Snapshot().Error(FieldResult))
	})

	t.Run("editing after a failure clears the result error", func(t *testing.T) {
		f := validForm(t)
		_, _ = f.Begin()
		f.Resolve(domain.AuthResult{OK: false, Error: "Invalid credentials"})

		require.NoError(t, f.Change(FieldUserName, "alice"))
		snap := f.Snapshot()
		assert.Empty(t, snap.Error(FieldResult))
		assert.Equal(t, Valid, snap.State)
	})

	t.Run("token is returned even when ok is false", func(t *testing.T) {
		f := validForm(t)
		_, _ = f.Begin()

		token := f.Resolve(domain.AuthResult{OK: false, Token: "abc123", Error: "partial"})
		assert.Equal(t, "abc123", token)
		assert.Equal(t, "partial", f.Snapshot().Error(FieldResult))
	})

	t.Run("success returns the token", func(t *testing.T) {
		f := validForm(t)
		_, _ = f.Begin()

		token := f.Resolve(domain.AuthResult{OK: true, Token: "abc123"})
		assert.Equal(t, "abc123", token)
		assert.Equal(t, Succeeded, f.State())
		assert.Empty(t, f.Snapshot().Errors)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "State(42)", State(42).String())
}
