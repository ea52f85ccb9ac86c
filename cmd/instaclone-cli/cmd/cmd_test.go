package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/tokenstore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

type fakeAuth struct {
	calls int
	got   domain.Credentials
}

func (f *fakeAuth) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	f.calls++
	f.got = creds
	if creds.Password == "secret" {
		return domain.AuthResult{OK: true, Token: "tok-cli"}, nil
	}
	return domain.AuthResult{Error: "Incorrect password."}, nil
}

func run(t *testing.T, opts Options, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(opts)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func newTokens(t *testing.T) *tokenstore.Store {
	t.Helper()
	keyring.MockInit()
	return tokenstore.New(tokenstore.SystemKeyring{}, afero.NewMemMapFs(), "/tmp/instaclone/token", nil)
}

func TestLogin(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		auth := &fakeAuth{}
		tokens := newTokens(t)

		out, _, err := run(t, Options{Authenticator: auth, Tokens: tokens}, "", "login", "-u", "alice1", "-p", "secret")

		require.NoError(t, err)
		assert.Contains(t, out, "Logged in as alice1.")
		assert.Equal(t, domain.Credentials{UserName: "alice1", Password: "secret"}, auth.got)
		token, err := tokens.Load()
		require.NoError(t, err)
		assert.Equal(t, "tok-cli", token)
	})

	t.Run("prompts for missing values", func(t *testing.T) {
		auth := &fakeAuth{}
		out, _, err := run(t, Options{Authenticator: auth, Tokens: newTokens(t)}, "alice1\nsecret\n", "login")

		require.NoError(t, err)
		assert.Contains(t, out, "Username: ")
		assert.Contains(t, out, "Password: ")
		assert.Equal(t, "alice1", auth.got.UserName)
	})

	t.Run("password reader is used for the password", func(t *testing.T) {
		auth := &fakeAuth{}
		opts := Options{
			Authenticator: auth,
			Tokens:        newTokens(t),
			ReadPassword:  func() (string, error) { return "secret", nil },
		}

		_, _, err := run(t, opts, "", "login", "-u", "alice1")

		require.NoError(t, err)
		assert.Equal(t, "secret", auth.got.Password)
	})

	t.Run("validation errors stop before the server", func(t *testing.T) {
		auth := &fakeAuth{}
		_, errOut, err := run(t, Options{Authenticator: auth, Tokens: newTokens(t)}, "", "login", "-u", "ali", "-p", "x")

		require.ErrorIs(t, err, errInvalidInput)
		assert.Contains(t, errOut, "Username should be longer than 5 chars.")
		assert.Zero(t, auth.calls)
	})

	t.Run("rejection is reported", func(t *testing.T) {
		tokens := newTokens(t)
		_, _, err := run(t, Options{Authenticator: &fakeAuth{}, Tokens: tokens}, "", "login", "-u", "alice1", "-p", "wrong")

		require.EqualError(t, err, "Incorrect password.")
		_, err = tokens.Load()
		assert.ErrorIs(t, err, tokenstore.ErrNoToken)
	})
}

func TestLogout(t *testing.T) {
	tokens := newTokens(t)
	require.NoError(t, tokens.Save("tok"))

	out, _, err := run(t, Options{Tokens: tokens}, "", "logout")

	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")
	_, err = tokens.Load()
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
}

func TestStatus(t *testing.T) {
	tokens := newTokens(t)

	out, _, err := run(t, Options{Tokens: tokens}, "", "status")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in.\n", out)

	require.NoError(t, tokens.Save("tok"))
	out, _, err = run(t, Options{Tokens: tokens}, "", "status")
	require.NoError(t, err)
	assert.Equal(t, "Logged in.\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, Options{}, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "Instaclone CLI v0.1.0\n", out)
}
