package domain

import "context"

// Credentials is what the login form hands to the authentication port.
type Credentials struct {
	UserName string
	Password string
}

// AuthResult is the payload of the login mutation: {ok, token, error}.
type AuthResult struct {
	OK    bool
	Token string
	Error string
}

// Authenticator is the authentication port. Implementations resolve a single
// login attempt; they never retry on their own.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (AuthResult, error)
}

// SessionInitializer persists and activates a session for a freshly issued token.
type SessionInitializer interface {
	Init(ctx context.Context, token string) error
}

// NewAccount is the input of the createAccount mutation.
type NewAccount struct {
	FirstName string
	LastName  string
	UserName  string
	Email     string
	Password  string
}

// AccountResult is the payload of the createAccount mutation: {ok, error}.
type AccountResult struct {
	OK    bool
	Error string
}

// AccountCreator registers new accounts with the backend.
type AccountCreator interface {
	CreateAccount(ctx context.Context, account NewAccount) (AccountResult, error)
}
