// Package graphql implements the authentication and account ports against the
// Instaclone GraphQL API.
package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/machinebox/graphql"
	"github.com/nfrund/instaclone/internal/domain"
)

const loginMutation = `
mutation login($userName: String!, $password: String!) {
  login(userName: $userName, password: $password) {
    ok
    token
    error
  }
}`

const createAccountMutation = `
mutation createAccount(
  $firstName: String!
  $lastName: String
  $userName: String!
  $email: String!
  $password: String!
) {
  createAccount(
    firstName: $firstName
    lastName: $lastName
    userName: $userName
    email: $email
    password: $password
  ) {
    ok
    error
  }
}`

// mutationResult mirrors the {ok, token, error} payloads. token and error are
// nullable in the schema.
type mutationResult struct {
	OK    bool    `json:"ok"`
	Token *string `json:"token"`
	Error *string `json:"error"`
}

func (r mutationResult) token() string {
	if r.Token == nil {
		return ""
	}
	return *r.Token
}

func (r mutationResult) errorMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// Client talks to the GraphQL endpoint. It satisfies domain.Authenticator and
// domain.AccountCreator.
type Client struct {
	gql    *graphql.Client
	logger *slog.Logger
}

// NewClient creates a client for endpoint. A nil httpClient uses http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) { logger.Debug(s, "component", "graphql") }
	return &Client{gql: gql, logger: logger}
}

// Login runs the login mutation. A rejected login is a result, not an error;
// errors are reserved for transport and GraphQL-level failures.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	req := graphql.NewRequest(loginMutation)
	req.Var("userName", creds.UserName)
	req.Var("password", creds.Password)

	var resp struct {
		Login mutationResult `json:"login"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return domain.AuthResult{}, fmt.Errorf("login mutation: %w", err)
	}

	return domain.AuthResult{
		OK:    resp.Login.OK,
		Token: resp.Login.token(),
		Error: resp.Login.errorMessage(),
	}, nil
}

// CreateAccount runs the createAccount mutation.
func (c *Client) CreateAccount(ctx context.Context, account domain.NewAccount) (domain.AccountResult, error) {
	req := graphql.NewRequest(createAccountMutation)
	req.Var("firstName", account.FirstName)
	if account.LastName != "" {
		req.Var("lastName", account.LastName)
	}
	req.Var("userName", account.UserName)
	req.Var("email", account.Email)
	req.Var("password", account.Password)

	var resp struct {
		CreateAccount mutationResult `json:"createAccount"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return domain.AccountResult{}, fmt.Errorf("createAccount mutation: %w", err)
	}

	return domain.AccountResult{
		OK:    resp.CreateAccount.OK,
		Error: resp.CreateAccount.errorMessage(),
	}, nil
}

func (c *Client) run(ctx context.Context, req *graphql.Request, resp any) error {
	err := c.gql.Run(ctx, req, resp)
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", domain.ErrAuthTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	}
}
