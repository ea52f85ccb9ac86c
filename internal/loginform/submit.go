package loginform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/instaclone/internal/domain"
)

// Messages shown in the result banner when the port itself fails.
const (
	timeoutMessage     = "Login timed out. Please try again."
	unavailableMessage = "Could not reach the server. Please try again."
)

// DefaultTimeout bounds a single authentication call.
const DefaultTimeout = 10 * time.Second

// Observer is notified once per resolved login attempt.
type Observer interface {
	LoginResolved(ctx context.Context, userName string, outcome Outcome)
}

// Outcome describes how a submission ended.
type Outcome struct {
	// Kind is one of the domain.Login* outcome constants.
	Kind string
	// Result is what the form was resolved with. Port failures are turned
	// into a rejected result carrying a user-facing message.
	Result domain.AuthResult
	// SessionStarted is true when a token was handed to the session initializer.
	SessionStarted bool
}

// Submitter performs the single authentication call behind a valid submit.
type Submitter struct {
	auth      domain.Authenticator
	timeout   time.Duration
	observers []Observer
	logger    *slog.Logger
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithTimeout bounds each authentication call.
func WithTimeout(d time.Duration) SubmitterOption {
	return func(s *Submitter) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithObserver registers observers for resolved attempts.
func WithObserver(obs ...Observer) SubmitterOption {
	return func(s *Submitter) {
		s.observers = append(s.observers, obs...)
	}
}

// WithLogger sets the logger used for port failures.
func WithLogger(logger *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		s.logger = logger
	}
}

// NewSubmitter creates a Submitter for the given authentication port.
func NewSubmitter(auth domain.Authenticator, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		auth:    auth,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs one submission of f. It returns domain.ErrSubmitDisabled
// without calling the port when the form is invalid or already submitting.
// Port failures and timeouts never escape as errors: they resolve the form
// with a result message so the user can resubmit. The only error returned
// after the port call is a failure of the session initializer.
func (s *Submitter) Submit(ctx context.Context, f *Form, sessions domain.SessionInitializer) (Outcome, error) {
	creds, err := f.Begin()
	if err != nil {
		return Outcome{}, err
	}

	res, kind := s.call(ctx, creds)
	token := f.Resolve(res)
	outcome := Outcome{Kind: kind, Result: res}

	var initErr error
	if token != "" {
		if err := sessions.Init(ctx, token); err != nil {
			initErr = fmt.Errorf("initialize session: %w", err)
		} else {
			outcome.SessionStarted = true
		}
	}

	for _, obs := range s.observers {
		obs.LoginResolved(ctx, creds.UserName, outcome)
	}
	return outcome, initErr
}

func (s *Submitter) call(ctx context.Context, creds domain.Credentials) (domain.AuthResult, string) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.auth.Login(callCtx, creds)
	switch {
	case err == nil && res.OK:
		return res, domain.LoginSucceeded
	case err == nil:
		return res, domain.LoginRejected
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrAuthTimeout):
		s.logger.Warn("Login timed out", "user_name", creds.UserName, "timeout", s.timeout, "error", err)
		return domain.AuthResult{Error: timeoutMessage}, domain.LoginTimedOut
	default:
		s.logger.Error("Login request failed", "user_name", creds.UserName, "error", err)
		return domain.AuthResult{Error: unavailableMessage}, domain.LoginErrored
	}
}
