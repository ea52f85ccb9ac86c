// Package signupform validates and submits the account creation screen.
// Unlike the login form it keeps no server-side state between requests; the
// posted values are validated on every keystroke and again on submit.
package signupform

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/form"
)

// Field names, as posted by the sign-up form.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldUserName  = "userName"
	FieldPassword  = "password"
	FieldResult    = "result"
)

// CreatedMessage is carried to the login screen after a successful sign-up.
const CreatedMessage = "Account created. Please log in."

const (
	fallbackResultMessage = "Could not create the account. Please try again."
	timeoutMessage        = "Sign up timed out. Please try again."
	unavailableMessage    = "Could not reach the server. Please try again."
)

// Rules are the sign-up field rules. Last name is optional.
var Rules = form.Rules{
	{Field: FieldFirstName, Required: true, RequiredMessage: "First name is required."},
	{Field: FieldLastName},
	{
		Field:           FieldEmail,
		Required:        true,
		RequiredMessage: "Email is required.",
		Email:           true,
		EmailMessage:    "Email is not valid.",
	},
	{Field: FieldUserName, Required: true, RequiredMessage: "Username is required."},
	{Field: FieldPassword, Required: true, RequiredMessage: "Password is required."},
}

// Values holds the posted fields keyed by field name.
type Values map[string]string

// Account converts the values to the port's input.
func (v Values) Account() domain.NewAccount {
	return domain.NewAccount{
		FirstName: v[FieldFirstName],
		LastName:  v[FieldLastName],
		Email:     v[FieldEmail],
		UserName:  v[FieldUserName],
		Password:  v[FieldPassword],
	}
}

// Result is the outcome of a submit.
type Result struct {
	// Created is true when the account exists and the caller should move on
	// to the login screen.
	Created bool
	// Errors holds field errors, or the form-level error under FieldResult.
	Errors form.Errors
}

// Navigation is the state handed to the login screen after a successful sign-up.
func Navigation(v Values) domain.NavigationState {
	return domain.NavigationState{
		UserName: v[FieldUserName],
		Password: v[FieldPassword],
		Message:  CreatedMessage,
	}
}

// Submitter creates accounts through the port.
type Submitter struct {
	creator domain.AccountCreator
	timeout time.Duration
	logger  *slog.Logger
}

// NewSubmitter returns a Submitter bounding each call by timeout.
func NewSubmitter(creator domain.AccountCreator, timeout time.Duration, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{creator: creator, timeout: timeout, logger: logger}
}

// Submit validates every field and, when all pass, calls the port once.
func (s *Submitter) Submit(ctx context.Context, v Values) Result {
	if errs := Rules.Validate(v); len(errs) > 0 {
		return Result{Errors: errs}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.creator.CreateAccount(callCtx, v.Account())
	switch {
	case err == nil && res.OK:
		s.logger.Info("Account created", "user_name", v[FieldUserName])
		return Result{Created: true, Errors: form.Errors{}}
	case err == nil:
		msg := res.Error
		if msg == "" {
			msg = fallbackResultMessage
		}
		return Result{Errors: form.Errors{FieldResult: msg}}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrAuthTimeout):
		s.logger.Warn("Create account timed out", "user_name", v[FieldUserName], "error", err)
		return Result{Errors: form.Errors{FieldResult: timeoutMessage}}
	default:
		s.logger.Error("Create account failed", "user_name", v[FieldUserName], "error", err)
		return Result{Errors: form.Errors{FieldResult: unavailableMessage}}
	}
}
