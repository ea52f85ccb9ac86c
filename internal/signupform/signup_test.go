package signupform

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	calls int
	got   domain.NewAccount
	res   domain.AccountResult
	err   error
	wait  bool
}

func (f *fakeCreator) CreateAccount(ctx context.Context, acct domain.NewAccount) (domain.AccountResult, error) {
	f.calls++
	f.got = acct
	if f.wait {
		<-ctx.Done()
		return domain.AccountResult{}, ctx.Err()
	}
	return f.res, f.err
}

func validValues() Values {
	return Values{
		FieldFirstName: "Alice",
		FieldEmail:     "alice@example.com",
		FieldUserName:  "alice1",
		FieldPassword:  "secret",
	}
}

func TestRules(t *testing.T) {
	errs := Rules.Validate(Values{FieldEmail: "not-an-email"})

	assert.Equal(t, "First name is required.", errs[FieldFirstName])
	assert.Equal(t, "Email is not valid.", errs[FieldEmail])
	assert.Equal(t, "Username is required.", errs[FieldUserName])
	assert.Equal(t, "Password is required.", errs[FieldPassword])
	assert.NotContains(t, errs, FieldLastName, "last name is optional")

	assert.True(t, Rules.Valid(validValues()))
}

func TestSubmitter_Submit(t *testing.T) {
	t.Run("invalid values never reach the port", func(t *testing.T) {
		creator := &fakeCreator{}
		s := NewSubmitter(creator, time.Second, nil)

		res := s.Submit(context.Background(), Values{FieldUserName: "alice1"})

		assert.False(t, res.Created)
		assert.Equal(t, "Email is required.", res.Errors[FieldEmail])
		assert.Zero(t, creator.calls)
	})

	t.Run("created account", func(t *testing.T) {
		creator := &fakeCreator{res: domain.AccountResult{OK: true}}
		s := NewSubmitter(creator, time.Second, nil)

		v := validValues()
		v[FieldLastName] = "Liddell"
		res := s.Submit(context.Background(), v)

		require.True(t, res.Created)
		assert.Empty(t, res.Errors)
		assert.Equal(t, 1, creator.calls)
		assert.Equal(t, domain.NewAccount{
			FirstName: "Alice", LastName: "Liddell", Email: "alice@example.com",
			UserName: "alice1", Password: "secret",
		}, creator.got)
	})

	t.Run("rejection shows the port message", func(t *testing.T) {
		creator := &fakeCreator{res: domain.AccountResult{Error: "Username taken."}}
		res := NewSubmitter(creator, time.Second, nil).Submit(context.Background(), validValues())

		assert.False(t, res.Created)
		assert.Equal(t, "Username taken.", res.Errors[FieldResult])
	})

	t.Run("rejection without a message falls back", func(t *testing.T) {
		creator := &fakeCreator{}
		res := NewSubmitter(creator, time.Second, nil).Submit(context.Background(), validValues())

		assert.Equal(t, fallbackResultMessage, res.Errors[FieldResult])
	})

	t.Run("timeout", func(t *testing.T) {
		creator := &fakeCreator{wait: true}
		res := NewSubmitter(creator, 10*time.Millisecond, nil).Submit(context.Background(), validValues())

		assert.Equal(t, timeoutMessage, res.Errors[FieldResult])
	})

	t.Run("transport failure", func(t *testing.T) {
		creator := &fakeCreator{err: errors.New("connection refused")}
		res := NewSubmitter(creator, time.Second, nil).Submit(context.Background(), validValues())

		assert.Equal(t, unavailableMessage, res.Errors[FieldResult])
	})
}

func TestNavigation(t *testing.T) {
	nav := Navigation(validValues())

	assert.Equal(t, domain.NavigationState{
		UserName: "alice1",
		Password: "secret",
		Message:  CreatedMessage,
	}, nav)
}
