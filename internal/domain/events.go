package domain

import "time"

// Login outcomes reported to observers and published on the event bus.
const (
	LoginSucceeded = "succeeded"
	LoginRejected  = "rejected"
	LoginTimedOut  = "timeout"
	LoginErrored   = "error"
)

// TopicLogin is the event bus topic carrying LoginEvent payloads.
const TopicLogin = "auth.login"

// LoginEvent records one resolved login attempt. It never carries the password.
type LoginEvent struct {
	UserName   string    `json:"user_name"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
