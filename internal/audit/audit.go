// Package audit publishes login outcomes on the event bus and records them
// in the log.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/nfrund/instaclone/internal/pubsub"
)

// LoginEvents is the typed event for resolved login attempts.
var LoginEvents = pubsub.NewEvent[domain.LoginEvent](domain.TopicLogin)

// Publisher turns resolved login attempts into LoginEvents.
type Publisher struct {
	pub    pubsub.Publisher
	now    func() time.Time
	logger *slog.Logger
}

var _ loginform.Observer = (*Publisher)(nil)

// NewPublisher returns an observer publishing on pub.
func NewPublisher(pub pubsub.Publisher, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{pub: pub, now: time.Now, logger: logger}
}

// LoginResolved implements loginform.Observer. Publishing failures are logged;
// they never affect the login itself.
func (p *Publisher) LoginResolved(ctx context.Context, userName string, outcome loginform.Outcome) {
	event := domain.LoginEvent{
		UserName:   userName,
		Outcome:    outcome.Kind,
		OccurredAt: p.now().UTC(),
	}
	if !outcome.Result.OK {
		event.Error = outcome.Result.Error
	}
	if err := pubsub.Publish(ctx, p.pub, LoginEvents, userName, event); err != nil {
		p.logger.Error("Failed to publish login event", "user_name", userName, "error", err)
	}
}

// Subscribe logs every LoginEvent until ctx is canceled.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	return pubsub.Subscribe(ctx, sub, LoginEvents, func(ctx context.Context, e domain.LoginEvent) error {
		level := slog.LevelInfo
		if e.Outcome != domain.LoginSucceeded {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "Login attempt",
			"audit", true,
			"user_name", e.UserName,
			"outcome", e.Outcome,
			"reason", e.Error,
			"occurred_at", e.OccurredAt,
		)
		return nil
	})
}
