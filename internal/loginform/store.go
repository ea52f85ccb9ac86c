package loginform

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/instaclone/internal/domain"
)

// DefaultTTL is how long an untouched form is kept.
const DefaultTTL = 30 * time.Minute

type entry struct {
	form     *Form
	lastSeen time.Time
}

// Store keeps mounted forms between requests, keyed by an opaque form ID.
type Store struct {
	mu     sync.Mutex
	forms  map[string]*entry
	ttl    time.Duration
	now    func() time.Time
	report func(size int)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSizeReporter calls report with the number of stored forms whenever a
// form is mounted, discarded or evicted.
func WithSizeReporter(report func(size int)) StoreOption {
	return func(s *Store) {
		s.report = report
	}
}

// NewStore creates a Store evicting forms idle for longer than ttl.
func NewStore(ttl time.Duration, opts ...StoreOption) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		forms:  make(map[string]*entry),
		ttl:    ttl,
		now:    time.Now,
		report: func(int) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount creates a form for a freshly opened screen and returns its ID.
func (s *Store) Mount(nav domain.NavigationState) (string, *Form) {
	id := uuid.NewString()
	f := New(nav)

	s.mu.Lock()
	s.forms[id] = &entry{form: f, lastSeen: s.now()}
	size := len(s.forms)
	s.mu.Unlock()

	s.report(size)
	return id, f
}

// Get returns the form for id and marks it as recently used.
func (s *Store) Get(id string) (*Form, bool) {
	s.mu.Lock()
	e, ok := s.forms[id]
	if !ok {
		s.mu.Unlock()
		return nil, false
	}
	if s.now().Sub(e.lastSeen) > s.ttl {
		delete(s.forms, id)
		size := len(s.forms)
		s.mu.Unlock()
		s.report(size)
		return nil, false
	}
	e.lastSeen = s.now()
	s.mu.Unlock()
	return e.form, true
}

// Discard drops a form, e.g. once the user navigated away after logging in.
func (s *Store) Discard(id string) {
	s.mu.Lock()
	delete(s.forms, id)
	size := len(s.forms)
	s.mu.Unlock()

	s.report(size)
}

// Len returns the number of stored forms.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Sweep evicts idle forms and returns how many were removed. Forms with a
// submission in flight are kept.
func (s *Store) Sweep() int {
	s.mu.Lock()
	removed := 0
	now := s.now()
	for id, e := range s.forms {
		if now.Sub(e.lastSeen) > s.ttl && !e.form.IsSubmitting() {
			delete(s.forms, id)
			removed++
		}
	}
	size := len(s.forms)
	s.mu.Unlock()

	s.report(size)
	return removed
}

// Run sweeps the store every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
