// Package relay carries a rejected form submission across the redirect back
// to its form. Entries are keyed by an opaque per-browser session id and are
// read at most once.
package relay

import (
	"context"
	"sync"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/pkg/apierrors"
)

// State is one rejected attempt. TaskID is zero for the create form.
type State struct {
	TaskID uint64
	Form   dto.TaskForm
	Errors []apierrors.FieldError
}

type Store interface {
	// Stash replaces whatever the session held.
	Stash(ctx context.Context, sessionID string, state State) error
	// Consume returns the session's entry and removes it in the same step.
	Consume(ctx context.Context, sessionID string) (State, bool, error)
}

const DefaultTTL = 10 * time.Minute

type entry struct {
	state     State
	expiresAt time.Time
}

// MemoryStore keeps entries in process memory. Expired entries are never
// returned and are swept on every write.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (s *MemoryStore) Stash(_ context.Context, sessionID string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.entries[sessionID] = entry{state: state, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, sessionID string) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return State{}, false, nil
	}
	delete(s.entries, sessionID)
	if !s.now().Before(e.expiresAt) {
		return State{}, false, nil
	}
	return e.state, true, nil
}

// Len reports the number of held entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
