package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/anbuvel/railbook/internal/core/domain"
)

const draftKey = "currentBooking"

// SessionStore is the session-scoped draft slot. It lives in memory so the
// draft dies with the process, which is the point: session scope must not
// survive a session end.
type SessionStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{data: map[string][]byte{}}
}

// Draft returns the stored draft, or nil when absent. A corrupted blob reads
// as absent; parse failures never cross this boundary.
func (s *SessionStore) Draft(ctx context.Context) (*domain.BookingDraft, error) {
	s.mu.Lock()
	raw, ok := s.data[draftKey]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, nil
	}
	return &draft, nil
}

func (s *SessionStore) SetDraft(ctx context.Context, draft *domain.BookingDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[draftKey] = raw
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) ClearDraft(ctx context.Context) error {
	s.mu.Lock()
	delete(s.data, draftKey)
	s.mu.Unlock()
	return nil
}
