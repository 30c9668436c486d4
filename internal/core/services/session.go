package services

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the explicit context object for one booking session: the
// logged-in user, their access token, and the busy flag that keeps the draft
// single-writer while a payment is settling. Services receive it from the
// composition root; the draft store is its only persisted projection.
type Session struct {
	ID     uuid.UUID
	UserID int64
	Token  string

	mu   sync.Mutex
	busy bool
}

func NewSession() *Session {
	return &Session{ID: uuid.New(), UserID: 1}
}

// TryAcquire marks the session busy. It fails if a payment is already in
// flight; the caller must Release when done.
func (s *Session) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Session) Release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
