package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the explicit context object handed to handlers: one visitor's
// booking flow, catalog cache and UI state.
type Session struct {
	ID      uuid.UUID
	Flow    *BookingFlow
	Catalog *Catalog
	UI      *UI

	mu       sync.Mutex
	lastSeen time.Time
}

func NewSession(id uuid.UUID, source FranchiseSource, ui *UI, now time.Time) *Session {
	return &Session{
		ID:       id,
		Flow:     NewBookingFlow(),
		Catalog:  NewCatalog(source, ui),
		UI:       ui,
		lastSeen: now,
	}
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close releases timers owned by the session.
func (s *Session) Close() {
	s.UI.Close()
}
