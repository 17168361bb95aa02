package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/config"
	"kidcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Registry owns every live session. Nothing is persisted; a restart drops
// all drafts.
type Registry struct {
	mu              sync.Mutex
	sessions        map[uuid.UUID]*Session
	source          FranchiseSource
	clock           clock.Clock
	notificationTTL time.Duration
	idleTimeout     time.Duration
	logger          *slog.Logger
}

func NewRegistry(source FranchiseSource, clk clock.Clock, sessionCfg config.SessionConfig, notificationCfg config.NotificationConfig, logger *slog.Logger) *Registry {
	return &Registry{
		sessions:        make(map[uuid.UUID]*Session),
		source:          source,
		clock:           clk,
		notificationTTL: notificationCfg.TTL,
		idleTimeout:     sessionCfg.IdleTimeout,
		logger:          logger,
	}
}

func (r *Registry) Create() *Session {
	now := r.clock.Now()
	s := NewSession(uuid.New(), r.source, NewUI(r.clock, r.notificationTTL), now)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Debug("Session created", "session_id", s.ID.String())
	return s
}

// Get returns the session and marks it as active.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	now := r.clock.Now()

	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return nil, errs.ErrSessionNotFound
	}
	// checked and touched under the registry lock so a concurrent sweep
	// either sees the fresh timestamp or removes the session first
	if r.idleTimeout > 0 && now.Sub(s.LastSeen()) > r.idleTimeout {
		delete(r.sessions, id)
		r.mu.Unlock()
		s.Close()
		r.logger.Debug("Session discarded", "session_id", id.String())
		return nil, errs.ErrSessionExpired
	}
	s.Touch(now)
	r.mu.Unlock()
	return s, nil
}

func (r *Registry) Discard(id uuid.UUID) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Close()
		r.logger.Debug("Session discarded", "session_id", id.String())
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the idle timeout.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}
	now := r.clock.Now()

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen()) > r.idleTimeout {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	if len(stale) > 0 {
		r.logger.Info("Idle sessions swept", "count", len(stale))
	}
	return len(stale)
}

// RunSweeper sweeps on every tick until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close discards every session.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[uuid.UUID]*Session)
	r.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}
