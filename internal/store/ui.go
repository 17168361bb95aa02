package store

import (
	"slices"
	"sync"
	"time"

	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const DefaultNotificationTTL = 5 * time.Second

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyInfo    NotificationType = "info"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotifySuccess, NotifyError, NotifyInfo:
		return true
	default:
		return false
	}
}

type Notification struct {
	ID      string
	Message string
	Type    NotificationType
}

type UISnapshot struct {
	Loading       bool
	Errors        []infra.APIError
	Notifications []Notification
}

// UI holds the transient view state shared by one session: a single loading
// flag, accumulated errors and self-expiring notifications.
type UI struct {
	mu            sync.Mutex
	clock         clock.Clock
	ttl           time.Duration
	loading       bool
	errors        []infra.APIError
	notifications []Notification
	timers        map[string]clock.Timer
}

func NewUI(clk clock.Clock, ttl time.Duration) *UI {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &UI{
		clock:  clk,
		ttl:    ttl,
		timers: make(map[string]clock.Timer),
	}
}

// SetLoading is not scoped per operation; the last writer wins.
func (u *UI) SetLoading(loading bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.loading = loading
}

func (u *UI) Loading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loading
}

func (u *UI) AddError(err infra.APIError) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errors = append(u.errors, err)
}

func (u *UI) ClearErrors() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errors = nil
}

func (u *UI) Errors() []infra.APIError {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.errors)
}

// AddNotification appends a notification and schedules its removal after
// the TTL. An unknown type is treated as info.
func (u *UI) AddNotification(message string, typ NotificationType) string {
	if !typ.IsValid() {
		typ = NotifyInfo
	}
	id := uuid.NewString()

	u.mu.Lock()
	defer u.mu.Unlock()
	u.notifications = append(u.notifications, Notification{ID: id, Message: message, Type: typ})
	u.timers[id] = u.clock.AfterFunc(u.ttl, func() { u.expire(id) })
	return id
}

// RemoveNotification drops the notification and cancels its timer. Unknown
// ids are ignored.
func (u *UI) RemoveNotification(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if t, ok := u.timers[id]; ok {
		t.Stop()
		delete(u.timers, id)
	}
	u.removeLocked(id)
}

func (u *UI) expire(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.timers, id)
	u.removeLocked(id)
}

func (u *UI) removeLocked(id string) {
	u.notifications = slices.DeleteFunc(u.notifications, func(n Notification) bool { return n.ID == id })
}

func (u *UI) Notifications() []Notification {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.notifications)
}

func (u *UI) Snapshot() UISnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return UISnapshot{
		Loading:       u.loading,
		Errors:        slices.Clone(u.errors),
		Notifications: slices.Clone(u.notifications),
	}
}

// Close cancels every pending expiry timer.
func (u *UI) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, t := range u.timers {
		t.Stop()
		delete(u.timers, id)
	}
}
