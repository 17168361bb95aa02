package response

import "time"

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type NotificationCreatedResponse struct {
	ID string `json:"id"`
}
