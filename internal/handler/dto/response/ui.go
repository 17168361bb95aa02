package response

import (
	"kidcare-booking/internal/store"

	"github.com/jinzhu/copier"
)

type APIErrorResponse struct {
	ErrorCode string         `json:"error_code" copier:"Code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}

type NotificationResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type UIResponse struct {
	Loading       bool                   `json:"loading"`
	Errors        []APIErrorResponse     `json:"errors"`
	Notifications []NotificationResponse `json:"notifications"`
}

func FromUISnapshot(snap store.UISnapshot) (*UIResponse, error) {
	var res UIResponse
	if err := copier.CopyWithOption(&res, &snap, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Errors == nil {
		res.Errors = []APIErrorResponse{}
	}
	if res.Notifications == nil {
		res.Notifications = []NotificationResponse{}
	}
	return &res, nil
}
