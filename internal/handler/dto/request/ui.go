package request

type AddNotificationRequest struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type,omitempty" binding:"omitempty,oneof=success error info"`
}
