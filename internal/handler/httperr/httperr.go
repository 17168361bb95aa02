package httperr

import (
	"net/http"

	"kidcare-booking/internal/infra"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// APIErrorDetail mirrors the backend's structured error so the browser can
// branch on error_code.
type APIErrorDetail struct {
	ErrorCode string         `json:"error_code"`
	Details   map[string]any `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithAPIError renders a booking backend failure. Backend statuses pass
// through; transport and unclassified failures become 502.
func AbortWithAPIError(c *gin.Context, err error) {
	apiErr := infra.AsAPIError(err)
	AbortWithError(c, StatusFor(apiErr), apiErr, apiErr.Message, APIErrorDetail{
		ErrorCode: apiErr.Code,
		Details:   apiErr.Details,
	})
}

func StatusFor(apiErr *infra.APIError) int {
	if apiErr.Kind == infra.KindBackend && apiErr.Status >= 400 && apiErr.Status < 600 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
