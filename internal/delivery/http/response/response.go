package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error envelope shared by all failure paths.
type Response struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, Response{
		Success:   false,
		Error:     message,
		RequestID: idStr,
	})
}
