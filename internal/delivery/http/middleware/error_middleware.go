package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/delivery/http/response"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/apperror"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed", "status", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				// Never expose internal error details to clients; log the
				// actual error server-side and send a generic message.
				logger.Log.Error("unhandled error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
