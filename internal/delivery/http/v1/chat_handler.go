package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/apperror"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/openai"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// ChatResponse is the success payload for POST /chat.
type ChatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

// NewChatHandler registers the chat route (public, no auth required)
func NewChatHandler(r *gin.Engine, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{
		chatUC: chatUC,
	}

	r.POST("/chat", handler.Ask)
}

// Ask relays one chat message to the completion provider. Upstream auth and
// rate-limit failures keep their status so the widget can react accordingly.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Message is required"))
		return
	}

	reply, err := h.chatUC.Ask(c.Request.Context(), req.Message)
	if err != nil {
		c.Error(mapChatError(err))
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Success: true,
		Reply:   reply,
	})
}

func mapChatError(err error) *apperror.AppError {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return apperror.BadRequest(validationErr.Message)
	}

	var statusErr *openai.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperror.New(http.StatusUnauthorized, "Chat service authorization failed", err)
		case http.StatusTooManyRequests:
			return apperror.New(http.StatusTooManyRequests, "Chat service is rate limited, please try again shortly", err)
		}
	}

	return apperror.New(http.StatusInternalServerError, "Failed to generate a reply. Please try again later.", err)
}
