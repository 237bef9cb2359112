package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// ContactResponse is the success payload for POST /contact. Service names the
// provider that carried the emails; Warning is set when delivery is disabled.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Service string `json:"service"`
	Warning string `json:"warning,omitempty"`
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(r *gin.Engine, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/contact", handler.SubmitContact)
}

// SubmitContact accepts a contact form submission and dispatches the operator
// notification and submitter confirmation through the active mail provider.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.contactUC.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.Error(apperror.BadRequest(validationErr.Message))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		return
	}

	if !result.Delivered {
		c.JSON(http.StatusOK, ContactResponse{
			Success: true,
			Message: "Your message has been received.",
			Service: result.Provider,
			Warning: result.Warning,
		})
		return
	}

	c.JSON(http.StatusOK, ContactResponse{
		Success: true,
		Message: "Your message has been sent successfully!",
		Service: result.Provider,
	})
}
