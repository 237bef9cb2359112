package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

// NewHealthHandler registers the health route
func NewHealthHandler(r *gin.Engine, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{
		healthUC: healthUC,
	}

	r.GET("/health", handler.Check)
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
