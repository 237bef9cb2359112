package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/config"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/delivery/http/middleware"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/delivery/http/response"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
)

type RouterDeps struct {
	HealthUC  domain.HealthUsecase
	ChatUC    domain.ChatUsecase
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Public routes - the whole surface is public, no auth anywhere
	NewHealthHandler(r, deps.HealthUC)
	NewChatHandler(r, deps.ChatUC)
	NewContactHandler(r, deps.ContactUC)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	return r
}
