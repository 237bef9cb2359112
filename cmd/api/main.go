package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/config"
	v1 "github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/delivery/http/v1"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/usecase"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/logger"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/mail"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/openai"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting spirolink backend", "port", cfg.Port)

	// 3. OpenAI key is mandatory - refuse to serve without the chat relay
	if cfg.OpenAIAPIKey == "" {
		logger.Log.Error("OPENAI_API_KEY is not set - refusing to start")
		os.Exit(1)
	}
	completionClient := openai.New(cfg.OpenAIAPIKey)

	// 4. Select Mail Transport
	// Selection (including the SMTP handshake check) completes before the
	// listener accepts connections, so requests never race initialization.
	selectCtx, cancelSelect := context.WithTimeout(context.Background(), 15*time.Second)
	transport := mail.Select(selectCtx, cfg)
	cancelSelect()

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(transport, cfg)
	chatUC := usecase.NewChatUsecase(completionClient)
	healthUC := usecase.NewHealthUsecase(transport, completionClient.Configured())

	// 6. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HealthUC:  healthUC,
		ChatUC:    chatUC,
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
