package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/autoflip/backend/config"
	"github.com/autoflip/backend/internal/api"
	"github.com/autoflip/backend/internal/api/handler"
	"github.com/autoflip/backend/internal/database"
	"github.com/autoflip/backend/internal/pkg/llm"
	"github.com/autoflip/backend/internal/repository"
	"github.com/autoflip/backend/internal/service"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := newLogger(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect database", zap.Error(err))
	}
	logger.Info("Database connected")

	evaluator := llm.NewClient(cfg.OpenAI)

	userRepo := repository.NewUserRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	userService := service.NewUserService(userRepo)
	analysisService := service.NewAnalysisService(analysisRepo, evaluator, logger)

	userHandler := handler.NewUserHandler(userService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	router := api.NewRouter(userHandler, analysisHandler, logger, cfg)
	engine := router.Setup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", zap.String("addr", addr))
	if err := engine.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
