package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/autoflip/backend/config"
	"github.com/autoflip/backend/internal/api/handler"
	"github.com/autoflip/backend/internal/api/middleware"
)

const serviceName = "autoflip-backend"

type Router struct {
	userHandler     *handler.UserHandler
	analysisHandler *handler.AnalysisHandler
	logger          *zap.Logger
	cfg             *config.Config
}

func NewRouter(
	userHandler *handler.UserHandler,
	analysisHandler *handler.AnalysisHandler,
	logger *zap.Logger,
	cfg *config.Config,
) *Router {
	return &Router{
		userHandler:     userHandler,
		analysisHandler: analysisHandler,
		logger:          logger,
		cfg:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(r.logger))
	engine.Use(middleware.CORS())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	engine.POST("/users/upsert", r.userHandler.Upsert)
	engine.POST("/analyze", r.analysisHandler.Analyze)
	engine.GET("/analyses", r.analysisHandler.List)
	engine.GET("/analyses/:id", r.analysisHandler.Get)

	return engine
}
