package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vidfetch/vidfetch/internal/api/handlers"
	"github.com/vidfetch/vidfetch/internal/api/middleware"
	"github.com/vidfetch/vidfetch/internal/config"
	"github.com/vidfetch/vidfetch/internal/models"
	"github.com/vidfetch/vidfetch/internal/utils"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, infoHandler *handlers.InfoHandler, videoHandler *handlers.VideoHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Unhandled panics surface only as the generic INTERNAL_ERROR envelope
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.LogError(c.Request.Context(), "Panic recovered", fmt.Errorf("%v", recovered))
		appErr := utils.NewInternalError()
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewErrorResponse(string(appErr.Code), appErr.Message))
	}))
	engine.Use(middleware.CorrelationIDMiddleware())
	if cfg.CORS.Enabled {
		engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	}

	engine.GET("/", infoHandler.Home)

	api := engine.Group("/api")
	{
		api.GET("/health", infoHandler.Health)
		api.GET("/fetch", videoHandler.Fetch)
		api.POST("/fetch", videoHandler.Fetch)
	}

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(func(c *gin.Context) {
		appErr := utils.NewNotFoundError()
		c.JSON(http.StatusNotFound,
			models.NewErrorResponse(string(appErr.Code), appErr.Message))
	})

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	return r.engine.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
