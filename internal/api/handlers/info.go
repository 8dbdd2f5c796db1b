package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidfetch/vidfetch/internal/models"
)

const (
	serviceName    = "video-downloader-api"
	serviceVersion = "1.0.0"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// Home godoc
// @Summary Service descriptor
// @Description Static information about the API: endpoints, supported platforms and features
// @Tags info
// @Produce json
// @Success 200 {object} models.ServiceInfo
// @Router / [get]
func (h *InfoHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceInfo{
		Service: "Advanced Video Download Engine",
		Version: serviceVersion,
		Status:  "available",
		Endpoints: map[string]string{
			"/api/fetch":  "analyze a video URL and list downloadable formats",
			"/api/health": "service health check",
		},
		SupportedPlatforms: []string{
			"YouTube", "Facebook", "TikTok", "Instagram",
			"Twitter/X", "Vimeo", "Dailymotion", "1000+ more sites",
		},
		Features: []string{
			"full video metadata extraction",
			"smart categorization of available formats",
			"all qualities and containers supported",
			"structured error handling",
			"simple JSON API",
		},
	})
}

// Health godoc
// @Summary Health check endpoint
// @Description Check the health of the service
// @Tags info
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (h *InfoHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   serviceName,
	})
}
