package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vidfetch/vidfetch/internal/models"
	"github.com/vidfetch/vidfetch/internal/services/analyzer"
	"github.com/vidfetch/vidfetch/internal/utils"
)

type VideoHandler struct {
	analyzer *analyzer.Service
}

func NewVideoHandler(analyzer *analyzer.Service) *VideoHandler {
	return &VideoHandler{analyzer: analyzer}
}

// Fetch godoc
// @Summary Analyze a video URL
// @Description Validate the URL, extract video metadata and return the available formats grouped into combined, video-only and audio-only buckets
// @Tags video
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body models.FetchRequest false "Video URL (POST body)"
// @Param url query string false "Video URL (query parameter)"
// @Success 200 {object} models.FetchResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/fetch [post]
// @Router /api/fetch [get]
func (h *VideoHandler) Fetch(c *gin.Context) {
	ctx := c.Request.Context()

	rawURL := h.requestURL(c)
	if rawURL == "" {
		h.errorResponse(c, utils.NewMissingURLError())
		return
	}

	normalizedURL, appErr := utils.ValidateURL(rawURL)
	if appErr != nil {
		h.errorResponse(c, appErr)
		return
	}

	result, appErr := h.analyzer.Analyze(ctx, normalizedURL)
	if appErr != nil {
		h.errorResponse(c, appErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

// requestURL pulls the url field from the JSON body, the form field or the
// query parameter, in that precedence for POST; GET only reads the query.
func (h *VideoHandler) requestURL(c *gin.Context) string {
	if c.Request.Method == http.MethodPost {
		if strings.Contains(c.ContentType(), "application/json") {
			var req models.FetchRequest
			if err := c.ShouldBindJSON(&req); err == nil && req.URL != "" {
				return req.URL
			}
		}
		if url := c.PostForm("url"); url != "" {
			return url
		}
	}
	return c.Query("url")
}

func (h *VideoHandler) errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, models.NewErrorResponse(string(err.Code), err.Message))
}
