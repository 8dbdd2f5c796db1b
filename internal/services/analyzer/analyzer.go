package analyzer

import (
	"context"
	"time"

	"github.com/vidfetch/vidfetch/internal/models"
	"github.com/vidfetch/vidfetch/internal/services/extractor"
	"github.com/vidfetch/vidfetch/internal/utils"
)

// Service runs the extraction pipeline: delegate to the backend, then
// classify formats and normalize metadata into the response envelope.
type Service struct {
	extractor extractor.Extractor
}

func New(ex extractor.Extractor) *Service {
	return &Service{extractor: ex}
}

// Analyze resolves a validated URL into the full fetch response, or a
// mapped API error when extraction fails.
func (s *Service) Analyze(ctx context.Context, url string) (*models.FetchResponse, *utils.AppError) {
	utils.LogInfo(ctx, "Starting video analysis", utils.Fields{
		"url":     url,
		"backend": s.extractor.Name(),
	})

	result, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return nil, MapExtractionError(ctx, err)
	}

	buckets := CategorizeFormats(result.Formats)
	videoInfo := BuildVideoInfo(result, url)

	utils.LogInfo(ctx, "Video analysis complete", utils.Fields{
		"title":    videoInfo.Title,
		"platform": videoInfo.Platform,
	})

	return &models.FetchResponse{
		Success:   true,
		VideoInfo: videoInfo,
		Formats:   buckets,
		TotalFormats: models.TotalFormats{
			Combined:  len(buckets.Combined),
			VideoOnly: len(buckets.VideoOnly),
			AudioOnly: len(buckets.AudioOnly),
		},
		ExtractedAt: time.Now().Format(time.RFC3339),
		OriginalURL: url,
	}, nil
}
