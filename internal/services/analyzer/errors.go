package analyzer

import (
	"context"
	"errors"
	"strings"

	"github.com/vidfetch/vidfetch/internal/services/extractor"
	"github.com/vidfetch/vidfetch/internal/utils"
)

// MapExtractionError classifies a failed extraction into an API error.
// Backend failures are matched on message substrings, first match wins;
// the matching is fragile by nature and kept behind this single function
// so a structured taxonomy can replace it without touching callers.
// Anything that is not an *extractor.ExtractionError is logged with full
// detail and surfaced only as a generic error.
func MapExtractionError(ctx context.Context, err error) *utils.AppError {
	var extractionErr *extractor.ExtractionError
	if !errors.As(err, &extractionErr) {
		utils.LogError(ctx, "Unexpected extraction failure", err)
		return utils.NewUnexpectedError()
	}

	message := extractionErr.Message
	switch {
	case strings.Contains(message, "Video unavailable"):
		return utils.NewVideoUnavailableError()
	case strings.Contains(message, "Private video"):
		return utils.NewPrivateVideoError()
	case strings.Contains(strings.ToLower(message), "not supported"):
		return utils.NewUnsupportedPlatformError()
	default:
		return utils.NewExtractionFailedError(message)
	}
}
