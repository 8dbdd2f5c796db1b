package analyzer

import (
	"net/url"
	"strings"

	"github.com/vidfetch/vidfetch/internal/models"
	"github.com/vidfetch/vidfetch/internal/services/extractor"
	"github.com/vidfetch/vidfetch/internal/utils"
)

const maxDescriptionLength = 500

// platformTable maps host substrings to platform names. First match wins.
var platformTable = []struct {
	hosts []string
	name  string
}{
	{[]string{"youtube.com", "youtu.be"}, "YouTube"},
	{[]string{"facebook.com", "fb.watch"}, "Facebook"},
	{[]string{"tiktok.com"}, "TikTok"},
	{[]string{"instagram.com"}, "Instagram"},
	{[]string{"twitter.com", "x.com"}, "Twitter/X"},
	{[]string{"vimeo.com"}, "Vimeo"},
	{[]string{"dailymotion.com"}, "Dailymotion"},
}

// BuildVideoInfo maps raw extraction output into the stable metadata shape,
// applying the defaulting rules field by field.
func BuildVideoInfo(result *extractor.Result, originalURL string) models.VideoInfo {
	title := result.Title
	if title == "" {
		title = "title not specified"
	}

	description := result.Description
	if runes := []rune(description); len(runes) > maxDescriptionLength {
		description = string(runes[:maxDescriptionLength])
	}

	uploader := result.Uploader
	if uploader == "" {
		uploader = "not specified"
	}

	webpageURL := result.WebpageURL
	if webpageURL == "" {
		webpageURL = originalURL
	}

	var durationSeconds float64
	if result.Duration != nil {
		durationSeconds = *result.Duration
	}

	return models.VideoInfo{
		Title:           title,
		Description:     description,
		Thumbnail:       selectThumbnail(result),
		Duration:        utils.FormatDuration(durationSeconds),
		DurationSeconds: durationSeconds,
		Uploader:        uploader,
		UploaderID:      result.UploaderID,
		ViewCount:       result.ViewCount,
		UploadDate:      result.UploadDate,
		WebpageURL:      webpageURL,
		Extractor:       result.Extractor,
		Platform:        DetectPlatform(originalURL),
	}
}

// selectThumbnail picks the candidate with the largest pixel area, falling
// back to the flat thumbnail field. Returns nil when none is available.
func selectThumbnail(result *extractor.Result) *string {
	if len(result.Thumbnails) > 0 {
		best := result.Thumbnails[0]
		bestArea := best.Width * best.Height
		for _, candidate := range result.Thumbnails[1:] {
			if area := candidate.Width * candidate.Height; area > bestArea {
				best = candidate
				bestArea = area
			}
		}
		if best.URL != "" {
			thumbnail := best.URL
			return &thumbnail
		}
		return nil
	}

	if result.Thumbnail != "" {
		thumbnail := result.Thumbnail
		return &thumbnail
	}

	return nil
}

// DetectPlatform names the platform behind a URL by matching its host
// against the platform table, case-insensitively.
func DetectPlatform(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "other"
	}

	host := strings.ToLower(parsed.Host)
	for _, entry := range platformTable {
		for _, candidate := range entry.hosts {
			if strings.Contains(host, candidate) {
				return entry.name
			}
		}
	}
	return "other"
}
