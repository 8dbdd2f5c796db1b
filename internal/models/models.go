package models

import "time"

// FetchRequest is the request body accepted by the fetch endpoint.
type FetchRequest struct {
	URL string `json:"url" form:"url"`
}

// FormatInfo is one downloadable variant of a video. Quality and Filesize
// are always non-empty human readable strings.
type FormatInfo struct {
	ID            string   `json:"id"`
	URL           string   `json:"url"`
	Ext           string   `json:"ext"`
	Quality       string   `json:"quality"`
	Filesize      string   `json:"filesize"`
	FilesizeBytes int64    `json:"filesize_bytes"`
	Width         *int     `json:"width"`
	Height        *int     `json:"height"`
	FPS           *float64 `json:"fps"`
	VCodec        string   `json:"vcodec"`
	ACodec        string   `json:"acodec"`
	ABR           *float64 `json:"abr"`
	TBR           *float64 `json:"tbr"`
}

// FormatBuckets holds the three ranked, capped format groups, most
// preferred first.
type FormatBuckets struct {
	Combined  []FormatInfo `json:"combined"`
	VideoOnly []FormatInfo `json:"video_only"`
	AudioOnly []FormatInfo `json:"audio_only"`
}

type TotalFormats struct {
	Combined  int `json:"combined"`
	VideoOnly int `json:"video_only"`
	AudioOnly int `json:"audio_only"`
}

// VideoInfo is the normalized video metadata block.
type VideoInfo struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Thumbnail       *string `json:"thumbnail"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Uploader        string  `json:"uploader"`
	UploaderID      string  `json:"uploader_id"`
	ViewCount       int64   `json:"view_count"`
	UploadDate      string  `json:"upload_date"`
	WebpageURL      string  `json:"webpage_url"`
	Extractor       string  `json:"extractor"`
	Platform        string  `json:"platform"`
}

// FetchResponse is the success envelope of the fetch endpoint.
type FetchResponse struct {
	Success      bool          `json:"success"`
	VideoInfo    VideoInfo     `json:"video_info"`
	Formats      FormatBuckets `json:"formats"`
	TotalFormats TotalFormats  `json:"total_formats"`
	ExtractedAt  string        `json:"extracted_at"`
	OriginalURL  string        `json:"original_url"`
}

type ErrorDetail struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the shared error envelope. Clients branch on success
// and error.code only.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message:   message,
			Code:      code,
			Timestamp: time.Now().Format(time.RFC3339),
		},
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// ServiceInfo is the static service descriptor served at the root.
type ServiceInfo struct {
	Service            string            `json:"service"`
	Version            string            `json:"version"`
	Status             string            `json:"status"`
	Endpoints          map[string]string `json:"endpoints"`
	SupportedPlatforms []string          `json:"supported_platforms"`
	Features           []string          `json:"features"`
}
