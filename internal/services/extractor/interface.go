package extractor

import "context"

// Extractor resolves a media URL into raw format and metadata records.
// Implementations own their socket timeout and retry budget; Extract is
// bounded by a hard deadline so a stuck backend never blocks a request
// indefinitely.
type Extractor interface {
	// Extract returns the raw extraction result for a URL. Extraction
	// failures are reported as *ExtractionError; anything else is an
	// internal fault.
	Extract(ctx context.Context, url string) (*Result, error)

	// Name identifies the backend.
	Name() string
}

// RawFormat is one per-format record as reported by the backend. All
// numeric fields are optional; nil means the backend did not report them.
type RawFormat struct {
	FormatID   string   `json:"format_id"`
	URL        string   `json:"url"`
	Ext        string   `json:"ext"`
	FormatNote string   `json:"format_note"`
	Width      *int     `json:"width"`
	Height     *int     `json:"height"`
	FPS        *float64 `json:"fps"`
	VCodec     *string  `json:"vcodec"`
	ACodec     *string  `json:"acodec"`
	ABR        *float64 `json:"abr"`
	TBR        *float64 `json:"tbr"`
	Filesize   *int64   `json:"filesize"`
}

// Thumbnail is one thumbnail candidate.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Result is the raw extraction output. Field names follow the backend's
// JSON output; missing fields keep their zero value.
type Result struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Duration    *float64    `json:"duration"`
	Thumbnail   string      `json:"thumbnail"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
	Uploader    string      `json:"uploader"`
	UploaderID  string      `json:"uploader_id"`
	ViewCount   int64       `json:"view_count"`
	UploadDate  string      `json:"upload_date"`
	WebpageURL  string      `json:"webpage_url"`
	Extractor   string      `json:"extractor"`
	Formats     []RawFormat `json:"formats"`
}
