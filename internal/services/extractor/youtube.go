package extractor

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/vidfetch/vidfetch/internal/config"
)

// YouTubeExtractor is a native fallback backend used when the yt-dlp
// binary is not installed. It only handles YouTube URLs; every other
// platform fails with a "not supported" extraction error.
type YouTubeExtractor struct {
	client  *youtube.Client
	timeout time.Duration
}

var youtubeURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
}

func NewYouTubeExtractor(cfg *config.ExtractorConfig) *YouTubeExtractor {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	return &YouTubeExtractor{
		client: &youtube.Client{
			HTTPClient: httpClient,
		},
		timeout: cfg.Timeout,
	}
}

func (e *YouTubeExtractor) Name() string {
	return "youtube"
}

func (e *YouTubeExtractor) Extract(ctx context.Context, url string) (*Result, error) {
	videoID, err := parseYouTubeURL(url)
	if err != nil {
		return nil, NewExtractionError(fmt.Sprintf("%s: this platform is not supported by the native backend", url))
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	video, err := e.client.GetVideoContext(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoPrivate) {
			return nil, NewExtractionError("Private video")
		}
		return nil, NewExtractionError(err.Error())
	}

	duration := video.Duration.Seconds()
	result := &Result{
		ID:          video.ID,
		Title:       video.Title,
		Description: video.Description,
		Duration:    &duration,
		Uploader:    video.Author,
		ViewCount:   int64(video.Views),
		WebpageURL:  "https://www.youtube.com/watch?v=" + video.ID,
		Extractor:   "youtube",
	}

	if !video.PublishDate.IsZero() {
		result.UploadDate = video.PublishDate.Format("20060102")
	}

	for _, thumb := range video.Thumbnails {
		result.Thumbnails = append(result.Thumbnails, Thumbnail{
			URL:    thumb.URL,
			Width:  int(thumb.Width),
			Height: int(thumb.Height),
		})
	}

	for i := range video.Formats {
		result.Formats = append(result.Formats, convertFormat(&video.Formats[i]))
	}

	return result, nil
}

func parseYouTubeURL(url string) (string, error) {
	for _, pattern := range youtubeURLPatterns {
		matches := pattern.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}
	return "", fmt.Errorf("could not extract video ID from URL: %s", url)
}

func convertFormat(f *youtube.Format) RawFormat {
	ext, vcodec, acodec := parseMimeType(f.MimeType)

	raw := RawFormat{
		FormatID:   strconv.Itoa(f.ItagNo),
		URL:        f.URL,
		Ext:        ext,
		FormatNote: f.QualityLabel,
		VCodec:     &vcodec,
		ACodec:     &acodec,
	}

	if f.Width > 0 {
		width := f.Width
		raw.Width = &width
	}
	if f.Height > 0 {
		height := f.Height
		raw.Height = &height
	}
	if f.FPS > 0 {
		fps := float64(f.FPS)
		raw.FPS = &fps
	}
	if f.ContentLength > 0 {
		size := f.ContentLength
		raw.Filesize = &size
	}
	if f.Bitrate > 0 {
		tbr := float64(f.Bitrate) / 1000
		raw.TBR = &tbr
	}
	if acodec != "none" && f.AverageBitrate > 0 {
		abr := float64(f.AverageBitrate) / 1000
		raw.ABR = &abr
	}

	return raw
}

// parseMimeType splits a mime type like
// `video/mp4; codecs="avc1.4d401f, mp4a.40.2"` into a container extension
// and the video/audio codec tags, using "none" for a missing stream.
func parseMimeType(mimeType string) (ext, vcodec, acodec string) {
	mediaType, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return "mp4", "none", "none"
	}

	var codecs []string
	for _, codec := range strings.Split(params["codecs"], ",") {
		codec = strings.TrimSpace(codec)
		if codec != "" {
			codecs = append(codecs, codec)
		}
	}

	kind, subtype, _ := strings.Cut(mediaType, "/")
	switch {
	case kind == "audio" && subtype == "mp4":
		ext = "m4a"
	case subtype == "3gpp":
		ext = "3gp"
	default:
		ext = subtype
	}

	vcodec, acodec = "none", "none"
	if kind == "audio" {
		if len(codecs) > 0 {
			acodec = codecs[0]
		}
		return ext, vcodec, acodec
	}

	if len(codecs) > 0 {
		vcodec = codecs[0]
	}
	if len(codecs) > 1 {
		acodec = codecs[1]
	}
	return ext, vcodec, acodec
}
