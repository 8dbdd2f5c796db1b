package extractor

import (
	"fmt"
	"os/exec"

	"github.com/vidfetch/vidfetch/internal/config"
)

// New creates the configured extraction backend. The "auto" backend probes
// for the yt-dlp binary and falls back to the native YouTube client when it
// is not installed.
func New(cfg *config.ExtractorConfig) (Extractor, error) {
	switch cfg.Backend {
	case "ytdlp":
		return NewYtDlpExtractor(cfg), nil
	case "youtube":
		return NewYouTubeExtractor(cfg), nil
	case "auto", "":
		if _, err := exec.LookPath(cfg.BinaryPath); err == nil {
			return NewYtDlpExtractor(cfg), nil
		}
		return NewYouTubeExtractor(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported extractor backend: %s", cfg.Backend)
	}
}
