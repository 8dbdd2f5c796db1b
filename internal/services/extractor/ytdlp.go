package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/vidfetch/vidfetch/internal/config"
	"github.com/vidfetch/vidfetch/internal/utils"
)

// YtDlpExtractor shells out to the yt-dlp binary and parses its JSON dump.
type YtDlpExtractor struct {
	binary  string
	timeout time.Duration
	retries int
}

func NewYtDlpExtractor(cfg *config.ExtractorConfig) *YtDlpExtractor {
	return &YtDlpExtractor{
		binary:  cfg.BinaryPath,
		timeout: cfg.Timeout,
		retries: cfg.Retries,
	}
}

func (e *YtDlpExtractor) Name() string {
	return "ytdlp"
}

func (e *YtDlpExtractor) Extract(ctx context.Context, url string) (*Result, error) {
	// The hard deadline must cover the backend's own retry budget.
	deadline := e.timeout * time.Duration(e.retries+1)
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	args := []string{
		"-J",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"--socket-timeout", strconv.Itoa(int(e.timeout.Seconds())),
		"--retries", strconv.Itoa(e.retries),
		url,
	}

	utils.LogDebug(ctx, "Running yt-dlp", utils.Fields{"url": url})

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, NewExtractionError("extraction timed out")
		}
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = err.Error()
		}
		return nil, NewExtractionError(message)
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	return &result, nil
}
