package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vidfetch/vidfetch/internal/models"
	"github.com/vidfetch/vidfetch/internal/services/extractor"
	"github.com/vidfetch/vidfetch/internal/utils"
)

const (
	maxCombinedFormats  = 10
	maxVideoOnlyFormats = 5
	maxAudioOnlyFormats = 5
)

var audioExtLabels = map[string]bool{
	"mp3":  true,
	"m4a":  true,
	"webm": true,
}

// CategorizeFormats partitions raw format records into combined, video-only
// and audio-only buckets, derives quality and size labels, and ranks and
// truncates each bucket. Malformed records degrade gracefully; records with
// neither stream or without a direct URL are dropped silently.
func CategorizeFormats(formats []extractor.RawFormat) models.FormatBuckets {
	combined := []models.FormatInfo{}
	videoOnly := []models.FormatInfo{}
	audioOnly := []models.FormatInfo{}

	for i := range formats {
		raw := &formats[i]
		if raw.URL == "" {
			continue
		}

		info := newFormatInfo(raw)

		hasVideo := codecPresent(raw.VCodec) && intValue(raw.Width) > 0
		hasAudio := codecPresent(raw.ACodec)

		switch {
		case hasVideo && hasAudio:
			if height := intValue(raw.Height); height > 0 {
				label := fmt.Sprintf("%dp", height)
				if raw.FPS != nil && *raw.FPS > 30 {
					label += formatRate(*raw.FPS)
				}
				info.Quality = label
			}
			combined = append(combined, info)

		case hasVideo:
			if height := intValue(raw.Height); height > 0 {
				info.Quality = fmt.Sprintf("%dp (video only)", height)
			}
			videoOnly = append(videoOnly, info)

		case hasAudio:
			info.Quality = audioQualityLabel(raw)
			audioOnly = append(audioOnly, info)
		}
	}

	sortByHeight(combined)
	sortByHeight(videoOnly)
	sortByBitrate(audioOnly)

	return models.FormatBuckets{
		Combined:  truncate(combined, maxCombinedFormats),
		VideoOnly: truncate(videoOnly, maxVideoOnlyFormats),
		AudioOnly: truncate(audioOnly, maxAudioOnlyFormats),
	}
}

func newFormatInfo(raw *extractor.RawFormat) models.FormatInfo {
	quality := raw.FormatNote
	if quality == "" {
		quality = "standard quality"
	}

	ext := raw.Ext
	if ext == "" {
		ext = "mp4"
	}

	return models.FormatInfo{
		ID:            raw.FormatID,
		URL:           raw.URL,
		Ext:           ext,
		Quality:       quality,
		Filesize:      utils.FormatFilesize(int64Value(raw.Filesize)),
		FilesizeBytes: int64Value(raw.Filesize),
		Width:         raw.Width,
		Height:        raw.Height,
		FPS:           raw.FPS,
		VCodec:        codecLabel(raw.VCodec),
		ACodec:        codecLabel(raw.ACodec),
		ABR:           raw.ABR,
		TBR:           raw.TBR,
	}
}

func audioQualityLabel(raw *extractor.RawFormat) string {
	if raw.ABR != nil && *raw.ABR > 0 {
		return formatRate(*raw.ABR) + "kbps"
	}
	if audioExtLabels[raw.Ext] {
		return strings.ToUpper(raw.Ext)
	}
	return "standard quality"
}

// Stable sorts so the extractor's original order breaks remaining ties.

func sortByHeight(formats []models.FormatInfo) {
	sort.SliceStable(formats, func(i, j int) bool {
		hi, hj := intValue(formats[i].Height), intValue(formats[j].Height)
		if hi != hj {
			return hi > hj
		}
		return formats[i].FilesizeBytes > formats[j].FilesizeBytes
	})
}

func sortByBitrate(formats []models.FormatInfo) {
	sort.SliceStable(formats, func(i, j int) bool {
		bi, bj := floatValue(formats[i].ABR), floatValue(formats[j].ABR)
		if bi != bj {
			return bi > bj
		}
		return formats[i].FilesizeBytes > formats[j].FilesizeBytes
	})
}

func truncate(formats []models.FormatInfo, limit int) []models.FormatInfo {
	if len(formats) > limit {
		return formats[:limit]
	}
	return formats
}

func codecPresent(codec *string) bool {
	return codec != nil && *codec != "" && *codec != "none"
}

func codecLabel(codec *string) string {
	if codec == nil || *codec == "" {
		return "none"
	}
	return *codec
}

// formatRate renders a rate in its shortest decimal form, so 60.0 prints
// as "60" while 59.94 prints verbatim.
func formatRate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
