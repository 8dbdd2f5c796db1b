package analyzer

import (
	"fmt"
	"testing"

	"github.com/vidfetch/vidfetch/internal/services/extractor"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }
func strPtr(v string) *string     { return &v }

func combinedFormat(id string, height int, fps float64, filesize int64) extractor.RawFormat {
	return extractor.RawFormat{
		FormatID: id,
		URL:      "https://cdn.example.com/" + id,
		Ext:      "mp4",
		Width:    intPtr(height * 16 / 9),
		Height:   intPtr(height),
		FPS:      floatPtr(fps),
		VCodec:   strPtr("avc1"),
		ACodec:   strPtr("mp4a"),
		Filesize: int64Ptr(filesize),
	}
}

func TestCategorizeFormatsBuckets(t *testing.T) {
	formats := []extractor.RawFormat{
		combinedFormat("22", 720, 30, 5_000_000),
		{
			FormatID: "137",
			URL:      "https://cdn.example.com/137",
			Ext:      "mp4",
			Width:    intPtr(1920),
			Height:   intPtr(1080),
			VCodec:   strPtr("avc1"),
			ACodec:   strPtr("none"),
			Filesize: int64Ptr(80_000_000),
		},
		{
			FormatID: "140",
			URL:      "https://cdn.example.com/140",
			Ext:      "m4a",
			VCodec:   strPtr("none"),
			ACodec:   strPtr("mp4a"),
			ABR:      floatPtr(128),
			Filesize: int64Ptr(3_000_000),
		},
	}

	buckets := CategorizeFormats(formats)

	if len(buckets.Combined) != 1 || len(buckets.VideoOnly) != 1 || len(buckets.AudioOnly) != 1 {
		t.Fatalf("Expected one format per bucket, got %d/%d/%d",
			len(buckets.Combined), len(buckets.VideoOnly), len(buckets.AudioOnly))
	}

	if q := buckets.Combined[0].Quality; q != "720p" {
		t.Errorf("Combined quality = %q, expected \"720p\"", q)
	}
	if q := buckets.VideoOnly[0].Quality; q != "1080p (video only)" {
		t.Errorf("Video-only quality = %q, expected \"1080p (video only)\"", q)
	}
	if q := buckets.AudioOnly[0].Quality; q != "128kbps" {
		t.Errorf("Audio-only quality = %q, expected \"128kbps\"", q)
	}
	if fs := buckets.Combined[0].Filesize; fs != "4.8 MB" {
		t.Errorf("Combined filesize label = %q, expected \"4.8 MB\"", fs)
	}
}

func TestCategorizeFormatsHighFPSLabel(t *testing.T) {
	buckets := CategorizeFormats([]extractor.RawFormat{
		combinedFormat("a", 720, 60, 0),
		combinedFormat("b", 720, 30, 0),
		combinedFormat("c", 1080, 59.94, 0),
	})

	if len(buckets.Combined) != 3 {
		t.Fatalf("Expected 3 combined formats, got %d", len(buckets.Combined))
	}

	// Sorted descending by height, 1080 first
	if q := buckets.Combined[0].Quality; q != "1080p59.94" {
		t.Errorf("Quality = %q, expected \"1080p59.94\"", q)
	}
	if q := buckets.Combined[1].Quality; q != "720p60" {
		t.Errorf("Quality = %q, expected \"720p60\"", q)
	}
	if q := buckets.Combined[2].Quality; q != "720p" {
		t.Errorf("Quality = %q, expected \"720p\" (no suffix at 30fps)", q)
	}
}

func TestCategorizeFormatsAudioLabels(t *testing.T) {
	testCases := []struct {
		name     string
		format   extractor.RawFormat
		expected string
	}{
		{
			name: "Bitrate label",
			format: extractor.RawFormat{
				URL: "u", Ext: "m4a", ACodec: strPtr("mp4a"), ABR: floatPtr(160),
			},
			expected: "160kbps",
		},
		{
			name: "Extension label when bitrate missing",
			format: extractor.RawFormat{
				URL: "u", Ext: "m4a", ACodec: strPtr("mp4a"),
			},
			expected: "M4A",
		},
		{
			name: "Webm extension label",
			format: extractor.RawFormat{
				URL: "u", Ext: "webm", ACodec: strPtr("opus"),
			},
			expected: "WEBM",
		},
		{
			name: "Fallback label",
			format: extractor.RawFormat{
				URL: "u", Ext: "ogg", ACodec: strPtr("vorbis"),
			},
			expected: "standard quality",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buckets := CategorizeFormats([]extractor.RawFormat{tc.format})
			if len(buckets.AudioOnly) != 1 {
				t.Fatalf("Expected one audio-only format, got %d", len(buckets.AudioOnly))
			}
			if q := buckets.AudioOnly[0].Quality; q != tc.expected {
				t.Errorf("Quality = %q, expected %q", q, tc.expected)
			}
		})
	}
}

func TestCategorizeFormatsSkipsAndDrops(t *testing.T) {
	formats := []extractor.RawFormat{
		// No direct URL, excluded entirely
		{FormatID: "no-url", Ext: "mp4", VCodec: strPtr("avc1"), ACodec: strPtr("mp4a"), Width: intPtr(640), Height: intPtr(360)},
		// Neither stream, dropped silently
		{FormatID: "storyboard", URL: "https://cdn.example.com/sb", VCodec: strPtr("none"), ACodec: strPtr("none")},
		// Video codec but no width and no audio, dropped
		{FormatID: "no-width", URL: "https://cdn.example.com/nw", VCodec: strPtr("avc1"), ACodec: strPtr("none")},
		// Valid
		combinedFormat("ok", 360, 30, 1000),
	}

	buckets := CategorizeFormats(formats)
	total := len(buckets.Combined) + len(buckets.VideoOnly) + len(buckets.AudioOnly)
	if total != 1 {
		t.Errorf("Expected exactly 1 kept format, got %d", total)
	}
	if buckets.Combined[0].ID != "ok" {
		t.Errorf("Kept format = %q, expected \"ok\"", buckets.Combined[0].ID)
	}
}

func TestCategorizeFormatsCapsAndOrder(t *testing.T) {
	var formats []extractor.RawFormat
	for i := 0; i < 25; i++ {
		formats = append(formats, combinedFormat(
			fmt.Sprintf("c%d", i), 144+i*48, 30, int64(1000*(i+1))))
	}
	for i := 0; i < 8; i++ {
		formats = append(formats, extractor.RawFormat{
			FormatID: fmt.Sprintf("v%d", i),
			URL:      "https://cdn.example.com/v",
			Width:    intPtr(1280),
			Height:   intPtr(720),
			VCodec:   strPtr("vp9"),
			ACodec:   strPtr("none"),
			Filesize: int64Ptr(int64(100 * (i + 1))),
		})
	}
	for i := 0; i < 7; i++ {
		formats = append(formats, extractor.RawFormat{
			FormatID: fmt.Sprintf("a%d", i),
			URL:      "https://cdn.example.com/a",
			Ext:      "m4a",
			VCodec:   strPtr("none"),
			ACodec:   strPtr("mp4a"),
			ABR:      floatPtr(float64(32 * (i + 1))),
		})
	}

	buckets := CategorizeFormats(formats)

	if len(buckets.Combined) != 10 {
		t.Errorf("Combined cap = %d, expected 10", len(buckets.Combined))
	}
	if len(buckets.VideoOnly) != 5 {
		t.Errorf("Video-only cap = %d, expected 5", len(buckets.VideoOnly))
	}
	if len(buckets.AudioOnly) != 5 {
		t.Errorf("Audio-only cap = %d, expected 5", len(buckets.AudioOnly))
	}

	// Combined sorted descending by height
	for i := 1; i < len(buckets.Combined); i++ {
		if *buckets.Combined[i-1].Height < *buckets.Combined[i].Height {
			t.Fatalf("Combined bucket not sorted descending by height at %d", i)
		}
	}

	// Equal heights fall back to filesize descending
	for i := 1; i < len(buckets.VideoOnly); i++ {
		if buckets.VideoOnly[i-1].FilesizeBytes < buckets.VideoOnly[i].FilesizeBytes {
			t.Fatalf("Video-only bucket not sorted descending by filesize at %d", i)
		}
	}

	// Audio sorted descending by bitrate
	for i := 1; i < len(buckets.AudioOnly); i++ {
		if *buckets.AudioOnly[i-1].ABR < *buckets.AudioOnly[i].ABR {
			t.Fatalf("Audio-only bucket not sorted descending by bitrate at %d", i)
		}
	}
}

func TestCategorizeFormatsDefaults(t *testing.T) {
	buckets := CategorizeFormats([]extractor.RawFormat{
		{
			FormatID:   "raw",
			URL:        "https://cdn.example.com/raw",
			FormatNote: "",
			VCodec:     strPtr("avc1"),
			ACodec:     strPtr("mp4a"),
			Width:      intPtr(640),
			// No height: label falls back to the default
		},
	})

	if len(buckets.Combined) != 1 {
		t.Fatalf("Expected one combined format, got %d", len(buckets.Combined))
	}

	format := buckets.Combined[0]
	if format.Quality != "standard quality" {
		t.Errorf("Quality = %q, expected \"standard quality\"", format.Quality)
	}
	if format.Ext != "mp4" {
		t.Errorf("Ext = %q, expected default \"mp4\"", format.Ext)
	}
	if format.Filesize != "not specified" {
		t.Errorf("Filesize label = %q, expected \"not specified\"", format.Filesize)
	}
	if format.FilesizeBytes != 0 {
		t.Errorf("FilesizeBytes = %d, expected 0", format.FilesizeBytes)
	}
}
