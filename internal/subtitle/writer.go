package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the subtitle to an SRT file
func (w *SRTWriter) Write(sub *Subtitle, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, entry := range sub.Entries {
		start, err := formatSRTTime(entry.Start)
		if err != nil {
			return fmt.Errorf("entry %d start: %w", i+1, err)
		}
		end, err := formatSRTTime(entry.End)
		if err != nil {
			return fmt.Errorf("entry %d end: %w", i+1, err)
		}

		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n", start, end))

		// text
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// writes the subtitle to a VTT file
func (w *VTTWriter) Write(sub *Subtitle, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for i, entry := range sub.Entries {
		start, err := formatVTTTime(entry.Start)
		if err != nil {
			return fmt.Errorf("entry %d start: %w", i+1, err)
		}
		end, err := formatVTTTime(entry.End)
		if err != nil {
			return fmt.Errorf("entry %d end: %w", i+1, err)
		}

		// cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n", start, end))

		// text
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT
	case ".vtt":
		return FormatVTT
	default:
		return FormatSRT
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	default:
		return ".srt"
	}
}

// sibling output path with the extension swapped for the format's
func OutputPathFor(inputPath string, format Format) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + GetExtensionForFormat(format)
}
