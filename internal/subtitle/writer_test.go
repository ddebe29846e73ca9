package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testSubtitle() *Subtitle {
	return &Subtitle{
		Entries: []Entry{
			{Index: 1, Start: 0, End: 3.2, Text: "你好世界。"},
			{Index: 2, Start: 3.2, End: 5.853, Text: "第二行字幕测试"},
		},
	}
}

func TestSRTWriterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")

	writer, err := NewWriter(FormatSRT)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := writer.Write(testSubtitle(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:03,200\n" +
		"你好世界。\n\n" +
		"2\n" +
		"00:00:03,200 --> 00:00:05,850\n" +
		"第二行字幕测试\n\n"
	if string(content) != want {
		t.Errorf("SRT output mismatch:\ngot:\n%s\nwant:\n%s", content, want)
	}
}

func TestVTTWriterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.vtt")

	writer, err := NewWriter(FormatVTT)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := writer.Write(testSubtitle(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "WEBVTT\n\n" +
		"1\n" +
		"00:00:00.000 --> 00:00:03.200\n" +
		"你好世界。\n\n" +
		"2\n" +
		"00:00:03.200 --> 00:00:05.850\n" +
		"第二行字幕测试\n\n"
	if string(content) != want {
		t.Errorf("VTT output mismatch:\ngot:\n%s\nwant:\n%s", content, want)
	}
}

func TestSRTWriterEmptySubtitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.srt")

	writer, _ := NewWriter(FormatSRT)
	if err := writer.Write(&Subtitle{}, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected empty body, got %q", content)
	}
}

func TestSRTWriterRejectsNegativeTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.srt")

	writer, _ := NewWriter(FormatSRT)
	sub := &Subtitle{
		Entries: []Entry{{Index: 1, Start: -1, End: 2, Text: "bad"}},
	}

	err := writer.Write(sub, path)
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestNewWriterUnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(Format("ass")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		input  string
		format Format
		want   string
	}{
		{"talk.json", FormatSRT, "talk.srt"},
		{"/data/ep1.json", FormatSRT, "/data/ep1.srt"},
		{"talk.json", FormatVTT, "talk.vtt"},
		{"noext", FormatSRT, "noext.srt"},
	}

	for _, tt := range tests {
		if got := OutputPathFor(tt.input, tt.format); got != tt.want {
			t.Errorf(
				"OutputPathFor(%q, %q) = %q, want %q",
				tt.input,
				tt.format,
				got,
				tt.want,
			)
		}
	}
}

func TestGetFormatFromExtension(t *testing.T) {
	if got := GetFormatFromExtension("a.vtt"); got != FormatVTT {
		t.Errorf("expected vtt, got %s", got)
	}
	if got := GetFormatFromExtension("a.srt"); got != FormatSRT {
		t.Errorf("expected srt, got %s", got)
	}
	if got := GetFormatFromExtension("a.unknown"); got != FormatSRT {
		t.Errorf("expected srt fallback, got %s", got)
	}
}
