package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// structurally inconsistent transcript data
var ErrMalformedInput = errors.New("malformed input")

// atomic timed token from the recognizer
type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// contiguous speech region containing its own word list
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words"`
}

// complete word-timestamped recognizer output
type Transcript struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// reads and decodes a whisper JSON transcript
func Load(path string) (*Transcript, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var t Transcript
	if err := json.NewDecoder(file).Decode(&t); err != nil {
		return nil, fmt.Errorf(
			"%w: failed to decode %s: %v",
			ErrMalformedInput,
			filepath.Base(path),
			err,
		)
	}
	return &t, nil
}

// Flatten concatenates every segment's word list into one ordered stream.
// Segment boundaries are discarded. A segment carrying text but no timed
// words is reported rather than skipped: its text would otherwise surface
// as a line with no timing information.
func Flatten(segments []Segment) ([]Word, error) {
	var words []Word
	for _, seg := range segments {
		if len(seg.Words) == 0 {
			if strings.TrimSpace(seg.Text) != "" {
				return nil, fmt.Errorf(
					"%w: segment %d has text but no words",
					ErrMalformedInput,
					seg.ID,
				)
			}
			continue
		}
		words = append(words, seg.Words...)
	}
	return words, nil
}
