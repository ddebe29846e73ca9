package subtitle

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yhzhou/srtgen/internal/transcript"
)

// decision outcomes for the next word in the stream, evaluated in
// priority order: duration cap, length ceiling, punctuation preference
type decision int

const (
	appendWord decision = iota
	closeBeforeAppend
	appendThenClose
)

// Segmenter groups a flat word stream into subtitle lines
type Segmenter struct {
	MaxLineUnits    int     // length ceiling per line
	MinLineUnits    int     // lower bound of the preferred break band
	MaxLineDuration float64 // hard cap in seconds, never exceeded by appending
}

func NewSegmenter() *Segmenter {
	return &Segmenter{
		MaxLineUnits:    25,
		MinLineUnits:    10,
		MaxLineDuration: 10.0,
	}
}

// line under construction
type line struct {
	text  strings.Builder
	last  rune // last rune written, for the spacing convention
	units int
	start float64
	end   float64
	count int // words consumed
}

func (l *line) append(w transcript.Word) {
	if l.count == 0 {
		l.start = w.Start
	}
	token := strings.TrimSpace(w.Word)
	if token != "" {
		first, _ := utf8.DecodeRuneInString(token)
		if l.text.Len() > 0 && !isCJK(l.last) && !isCJK(first) {
			l.text.WriteByte(' ')
		}
		l.text.WriteString(token)
		l.last, _ = utf8.DecodeLastRuneInString(token)
		l.units += utf8.RuneCountInString(token)
	}
	l.end = w.End
	l.count++
}

// decide applies the segmentation rules to the next word without
// consuming it. The ceiling check runs before the punctuation check, so
// a hard limit always wins over a stylistic break point.
func (s *Segmenter) decide(l *line, w transcript.Word) decision {
	if l.count > 0 {
		if w.End-l.start > s.MaxLineDuration {
			return closeBeforeAppend
		}
		if l.units >= s.MaxLineUnits {
			return closeBeforeAppend
		}
	}
	total := l.units + wordUnits(w)
	if total >= s.MinLineUnits && total <= s.MaxLineUnits && endsWithBreak(w) {
		return appendThenClose
	}
	return appendWord
}

// Segment walks the word stream once, closing lines per the decision
// rules. Any remainder is flushed when the stream ends. An empty stream
// yields an empty entry list.
func (s *Segmenter) Segment(words []transcript.Word) []Entry {
	var entries []Entry
	var current line

	flush := func() {
		if current.count == 0 {
			return
		}
		text := strings.TrimSpace(current.text.String())
		if text != "" {
			entries = append(entries, Entry{
				Index: len(entries) + 1,
				Start: current.start,
				End:   current.end,
				Text:  text,
			})
		}
		current = line{}
	}

	for _, w := range words {
		switch s.decide(&current, w) {
		case closeBeforeAppend:
			flush()
			current.append(w)
		case appendThenClose:
			current.append(w)
			flush()
		default:
			current.append(w)
		}
	}
	flush()

	return entries
}

// one unit per visible rune of the trimmed token
func wordUnits(w transcript.Word) int {
	return utf8.RuneCountInString(strings.TrimSpace(w.Word))
}

// terminal and pausing marks, halfwidth and fullwidth
var breakMarks = map[rune]bool{
	'.': true, ',': true, '!': true, '?': true, ';': true, ':': true,
	'。': true, '，': true, '！': true, '？': true, '；': true, '：': true,
	'、': true,
}

func endsWithBreak(w transcript.Word) bool {
	token := strings.TrimSpace(w.Word)
	if token == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(token)
	return breakMarks[r]
}

// isCJK reports whether the rune joins without surrounding spaces:
// Han/kana/hangul plus CJK symbols, punctuation and fullwidth forms
func isCJK(r rune) bool {
	if unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) {
		return true
	}
	return (r >= 0x3000 && r <= 0x303f) || (r >= 0xff00 && r <= 0xffef)
}
