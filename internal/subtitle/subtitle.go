package subtitle

// represents single subtitle entry; times are raw seconds from the recognizer
type Entry struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// represents complete subtitle track
type Subtitle struct {
	Entries  []Entry
	Language string
	Format   string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// interface for writing subtitles to files
type Writer interface {
	Write(subtitle *Subtitle, path string) error
}
