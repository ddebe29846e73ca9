package subtitle

import (
	"errors"
	"fmt"
	"math"
)

// negative or non-finite time value
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// formatTimestamp renders seconds as HH:MM:SS<sep>mmm. The millisecond
// value is rounded half-up to the nearest 10ms, so the last digit is
// always 0; the carry propagates into the seconds field.
func formatTimestamp(seconds float64, sep byte) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", fmt.Errorf("%w: non-finite value", ErrInvalidTimestamp)
	}
	if seconds < 0 {
		return "", fmt.Errorf("%w: negative value %v", ErrInvalidTimestamp, seconds)
	}

	totalMillis := int64(math.Floor(seconds*100+0.5)) * 10

	hours := totalMillis / 3600000
	minutes := (totalMillis % 3600000) / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000

	return fmt.Sprintf(
		"%02d:%02d:%02d%c%03d",
		hours, minutes, secs, sep, millis,
	), nil
}

func formatSRTTime(seconds float64) (string, error) {
	return formatTimestamp(seconds, ',')
}

func formatVTTTime(seconds float64) (string, error) {
	return formatTimestamp(seconds, '.')
}
