package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yhzhou/srtgen/internal/config"
	"github.com/yhzhou/srtgen/internal/subtitle"
	"github.com/yhzhou/srtgen/internal/transcript"
)

var convertCmd = &cobra.Command{
	Use:   "convert [json_file...]",
	Short: "Convert whisper JSON transcripts to subtitle files",
	Long: `Convert one or more whisper JSON transcripts to subtitle files.

Each input is processed independently: the output file is the input path
with its extension replaced (video.json -> video.srt), and a failure in
one file does not stop the rest of the batch.

Examples:
  srtgen convert talk.json
  srtgen convert talk.json --format vtt
  srtgen convert ep1.json ep2.json ep3.json
  srtgen convert talk.json --max-units 30 --max-duration 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		Int("max-units", 0, "Line length ceiling in units (or SRTGEN_MAX_UNITS)")
	convertCmd.Flags().
		Int("min-units", 0, "Preferred break band lower bound (or SRTGEN_MIN_UNITS)")
	convertCmd.Flags().
		Float64("max-duration", 0, "Per-line duration cap in seconds (or SRTGEN_MAX_DURATION)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output requires exactly one input file, got %d", len(args))
	}

	cfg := config.NewFromEnv()
	applyFlagOverrides(cmd, cfg)

	format, err := parseFormat(cfg.OutputFormat())
	if err != nil {
		return err
	}

	failed := 0
	for _, inputPath := range args {
		out := outputPath
		if out == "" {
			out = subtitle.OutputPathFor(inputPath, format)
		}
		if err := convertFile(cfg, inputPath, out, format); err != nil {
			logger.Errorw("Conversion failed",
				"input", inputPath,
				"error", err,
			)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
	}
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if n, _ := cmd.Flags().GetInt("max-units"); n > 0 {
		cfg.SetMaxLineUnits(n)
	}
	if n, _ := cmd.Flags().GetInt("min-units"); n > 0 {
		cfg.SetMinLineUnits(n)
	}
	if d, _ := cmd.Flags().GetFloat64("max-duration"); d > 0 {
		cfg.SetMaxLineDuration(d)
	}
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		cfg.SetOutputFormat(f)
	}
}

func parseFormat(name string) (subtitle.Format, error) {
	switch strings.ToLower(name) {
	case "", "srt":
		return subtitle.FormatSRT, nil
	case "vtt":
		return subtitle.FormatVTT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use srt or vtt", name)
	}
}

// convertFile runs the full pipeline for one transcript:
// load -> flatten -> segment -> write
func convertFile(
	cfg *config.Config,
	inputPath, outputPath string,
	format subtitle.Format,
) error {
	t, err := transcript.Load(inputPath)
	if err != nil {
		return err
	}

	words, err := transcript.Flatten(t.Segments)
	if err != nil {
		return err
	}

	entries := cfg.Segmenter().Segment(words)

	// an empty transcript is not an error; it produces an empty body
	sub := &subtitle.Subtitle{
		Entries: entries,
		Format:  string(format),
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(sub, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	logger.Infow("Subtitles written",
		"input", inputPath,
		"output", absOutput,
		"entries", len(entries),
	)

	return nil
}
