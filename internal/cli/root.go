package cli

import (
	"github.com/spf13/cobra"

	"github.com/yhzhou/srtgen/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtgen",
	Short: "Re-segment word-level transcripts into subtitle files",
	Long: `Srtgen converts word-timestamped speech recognition output (whisper
JSON) into subtitle files with re-segmented lines.

Lines are cut on punctuation inside a configurable length band, with a
hard per-line duration cap, and each line's timing is re-derived from its
constituent words.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (single input only)")
	rootCmd.PersistentFlags().
		StringP("format", "f", "", "Output subtitle format (srt, vtt)")
}
