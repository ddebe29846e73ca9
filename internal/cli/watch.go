package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yhzhou/srtgen/internal/config"
	"github.com/yhzhou/srtgen/internal/subtitle"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and convert transcripts as they appear",
	Long: `Watch a directory for whisper JSON transcripts and convert each one
as it is written.

Failures are logged per file and the watcher keeps running; stop it with
Ctrl-C.

Examples:
  srtgen watch ./transcripts
  srtgen watch ./transcripts --format vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().
		Int("max-units", 0, "Line length ceiling in units (or SRTGEN_MAX_UNITS)")
	watchCmd.Flags().
		Int("min-units", 0, "Preferred break band lower bound (or SRTGEN_MIN_UNITS)")
	watchCmd.Flags().
		Float64("max-duration", 0, "Per-line duration cap in seconds (or SRTGEN_MAX_DURATION)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	cfg := config.NewFromEnv()
	applyFlagOverrides(cmd, cfg)

	format, err := parseFormat(cfg.OutputFormat())
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger.Infow("Watching for transcripts",
		"dir", dir,
		"format", string(format),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Infow("Watcher stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// a copy-in emits Create plus one or more Writes; conversion
			// is idempotent, so each event just re-runs the pipeline
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".json" {
				continue
			}
			out := subtitle.OutputPathFor(event.Name, format)
			if err := convertFile(cfg, event.Name, out, format); err != nil {
				logger.Errorw("Conversion failed",
					"input", event.Name,
					"error", err,
				)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("Watcher error", "error", err)
		}
	}
}
