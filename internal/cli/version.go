package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set via -ldflags "-X github.com/yhzhou/srtgen/internal/cli.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("srtgen %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
