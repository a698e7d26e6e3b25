package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "xicon",
	Short: "Toolbar icon set generator for the X reading-progress extension",
	Long: `xicon — renders the extension's toolbar icon set as hand-rolled PNGs:
signature, chunk framing, zlib container and both checksums are produced
in-process, so the output path has no image/png dependency to drift.

Generates every profile size plus grayscale disabled-state variants,
and writes a manifest the extension packaging step reads.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"xicon %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[xicon] "+format+"\n", args...)
	}
}
