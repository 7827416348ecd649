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
	Use:   "exticons",
	Short: "Generate placeholder SVG icons for a browser extension",
	Long: `exticons writes placeholder icons for a browser extension as SVG:
a solid accent square with a short bold label, one file per icon size.

Run without a subcommand to generate the default icon set into ./extension.
PNG conversion is left to external tools; the run prints instructions.`,
	Version:       version,
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"exticons %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
	bindGenerateFlags(rootCmd.Flags())
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[exticons] "+format+"\n", args...)
	}
}
