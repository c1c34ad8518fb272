package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flare/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "flare",
	Short: "Render annotated source-code diagnostics",
	Long:  `Flare turns diagnostic report descriptions into colorized, annotated terminal output`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
