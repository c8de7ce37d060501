package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/pkg/logger"
)

var (
	verbose bool
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Translation file toolkit for UI component trees",
	Long: `lingo works on the translation files produced by the lingo library:
per-form component trees, runtime string tables and language metadata,
in any registered format (lng, clng, json, yaml, toml).

Commands:
  hash     - hash runtime strings the way the store keys them
  inspect  - print the contents of a translation file
  convert  - rewrite a translation file in another format
  newlang  - scaffold a language folder
  set      - change a single value inside a translation file`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		log = logger.NewPretty(level)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// formatForPath derives a format id from a file extension. An explicit
// override wins.
func formatForPath(path, override string) string {
	if override != "" {
		return override
	}
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return ""
}
