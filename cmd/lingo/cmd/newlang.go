package cmd

import (
	"context"
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo"
	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/langinfo"
)

var (
	newlangRoot   string
	newlangFormat string
)

var newlangCmd = &cobra.Command{
	Use:   "newlang <language>",
	Short: "Scaffold a language folder",
	Long: `Creates a language folder under the translation root with a metadata
file and an empty runtime table. Names and script direction come from
the Unicode CLDR data for the language id.

Defaults honor the LINGO_ROOT and LINGO_FORMAT environment variables.

Examples:
  lingo newlang de
  lingo newlang --root assets/i18n --format json ar`,
	Args: cobra.ExactArgs(1),
	RunE: runNewlang,
}

func init() {
	rootCmd.AddCommand(newlangCmd)
	newlangCmd.Flags().StringVar(&newlangRoot, "root", "", "translation root folder")
	newlangCmd.Flags().StringVar(&newlangFormat, "format", "", "format id for the created files")
}

func runNewlang(cmd *cobra.Command, args []string) error {
	cfg, err := lingo.FromEnv()
	if err != nil {
		return err
	}
	if newlangRoot != "" {
		cfg.RootPath = newlangRoot
	}
	if newlangFormat != "" {
		cfg.Format = newlangFormat
	}

	language := args[0]
	eng, err := engine.NewFor(cfg.Format, engine.WithCreateMissing(true))
	if err != nil {
		return err
	}

	ctx := context.Background()
	folder := path.Join(cfg.RootPath, language)
	info := langinfo.Lookup(language)
	log.Debug("language resolved", "id", info.ID, "name", info.Name, "rtl", info.RTL)

	infoPath := path.Join(folder, lingo.InfoBase+eng.Ext())
	if err := eng.SaveInfo(ctx, infoPath, info); err != nil {
		return err
	}
	runtimePath := path.Join(folder, lingo.RuntimeBase+eng.Ext())
	if err := eng.Save(ctx, nil, runtimePath); err != nil {
		return err
	}

	name := info.Name
	if name == "" {
		name = language
	}
	fmt.Printf("%s (%s)\n", folder, name)
	fmt.Printf("  %s\n", infoPath)
	fmt.Printf("  %s\n", runtimePath)
	return nil
}
