package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/store"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Rewrite a translation file in another format",
	Long: `Reads a translation file, rebuilds the component tree and the
runtime table it describes, and writes both to a new file. Formats
derive from the file extensions unless overridden.

Examples:
  lingo convert translations/de/SettingsForm.lng translations/de/SettingsForm.json
  lingo convert --from lng legacy.txt translations/de/SettingsForm.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source format id, default derived from the source extension")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "destination format id, default derived from the destination extension")
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]
	srcID := formatForPath(src, convertFrom)
	if srcID == "" {
		return fmt.Errorf("cannot derive a format from %q, pass --from", src)
	}
	dstID := formatForPath(dst, convertTo)
	if dstID == "" {
		return fmt.Errorf("cannot derive a format from %q, pass --to", dst)
	}

	ctx := context.Background()
	dict := store.New()

	reader, err := engine.NewFor(srcID,
		engine.WithDict(dict),
		engine.WithMaterializer(engine.MaterializeNode),
	)
	if err != nil {
		return err
	}
	writer, err := engine.NewFor(dstID,
		engine.WithDict(dict),
		engine.WithCreateMissing(true),
	)
	if err != nil {
		return err
	}

	sponge := uitree.NewNode("", "")
	if err := reader.Load(ctx, sponge, src, nil); err != nil {
		return err
	}
	log.Debug("source decoded", "file", src, "format", srcID)

	if err := writer.Save(ctx, sponge, dst); err != nil {
		return err
	}

	fmt.Printf("%s (%s) -> %s (%s)\n", src, srcID, dst, dstID)
	return nil
}
