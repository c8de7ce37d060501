package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/keycodec"
	"github.com/dmitrymomot/lingo/pkg/store"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the contents of a translation file",
	Long: `Rebuilds the component tree stored in a translation file and prints
every container with its attributes, followed by the runtime string
table. Values are shown in their escaped single-line form.

Examples:
  lingo inspect translations/de/SettingsForm.lng
  lingo inspect --format lng exported.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "", "format id, default derived from the file extension")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	id := formatForPath(path, inspectFormat)
	if id == "" {
		return fmt.Errorf("cannot derive a format from %q, pass --format", path)
	}

	eng, err := engine.NewFor(id, engine.WithMaterializer(engine.MaterializeNode))
	if err != nil {
		return err
	}

	sponge := uitree.NewNode("", "")
	st := store.New()
	if err := eng.Load(context.Background(), sponge, path, st); err != nil {
		return err
	}

	var containers, attrs int
	uitree.Walk(sponge, func(qname string, c uitree.Container) bool {
		// The anonymous root contributes an empty leading segment.
		qname = strings.TrimPrefix(qname, ".")
		bound := uitree.Attrs(c)
		if qname == "" || len(bound) == 0 {
			return true
		}
		containers++
		fmt.Printf("[%s]\n", qname)
		width := 0
		for _, a := range bound {
			if len(a.Name) > width {
				width = len(a.Name)
			}
		}
		for _, a := range bound {
			attrs++
			fmt.Printf("  %-*s = %s\n", width, a.Name, keycodec.Escape(a.Get()))
		}
		fmt.Println()
		return true
	})

	runtime := st.Snapshot()
	if len(runtime) > 0 {
		hashes := make([]string, 0, len(runtime))
		for h := range runtime {
			hashes = append(hashes, h)
		}
		sort.Strings(hashes)

		fmt.Println("[runtime]")
		for _, h := range hashes {
			fmt.Printf("  %s = %s\n", h, keycodec.Escape(runtime[h]))
		}
		fmt.Println()
	}

	fmt.Printf("%d container(s), %d attribute(s), %d runtime string(s)\n",
		containers, attrs, len(runtime))
	return nil
}
