package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/uitree"
)

var (
	setFormat  string
	setRuntime bool
)

var setCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Change a single value inside a translation file",
	Long: `Rewrites one entry of a translation file and leaves the rest alone.
The key is the dot-joined container path with the attribute name as
the last segment. With --runtime the key is the original runtime
string instead, and the value becomes its translation.

Examples:
  lingo set translations/de/SettingsForm.lng SettingsForm.SaveButton.Caption Speichern
  lingo set --runtime translations/de/SettingsForm.lng "Are you sure?" "Sind Sie sicher?"`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&setFormat, "format", "", "format id, default derived from the file extension")
	setCmd.Flags().BoolVar(&setRuntime, "runtime", false, "treat the key as an original runtime string")
}

func runSet(cmd *cobra.Command, args []string) error {
	file, key, value := args[0], args[1], args[2]
	id := formatForPath(file, setFormat)
	if id == "" {
		return fmt.Errorf("cannot derive a format from %q, pass --format", file)
	}

	eng, err := engine.NewFor(id, engine.WithMaterializer(engine.MaterializeNode))
	if err != nil {
		return err
	}

	ctx := context.Background()
	sponge := uitree.NewNode("", "")
	if err := eng.Load(ctx, sponge, file, nil); err != nil {
		return err
	}

	if setRuntime {
		eng.SetString(key, value)
	} else {
		i := strings.LastIndex(key, ".")
		if i <= 0 || i == len(key)-1 {
			return fmt.Errorf("key %q is not a container path with an attribute name", key)
		}
		qname, attr := key[:i], key[i+1:]
		c := uitree.Resolve(sponge, qname)
		if c == nil {
			return fmt.Errorf("no container %q in %s", qname, file)
		}
		if a, ok := uitree.AttrByName(c, attr); ok {
			a.Set(value)
		} else if ac, ok := c.(uitree.AttrContainer); ok {
			ac.SetAttr(attr, value)
		} else {
			return fmt.Errorf("container %q does not take attribute %q", qname, attr)
		}
	}

	if err := eng.Save(ctx, sponge, file); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", file)
	return nil
}
