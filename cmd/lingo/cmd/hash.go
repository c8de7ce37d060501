package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/pkg/keycodec"
)

var hashEscaped bool

var hashCmd = &cobra.Command{
	Use:   "hash <text>...",
	Short: "Hash runtime strings",
	Long: `Prints the table key for each runtime string, the same key the
runtime string store uses. Handy for locating an entry inside a
translation file.

Examples:
  lingo hash "Are you sure?"
  lingo hash --escaped "line one
line two"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().BoolVar(&hashEscaped, "escaped", false, "print the escaped single-line form next to the key")
}

func runHash(cmd *cobra.Command, args []string) {
	for _, text := range args {
		if hashEscaped {
			fmt.Printf("%s  %s\n", keycodec.Hash(text), keycodec.Escape(text))
			continue
		}
		fmt.Println(keycodec.Hash(text))
	}
}
