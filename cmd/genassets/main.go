// genassets writes the placeholder images, sprite sheet and theme sound used
// by the barn scenes.
//
// Usage:
//
//	genassets [--out assets]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/barn/internal/placeholders"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:           "genassets",
	Short:         "Generate placeholder assets for the barn scenes",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := placeholders.Generate(outDir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range written {
			fmt.Fprintf(out, "  wrote %s\n", p)
		}
		fmt.Fprintf(out, "\n%d assets ready under %s\n", len(written), outDir)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "assets", "Asset root to write into")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
