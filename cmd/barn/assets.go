package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/barn/internal/assets"
	"chosenoffset.com/barn/internal/placeholders"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the assets under the asset root",
	Long: `List the images, sheets and sounds found under the asset root and
report any placeholder the bundled scenes need but cannot find.

Run 'genassets --out <root>' to create the placeholders.`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}

func runAssets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	entries, err := assets.Scan(cfg.Assets.Root)
	if err != nil {
		return err
	}

	maxLen := 4 // "Path" header
	for _, e := range entries {
		maxLen = max(maxLen, len(e.Path))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %-6s  %s\n", maxLen, "Path", "Kind", "Bytes")
	fmt.Fprintf(out, "  %-*s  %-6s  %s\n", maxLen, "----", "----", "-----")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-*s  %-6s  %d\n", maxLen, e.Path, e.Kind, e.Size)
	}

	if missing := assets.Missing(cfg.Assets.Root, placeholders.Paths); len(missing) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Missing scene assets:")
		for _, p := range missing {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}
