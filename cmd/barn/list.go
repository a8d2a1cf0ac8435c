package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/barn/internal/scenes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	list := scenes.List()

	maxLen := 4 // "Name" header
	for _, s := range list {
		maxLen = max(maxLen, len(s.Name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Name", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----")
	for _, s := range list {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, s.Name, s.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'barn run <name>' to start a scene.")
}
