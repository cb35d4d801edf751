package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonhop/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List all game modes",
	Long:    `Shows every registered game mode with its ID and description.`,
	RunE:    runModes,
}

func runModes(cmd *cobra.Command, _ []string) error {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return nil
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'moonhop play <id>' to play a mode.")
	return nil
}
