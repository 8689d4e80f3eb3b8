package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-rush/internal/glyph"
	"github.com/vovakirdan/glyph-rush/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and glyph sets",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Games:")
	fmt.Println()
	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Glyph sets:")
	fmt.Println()
	fmt.Printf("  %-10s  %-10s  %6s  %s\n", "ID", "Name", "Glyphs", "Suggested font")
	fmt.Printf("  %-10s  %-10s  %6s  %s\n", "--", "----", "------", "--------------")
	for _, s := range glyph.List() {
		fmt.Printf("  %-10s  %-10s  %6d  %s\n", s.ID, s.Name, s.Count(), s.Font)
	}

	fmt.Println()
	fmt.Println("Run 'glyphrush play <game or set id>' to play.")
}
