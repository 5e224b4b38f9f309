package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List the levels of a pack",
	Long: `Shows the levels that 'play' would use, in play order.
Without a directory the configured pack (or the built-in one) is listed.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	dir := cfg.Levels.Path
	if len(args) == 1 {
		dir = args[0]
	}

	lvls, err := levelLoader(dir).LoadAll()
	if err != nil {
		fail("loading levels: %v", err)
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	// Print header
	fmt.Printf("  %3s  %-*s  %-7s  %5s  %s\n", "#", maxIDLen, "ID", "Size", "Coins", "Name")
	fmt.Printf("  %3s  %-*s  %-7s  %5s  %s\n", "-", maxIDLen, "--", "----", "-----", "----")

	// Print levels
	for i, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %3d  %-*s  %-7s  %5d  %s\n", i+1, maxIDLen, l.ID, size, l.Coins, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <#>' to start from a level.")
}
