package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a level pack for broken levels",
	Long: `Loads every level file of a pack and reports each one that cannot be
played: malformed YAML, ragged rows, unknown characters, a missing or
second player, no coins, or an ID used twice.

Exits with status 1 when any problem is found.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	dir := cfg.Levels.Path
	if len(args) == 1 {
		dir = args[0]
	}
	loader := levelLoader(dir)

	report, err := loader.Validate()
	if err != nil {
		fail("%v", err)
	}

	for _, p := range report.Problems {
		fmt.Fprintf(os.Stderr, "  FAIL  %s: %v\n", p.Path, p.Err)
	}

	fmt.Printf("%d playable levels, %d problems\n", len(report.Playable), len(report.Problems))
	if len(report.Problems) > 0 {
		os.Exit(1)
	}
}
