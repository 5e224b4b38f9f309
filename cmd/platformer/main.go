// platformer is a terminal platform game: collect every coin in a level
// while avoiding lava.
//
// Usage:
//
//	platformer play              - Play the level pack
//	platformer levels            - List the levels of a pack
//	platformer validate [dir]    - Check a level pack for broken levels
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 60)
//	--seed <value>        - Set RNG seed for reproducible coin motion
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - Override the log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - jump over lava and collect coins in your terminal",
	Long: `Platformer is a small side-scrolling platform game for the terminal.
Walk and jump through each level, collect every coin and stay out of the lava.

Available commands:
  play      - Play the level pack
  levels    - List the levels of a pack
  validate  - Check a level pack for broken levels

Examples:
  platformer play
  platformer play --level 3
  platformer play --levels ./my-levels --difficulty easy
  platformer validate ./my-levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
}
