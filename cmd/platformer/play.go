package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagLevel      int
	flagLevelID    string
	flagLevelsDir  string
	flagDifficulty string
	flagSelect     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level pack",
	Long: `Play the levels in order. Collect every coin to finish a level;
touching lava costs a life. With no lives left the game is over.

Controls:
  Left/A, Right/D   - Walk
  Up/W/Space        - Jump
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives
  normal - 3 lives
  hard   - 1 life

Examples:
  platformer play
  platformer play --level 2
  platformer play --id 03-drip-cave
  platformer play --select
  platformer play --levels ./my-levels --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start from (1-based, 0 = from config)")
	playCmd.Flags().StringVar(&flagLevelID, "id", "", "Play only the level with this ID")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in pack)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the first level from a list")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyPreset(&cfg, preset)

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	dir := cfg.Levels.Path
	if flagLevelsDir != "" {
		dir = flagLevelsDir
	}
	lvls, err := playLevels(levelLoader(dir), flagLevelID)
	if err != nil {
		fail("loading levels: %v", err)
	}

	start := cfg.Levels.Start
	if flagLevel > 0 {
		start = flagLevel
	}
	if flagLevelID != "" {
		start = 1
	}
	if start > len(lvls) {
		fail("level %d does not exist, the pack has %d levels", start, len(lvls))
	}

	// Get terminal size early for the level picker
	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.TickRate
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	if flagSelect {
		index, ok, selErr := tui.RunSelector(lvls, runtime.ScreenW, runtime.ScreenH)
		if selErr != nil {
			fail("%v", selErr)
		}
		// User quit the picker
		if !ok {
			return
		}
		start = index + 1
	}

	game, err := platformer.New(lvls, platformer.Options{
		Lives:       cfg.Lives,
		Start:       start - 1,
		EndingDelay: cfg.EndingDelayDuration(),
		Seed:        flagSeed,
		Logger:      logger,
	})
	if err != nil {
		fail("%v", err)
	}

	logger.Info("starting game",
		"levels", len(lvls),
		"start", start,
		"lives", cfg.Lives,
		"fps", cfg.TickRate)

	opts := tui.Options{
		Keys:       tui.NewKeyMap(cfg.Keys),
		HoldWindow: cfg.HoldWindowDuration(),
		Logger:     logger,
	}
	if err := tui.Run(game, runtime, opts); err != nil {
		logger.Error("game crashed", "err", err)
		fail("running game: %v", err)
	}
}
