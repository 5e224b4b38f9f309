package platformer

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// DefaultLives is the number of lives a session starts with.
const DefaultLives = 3

// ErrNoLevels is returned when a session is created without levels.
var ErrNoLevels = errors.New("session needs at least one level")

// SessionConfig configures a Session.
type SessionConfig struct {
	Lives       int           // Lives per game; 0 means DefaultLives
	Start       int           // 0-based index of the first level
	EndingDelay time.Duration // Grace period after a level ends; 0 means DefaultEndingDelay
	Seed        int64         // Seeds coin phases; 0 means time-based
	Logger      *log.Logger   // nil discards log output
}

// Session plays an ordered sequence of levels with a limited number of lives.
// Winning a level moves on to the next one. Losing costs a life and restarts
// the level; with no lives left the game is over until Restart.
type Session struct {
	levels []levels.Level
	rng    *rand.Rand // Coin phases of every attempt
	cfg    SessionConfig
	log    *log.Logger

	index    int
	lives    int
	attempt  int
	runner   *Runner
	paused   bool
	gameOver bool
	complete bool
}

// NewSession checks every plan up front so that a broken level is reported
// before play starts. Each attempt later plays a freshly parsed copy.
func NewSession(lvls []levels.Level, cfg SessionConfig) (*Session, error) {
	if len(lvls) == 0 {
		return nil, ErrNoLevels
	}
	if cfg.Lives <= 0 {
		cfg.Lives = DefaultLives
	}
	if cfg.Start < 0 || cfg.Start >= len(lvls) {
		return nil, fmt.Errorf("start level %d out of range 1..%d", cfg.Start+1, len(lvls))
	}
	if cfg.EndingDelay <= 0 {
		cfg.EndingDelay = DefaultEndingDelay
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := range lvls {
		if _, err := lvls[i].Parse(rng); err != nil {
			return nil, fmt.Errorf("level %s: %w", lvls[i].ID, err)
		}
	}

	s := &Session{
		levels: lvls,
		rng:    rng,
		cfg:    cfg,
		log:    logger,
	}
	s.Restart()
	return s, nil
}

// Restart starts a new game from the configured first level with full lives.
func (s *Session) Restart() {
	s.index = s.cfg.Start
	s.lives = s.cfg.Lives
	s.attempt = 0
	s.paused = false
	s.gameOver = false
	s.complete = false
	s.startLevel()
}

func (s *Session) startLevel() {
	s.attempt++
	level := s.levels[s.index]
	grid, err := level.Parse(s.rng)
	if err != nil {
		// NewSession has parsed this plan successfully before.
		panic(fmt.Sprintf("platformer: level %s: %v", level.ID, err))
	}
	s.runner = NewRunner(grid, WithEndingDelay(s.cfg.EndingDelay))
	s.log.Info("level started",
		"level", level.ID,
		"attempt", s.attempt,
		"lives", s.lives)
}

// Advance runs one frame of the current level. Paused and finished sessions
// ignore time. It returns true when the displayed level changed.
func (s *Session) Advance(elapsed time.Duration, keys core.Keys) bool {
	if s.paused || s.Finished() {
		return false
	}
	if s.runner.Frame(elapsed, keys) {
		return false
	}

	level := s.levels[s.index]
	switch s.runner.Outcome() {
	case core.StatusWon:
		s.log.Info("level won", "level", level.ID, "attempt", s.attempt)
		if s.index+1 >= len(s.levels) {
			s.complete = true
			s.log.Info("game complete", "lives", s.lives)
			return false
		}
		s.index++
		s.attempt = 0
		s.startLevel()
		return true

	case core.StatusLost:
		s.lives--
		s.log.Warn("life lost", "level", level.ID, "lives", s.lives)
		if s.lives <= 0 {
			s.gameOver = true
			s.log.Info("game over", "level", level.ID)
			return false
		}
		s.startLevel()
		return true
	}

	return false
}

// TogglePause pauses or resumes a running game.
func (s *Session) TogglePause() {
	if s.Finished() {
		return
	}
	s.paused = !s.paused
	s.log.Debug("pause toggled", "paused", s.paused)
}

// Paused reports whether the game is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Finished reports whether the game is over or every level has been won.
func (s *Session) Finished() bool {
	return s.gameOver || s.complete
}

// GameOver reports whether all lives have been lost.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Complete reports whether the last level has been won.
func (s *Session) Complete() bool {
	return s.complete
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Index returns the 0-based index of the current level.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of levels in the session.
func (s *Session) Len() int {
	return len(s.levels)
}

// Level returns the definition of the current level.
func (s *Session) Level() levels.Level {
	return s.levels[s.index]
}

// World returns the simulation state of the current level.
func (s *Session) World() *core.State {
	return s.runner.State()
}
