package platformer

import (
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// Options configures a Game.
type Options struct {
	Lives       int
	Start       int // 0-based index of the first level
	EndingDelay time.Duration
	Seed        int64
	Logger      *log.Logger
}

// Game adapts a level session to the terminal platform: it turns input
// frames into held keys and draws the session into a screen buffer.
type Game struct {
	session  *Session
	renderer *Renderer
}

// New creates a game over the given levels.
func New(lvls []levels.Level, opts Options) (*Game, error) {
	session, err := NewSession(lvls, SessionConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Game{
		session:  session,
		renderer: NewRenderer(),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset starts over from the first level.
func (g *Game) Reset(platformcore.RuntimeConfig) {
	g.session.Restart()
}

// Resize keeps the game running. The renderer sizes the viewport from the
// screen buffer on every frame, so there is nothing to recompute here.
func (g *Game) Resize(w, h int) {}

// Advance runs one frame. Pause and restart are one-shot actions; walking and
// jumping are read as held keys.
func (g *Game) Advance(elapsed time.Duration, in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) && g.session.Finished() {
		g.session.Restart()
		return platformcore.StepResult{State: g.State()}
	}
	if in.Has(platformcore.ActionPause) {
		g.session.TogglePause()
	}

	g.session.Advance(elapsed, KeysFromInput(in))
	return platformcore.StepResult{State: g.State()}
}

// KeysFromInput converts platform actions to simulation keys.
func KeysFromInput(in platformcore.InputFrame) core.Keys {
	return core.Keys{
		Left:  in.Has(platformcore.ActionLeft),
		Right: in.Has(platformcore.ActionRight),
		Up:    in.Has(platformcore.ActionJump),
	}
}

// State returns the platform view of the game.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Level:    g.session.Index() + 1,
		Levels:   g.session.Len(),
		Coins:    g.session.World().Coins(),
		Lives:    g.session.Lives(),
		GameOver: g.session.GameOver(),
		Complete: g.session.Complete(),
		Paused:   g.session.Paused(),
	}
}

// Session exposes the underlying level session.
func (g *Game) Session() *Session {
	return g.session
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	state := g.State()
	level := g.session.Level()
	g.renderer.Draw(dst, g.session.World(), HUD{
		Level:  state.Level,
		Levels: state.Levels,
		Name:   level.Name,
		Coins:  state.Coins,
		Lives:  state.Lives,
	})

	switch {
	case state.GameOver:
		drawOverlay(dst, platformcore.ColorBrightRed, "GAME OVER", "Press R to restart")
	case state.Complete:
		drawOverlay(dst, platformcore.ColorBrightGreen, "YOU WIN!", "All levels cleared", "Press R to play again")
	case state.Paused:
		drawOverlay(dst, platformcore.ColorBrightWhite, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered box with the given lines.
func drawOverlay(dst *platformcore.Screen, c platformcore.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4
	height := len(lines) + 2

	box := platformcore.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		x := box.X + (width-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
