package platformer

import (
	"fmt"
	"math"
	"strings"

	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Rendering layout.
const (
	TileCols  = 2 // Terminal columns per level tile
	TileRows  = 1 // Terminal rows per level tile
	HUDHeight = 1
)

// Viewport is the visible part of the level, in tile units.
type Viewport struct {
	Left, Top     float64
	Width, Height float64
}

// Scroll moves the viewport so that center stays out of the outer thirds,
// without showing space beyond the level edges.
func (v *Viewport) Scroll(center core.Vec, levelW, levelH float64) {
	v.Left = scrollAxis(v.Left, v.Width, center.X, levelW)
	v.Top = scrollAxis(v.Top, v.Height, center.Y, levelH)
}

func scrollAxis(start, size, center, limit float64) float64 {
	margin := size / 3
	switch {
	case center < start+margin:
		start = center - margin
	case center > start+size-margin:
		start = center + margin - size
	}
	return platformcore.ClampF(start, 0, math.Max(limit-size, 0))
}

// HUD is the status line drawn above the level.
type HUD struct {
	Level  int // 1-based
	Levels int
	Name   string
	Coins  int
	Lives  int
}

// Renderer draws a world state into a screen buffer.
// It keeps the viewport between frames so scrolling is smooth.
type Renderer struct {
	view  Viewport
	level *core.Level
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Viewport returns the viewport used by the last Draw.
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Draw renders the HUD, the visible tiles and the actors.
func (r *Renderer) Draw(dst *platformcore.Screen, world *core.State, hud HUD) {
	r.drawHUD(dst, hud)

	area := platformcore.NewRect(0, HUDHeight, dst.Width(), dst.Height()-HUDHeight)
	if area.H <= 0 {
		return
	}

	level := world.Level
	if level != r.level {
		r.level = level
		r.view.Left, r.view.Top = 0, 0
	}
	r.view.Width = float64(area.W) / TileCols
	r.view.Height = float64(area.H) / TileRows

	player := world.Player()
	center := player.Pos().Plus(player.Size().Times(0.5))
	r.view.Scroll(center, float64(level.Width), float64(level.Height))

	r.drawTiles(dst, area, level)

	// Player last so nothing hides it.
	for _, a := range world.Actors {
		if a.Kind() != core.KindPlayer {
			r.drawActor(dst, area, a, world.Status)
		}
	}
	r.drawActor(dst, area, player, world.Status)
}

func (r *Renderer) drawHUD(dst *platformcore.Screen, hud HUD) {
	left := fmt.Sprintf(" Level %d/%d  %s", hud.Level, hud.Levels, hud.Name)
	dst.DrawTextColored(0, 0, left, platformcore.ColorBrightWhite)

	coins := fmt.Sprintf("Coins %d  ", hud.Coins)
	lives := strings.Repeat("♥", max(hud.Lives, 0)) + " "
	x := dst.Width() - len([]rune(coins)) - len([]rune(lives))
	if x <= len([]rune(left)) {
		return
	}
	dst.DrawTextColored(x, 0, coins, platformcore.ColorBrightYellow)
	dst.DrawTextColored(x+len([]rune(coins)), 0, lives, platformcore.ColorRed)
}

func (r *Renderer) drawTiles(dst *platformcore.Screen, area platformcore.Rect, level *core.Level) {
	for sy := 0; sy < area.H; sy++ {
		ty := int(math.Floor(r.view.Top + float64(sy)/TileRows))
		if ty < 0 || ty >= level.Height {
			continue
		}
		for sx := 0; sx < area.W; sx++ {
			tx := int(math.Floor(r.view.Left + float64(sx)/TileCols))
			if tx < 0 || tx >= level.Width {
				continue
			}
			switch level.Tile(tx, ty) {
			case core.TileWall:
				dst.SetColored(area.X+sx, area.Y+sy, '█', platformcore.ColorGray)
			case core.TileLava:
				dst.SetColored(area.X+sx, area.Y+sy, '≈', platformcore.ColorRed)
			}
		}
	}
}

// actorRect returns the screen cells covered by an actor.
func (r *Renderer) actorRect(area platformcore.Rect, a core.Actor) platformcore.Rect {
	pos, size := a.Pos(), a.Size()
	x0 := int(math.Floor((pos.X - r.view.Left) * TileCols))
	x1 := int(math.Ceil((pos.X + size.X - r.view.Left) * TileCols))
	y0 := int(math.Floor((pos.Y - r.view.Top) * TileRows))
	y1 := int(math.Ceil((pos.Y + size.Y - r.view.Top) * TileRows))
	return platformcore.NewRect(area.X+x0, area.Y+y0, x1-x0, y1-y0)
}

func (r *Renderer) drawActor(dst *platformcore.Screen, area platformcore.Rect, a core.Actor, status core.Status) {
	visible := r.actorRect(area, a).Intersect(area)
	if visible.Empty() {
		return
	}

	glyph, color := actorGlyph(a.Kind(), status)
	for y := visible.Y; y < visible.Bottom(); y++ {
		for x := visible.X; x < visible.Right(); x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func actorGlyph(kind core.Kind, status core.Status) (rune, platformcore.Color) {
	switch kind {
	case core.KindPlayer:
		switch status {
		case core.StatusWon:
			return '█', platformcore.ColorBrightGreen
		case core.StatusLost:
			return '█', platformcore.ColorBrightRed
		default:
			return '█', platformcore.ColorBrightWhite
		}
	case core.KindLava:
		return '▓', platformcore.ColorOrange
	case core.KindCoin:
		return '●', platformcore.ColorBrightYellow
	case core.KindMonster:
		return 'M', platformcore.ColorMagenta
	default:
		return '?', platformcore.ColorDefault
	}
}
