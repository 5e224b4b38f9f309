package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Tile is the static classification of a level cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileLava
)

// String returns the tile name used in messages and rendering.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileLava:
		return "lava"
	default:
		return "unknown"
	}
}

// Plan parsing errors.
var (
	ErrEmptyPlan       = errors.New("level plan is empty")
	ErrRaggedRow       = errors.New("level rows have different lengths")
	ErrUnknownTile     = errors.New("unknown level character")
	ErrNoPlayer        = errors.New("level has no player")
	ErrMultiplePlayers = errors.New("level has more than one player")
)

// Level is the immutable tile grid of one playthrough plus the actors it
// starts with. Out-of-bounds cells behave as walls.
type Level struct {
	Width  int
	Height int
	rows   [][]Tile
	start  []Actor
	coins  int
}

// ParseLevel builds a level from a textual plan. The plan is trimmed and split
// into rows; every row must be as long as the first one.
//
//	'.' empty   '#' wall   '+' lava tile
//	'@' player  'o' coin   'M' monster
//	'=' horizontal lava   '|' vertical lava   'v' dripping lava
//
// rng drives the initial coin wobble phases; nil uses a time-seeded source.
func ParseLevel(plan string, rng *rand.Rand) (*Level, error) {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		return nil, ErrEmptyPlan
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	lines := strings.Split(plan, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	width := len(lines[0])
	level := &Level{
		Width:  width,
		Height: len(lines),
		rows:   make([][]Tile, len(lines)),
	}

	players := 0
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, y, len(line), width)
		}

		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			ch := line[x]
			switch ch {
			case '.':
				row[x] = TileEmpty
			case '#':
				row[x] = TileWall
			case '+':
				row[x] = TileLava
			default:
				cell := V(float64(x), float64(y))
				actor, ok := spawnActor(ch, cell, rng)
				if !ok {
					return nil, fmt.Errorf("%w %q at row %d, column %d", ErrUnknownTile, ch, y, x)
				}
				switch actor.Kind() {
				case KindPlayer:
					players++
				case KindCoin:
					level.coins++
				}
				level.start = append(level.start, actor)
				row[x] = TileEmpty
			}
		}
		level.rows[y] = row
	}

	switch {
	case players == 0:
		return nil, ErrNoPlayer
	case players > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayers, players)
	}

	return level, nil
}

// spawnActor maps a plan character to the actor it places at cell.
func spawnActor(ch byte, cell Vec, rng *rand.Rand) (Actor, bool) {
	switch ch {
	case '@':
		return NewPlayer(cell), true
	case 'o':
		return NewCoin(cell, rng.Float64()*2*math.Pi), true
	case '=', '|', 'v':
		return NewLava(cell, ch), true
	case 'M':
		return NewMonster(cell), true
	default:
		return nil, false
	}
}

// Tile returns the tile at (x, y); cells outside the grid are walls.
func (l *Level) Tile(x, y int) Tile {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return TileWall
	}
	return l.rows[y][x]
}

// Touches reports whether any cell overlapped by the rectangle at pos with
// the given size is of kind. Cells outside the grid count as walls.
func (l *Level) Touches(pos, size Vec, kind Tile) bool {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if l.Tile(x, y) == kind {
				return true
			}
		}
	}
	return false
}

// StartActors returns a copy of the actors placed by the plan, in plan order.
func (l *Level) StartActors() []Actor {
	actors := make([]Actor, len(l.start))
	copy(actors, l.start)
	return actors
}

// CountCoins returns how many coins the plan places.
func (l *Level) CountCoins() int {
	return l.coins
}
