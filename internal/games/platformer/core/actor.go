package core

import "math"

// Kind tags an actor variant for collision dispatch and rendering.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindLava
	KindCoin
	KindMonster
)

// String returns the kind name ("player", "lava", "coin", "monster").
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLava:
		return "lava"
	case KindCoin:
		return "coin"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Keys is the held-key snapshot for one step.
type Keys struct {
	Left  bool
	Right bool
	Up    bool
}

// Actor is a moving entity. Update never modifies the receiver; it returns
// the actor's next value computed from the pre-step state s.
type Actor interface {
	Kind() Kind
	Pos() Vec
	Size() Vec
	Update(dt float64, s *State, keys Keys) Actor
}

// Collider is implemented by actors that react to touching the player.
// Collide receives the post-step state and returns the resulting state.
type Collider interface {
	Collide(s *State) *State
}

// Overlap reports whether two actors' boxes strictly intersect.
// Boxes that only share an edge do not overlap.
func Overlap(a, b Actor) bool {
	ap, as := a.Pos(), a.Size()
	bp, bs := b.Pos(), b.Size()
	return ap.X+as.X > bp.X && ap.X < bp.X+bs.X &&
		ap.Y+as.Y > bp.Y && ap.Y < bp.Y+bs.Y
}

// Movement constants.
const (
	PlayerXSpeed = 7.0
	Gravity      = 30.0
	JumpSpeed    = 17.0

	WobbleSpeed = 8.0
	WobbleDist  = 0.09

	MonsterSpeed = 2.0
)

var (
	playerSize  = V(0.8, 1.5)
	lavaSize    = V(1, 1)
	coinSize    = V(0.6, 0.6)
	monsterSize = V(1.2, 2)
)

// Player is the actor steered by the keys.
type Player struct {
	pos   Vec
	speed Vec
}

// NewPlayer places a player at a plan cell, raised by half a tile so the
// 1.5-tall body stands on the cell's floor.
func NewPlayer(cell Vec) Player {
	return Player{pos: cell.Plus(V(0, -0.5))}
}

func (p Player) Kind() Kind { return KindPlayer }
func (p Player) Pos() Vec { return p.pos }
func (p Player) Size() Vec { return playerSize }
func (p Player) Speed() Vec { return p.speed }

// Update moves the player one axis at a time; a move that would touch a wall
// is dropped for that axis.
func (p Player) Update(dt float64, s *State, keys Keys) Actor {
	xSpeed := 0.0
	if keys.Left {
		xSpeed -= PlayerXSpeed
	}
	if keys.Right {
		xSpeed += PlayerXSpeed
	}

	pos := p.pos
	movedX := pos.Plus(V(xSpeed*dt, 0))
	if !s.Level.Touches(movedX, playerSize, TileWall) {
		pos = movedX
	}

	ySpeed := p.speed.Y + dt*Gravity
	movedY := pos.Plus(V(0, ySpeed*dt))
	switch {
	case !s.Level.Touches(movedY, playerSize, TileWall):
		pos = movedY
	case keys.Up && ySpeed > 0:
		ySpeed = -JumpSpeed
	default:
		ySpeed = 0
	}

	return Player{pos: pos, speed: V(xSpeed, ySpeed)}
}

// Lava is a moving lava block. Blocks with a reset position drip: on wall
// contact they jump back to where they started. Others bounce.
type Lava struct {
	pos    Vec
	speed  Vec
	reset  Vec
	resets bool
}

// NewLava creates the lava variant for plan character ch ('=', '|' or 'v').
func NewLava(cell Vec, ch byte) Lava {
	switch ch {
	case '=':
		return Lava{pos: cell, speed: V(2, 0)}
	case '|':
		return Lava{pos: cell, speed: V(0, 2)}
	default:
		return Lava{pos: cell, speed: V(0, 3), reset: cell, resets: true}
	}
}

func (l Lava) Kind() Kind { return KindLava }
func (l Lava) Pos() Vec { return l.pos }
func (l Lava) Size() Vec { return lavaSize }
func (l Lava) Speed() Vec { return l.speed }

// Reset returns the drip origin and whether the block has one.
func (l Lava) Reset() (Vec, bool) { return l.reset, l.resets }

// Update advances the block, bouncing or resetting on wall contact.
func (l Lava) Update(dt float64, s *State, _ Keys) Actor {
	newPos := l.pos.Plus(l.speed.Times(dt))
	switch {
	case !s.Level.Touches(newPos, lavaSize, TileWall):
		l.pos = newPos
	case l.resets:
		l.pos = l.reset
	default:
		l.speed = l.speed.Times(-1)
	}
	return l
}

// Collide ends the game: touching moving lava is fatal.
func (l Lava) Collide(s *State) *State {
	return s.withStatus(StatusLost)
}

// Coin is a collectible that bobs around its base position.
type Coin struct {
	pos    Vec
	base   Vec
	wobble float64
}

// NewCoin places a coin at a plan cell with the given starting phase.
func NewCoin(cell Vec, phase float64) Coin {
	base := cell.Plus(V(0.2, 0.1))
	return Coin{pos: base, base: base, wobble: phase}
}

func (c Coin) Kind() Kind { return KindCoin }
func (c Coin) Pos() Vec { return c.pos }
func (c Coin) Size() Vec { return coinSize }

// Phase returns the current wobble angle in radians.
func (c Coin) Phase() float64 { return c.wobble }

// Update advances the wobble phase.
func (c Coin) Update(dt float64, _ *State, _ Keys) Actor {
	wobble := c.wobble + dt*WobbleSpeed
	offset := math.Sin(wobble) * WobbleDist
	return Coin{pos: c.base.Plus(V(0, offset)), base: c.base, wobble: wobble}
}

// Collide removes the coin; collecting the last one wins the level.
func (c Coin) Collide(s *State) *State {
	next := s.without(c)
	if next.Coins() == 0 {
		return next.withStatus(StatusWon)
	}
	return next
}

// Monster patrols horizontally, turning around at walls.
type Monster struct {
	pos   Vec
	speed Vec
}

// NewMonster places a monster at a plan cell, raised one tile so its
// two-tile body stands on the cell's floor.
func NewMonster(cell Vec) Monster {
	return Monster{pos: cell.Plus(V(0, -1)), speed: V(MonsterSpeed, 0)}
}

func (m Monster) Kind() Kind { return KindMonster }
func (m Monster) Pos() Vec { return m.pos }
func (m Monster) Size() Vec { return monsterSize }
func (m Monster) Speed() Vec { return m.speed }

// Update moves the monster or reverses it when the move hits a wall.
func (m Monster) Update(dt float64, s *State, _ Keys) Actor {
	newPos := m.pos.Plus(m.speed.Times(dt))
	if s.Level.Touches(newPos, monsterSize, TileWall) {
		m.speed = m.speed.Times(-1)
		return m
	}
	m.pos = newPos
	return m
}

// Collide removes the monster. Monsters block the way but are not deadly.
func (m Monster) Collide(s *State) *State {
	return s.without(m)
}
