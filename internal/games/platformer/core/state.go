package core

// Status is the outcome flag of a world state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns "playing", "won" or "lost".
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// State is one snapshot of a playthrough. Update returns a fresh State;
// a State is never modified after it has been handed out.
type State struct {
	Level  *Level
	Actors []Actor
	Status Status
}

// Start returns the initial state of a level.
func Start(level *Level) *State {
	return &State{
		Level:  level,
		Actors: level.StartActors(),
		Status: StatusPlaying,
	}
}

// Player returns the player actor. Levels are rejected at parse time unless
// they hold exactly one player, so the lookup cannot fail.
func (s *State) Player() Player {
	for _, a := range s.Actors {
		if p, ok := a.(Player); ok {
			return p
		}
	}
	panic("platformer: state has no player")
}

// Coins returns the number of coins still in play.
func (s *State) Coins() int {
	n := 0
	for _, a := range s.Actors {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}

// Update advances the world by dt seconds.
//
// All actors move from the same snapshot. Once the status is terminal only
// the actors keep moving. Otherwise the player dies on lava tiles, and each
// actor overlapping the player gets to resolve the contact in actor order.
func (s *State) Update(dt float64, keys Keys) *State {
	actors := make([]Actor, len(s.Actors))
	for i, a := range s.Actors {
		actors[i] = a.Update(dt, s, keys)
	}
	next := &State{Level: s.Level, Actors: actors, Status: s.Status}

	if next.Status != StatusPlaying {
		return next
	}

	player := next.Player()
	if s.Level.Touches(player.Pos(), player.Size(), TileLava) {
		return next.withStatus(StatusLost)
	}

	for _, a := range actors {
		if a.Kind() == KindPlayer || !Overlap(a, player) {
			continue
		}
		if c, ok := a.(Collider); ok {
			next = c.Collide(next)
		}
	}
	return next
}

// withStatus returns a copy of the state with a new status. A terminal
// status is kept once set.
func (s *State) withStatus(status Status) *State {
	next := *s
	if !s.Status.Terminal() {
		next.Status = status
	}
	return &next
}

// without returns a copy of the state with the first actor equal to a removed.
func (s *State) without(a Actor) *State {
	actors := make([]Actor, 0, len(s.Actors))
	removed := false
	for _, other := range s.Actors {
		if !removed && other == a {
			removed = true
			continue
		}
		actors = append(actors, other)
	}
	return &State{Level: s.Level, Actors: actors, Status: s.Status}
}
