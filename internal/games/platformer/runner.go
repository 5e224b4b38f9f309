// Package platformer provides the terminal platformer game: the frame driver
// around the simulation core, the level session and the screen renderer.
package platformer

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// MaxStep is the largest simulated step of a single frame. Longer gaps, for
// example after the terminal was suspended, are truncated so nothing tunnels
// through walls.
const MaxStep = 100 * time.Millisecond

// DefaultEndingDelay is how long a finished level keeps animating before the
// runner reports it done.
const DefaultEndingDelay = time.Second

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithEndingDelay sets the grace period after the level is won or lost.
func WithEndingDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d >= 0 {
			r.ending = d
		}
	}
}

// Runner drives one playthrough of a level frame by frame.
type Runner struct {
	state  *core.State
	ending time.Duration // Grace time left once the status is terminal
	done   bool
}

// NewRunner starts a playthrough of level.
func NewRunner(level *core.Level, opts ...RunnerOption) *Runner {
	r := &Runner{
		state:  core.Start(level),
		ending: DefaultEndingDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Frame advances the playthrough by the wall time elapsed since the previous
// frame. It returns false once the level has been won or lost and the grace
// period has run out; later calls do nothing.
func (r *Runner) Frame(elapsed time.Duration, keys core.Keys) bool {
	if r.done {
		return false
	}
	if elapsed <= 0 {
		return true
	}

	step := min(elapsed, MaxStep)
	r.state = r.state.Update(step.Seconds(), keys)

	if r.state.Status == core.StatusPlaying {
		return true
	}
	if r.ending > 0 {
		r.ending -= step
		return true
	}

	r.done = true
	return false
}

// State returns the current world state.
func (r *Runner) State() *core.State {
	return r.state
}

// Outcome returns the current status of the playthrough.
func (r *Runner) Outcome() core.Status {
	return r.state.Status
}

// Done reports whether Frame has finished the playthrough.
func (r *Runner) Done() bool {
	return r.done
}
