package core_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func approxVec(a, b core.Vec) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

// actorOf returns the first actor of the given kind in the state.
func actorOf(t *testing.T, s *core.State, kind core.Kind) core.Actor {
	t.Helper()
	for _, a := range s.Actors {
		if a.Kind() == kind {
			return a
		}
	}
	t.Fatalf("no %v actor in state", kind)
	return nil
}

func TestVecOps(t *testing.T) {
	v := core.V(1, 2)

	if got := v.Plus(core.V(3, -4)); got != core.V(4, -2) {
		t.Errorf("Plus = %v, expected (4, -2)", got)
	}
	if got := v.Times(-2); got != core.V(-2, -4) {
		t.Errorf("Times = %v, expected (-2, -4)", got)
	}
	if v != core.V(1, 2) {
		t.Error("vector operations should not modify the receiver")
	}
}

func TestOverlapIsStrict(t *testing.T) {
	s := core.Start(mustParse(t, "@.o."))
	player := s.Player()

	testCases := []struct {
		name     string
		other    core.Actor
		expected bool
	}{
		{"far away", core.NewCoin(core.V(3, 0), 0), false},
		{"sharing an edge", core.NewMonster(core.V(0.8, 0.5)), false},
		{"overlapping", core.NewMonster(core.V(0.5, 0.5)), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.Overlap(player, tc.other); got != tc.expected {
				t.Errorf("Overlap = %v, expected %v", got, tc.expected)
			}
			if got := core.Overlap(tc.other, player); got != tc.expected {
				t.Errorf("Overlap (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPlayerWalksRight(t *testing.T) {
	s := core.Start(mustParse(t, `
......
.@....
######
`))

	next := s.Player().Update(0.1, s, core.Keys{Right: true}).(core.Player)

	if !approxVec(next.Pos(), core.V(1.7, 0.5)) {
		t.Errorf("expected player at (1.7, 0.5), got %v", next.Pos())
	}
	// Standing on the floor cancels the gravity pull.
	if !approxVec(next.Speed(), core.V(core.PlayerXSpeed, 0)) {
		t.Errorf("expected speed (7, 0), got %v", next.Speed())
	}
}

func TestPlayerOpposingKeysCancel(t *testing.T) {
	s := core.Start(mustParse(t, `
......
.@....
######
`))

	next := s.Player().Update(0.1, s, core.Keys{Left: true, Right: true})

	if !approx(next.Pos().X, 1) {
		t.Errorf("left+right should not move the player, got x=%f", next.Pos().X)
	}
}

func TestPlayerStoppedByGridEdge(t *testing.T) {
	s := core.Start(mustParse(t, `
...
@..
###
`))

	next := s.Player().Update(0.1, s, core.Keys{Left: true})

	if !approx(next.Pos().X, 0) {
		t.Errorf("player should not leave the grid, got x=%f", next.Pos().X)
	}
}

func TestPlayerFallsUnderGravity(t *testing.T) {
	s := core.Start(mustParse(t, `
...
.@.
...
...
`))

	next := s.Player().Update(0.1, s, core.Keys{}).(core.Player)

	if !approx(next.Speed().Y, 3) {
		t.Errorf("expected vertical speed 3 after 0.1s, got %f", next.Speed().Y)
	}
	if !approx(next.Pos().Y, 0.5+0.3) {
		t.Errorf("expected y=0.8, got %f", next.Pos().Y)
	}
}

func TestPlayerJumpsFromGround(t *testing.T) {
	s := core.Start(mustParse(t, `
......
......
......
.@....
######
`))

	jumped := s.Player().Update(0.1, s, core.Keys{Up: true}).(core.Player)
	if !approx(jumped.Speed().Y, -core.JumpSpeed) {
		t.Fatalf("expected jump speed %f, got %f", -core.JumpSpeed, jumped.Speed().Y)
	}
	if !approx(jumped.Pos().Y, 2.5) {
		t.Errorf("the jump starts from the ground, got y=%f", jumped.Pos().Y)
	}

	s2 := &core.State{Level: s.Level, Actors: []core.Actor{jumped}}
	rising := jumped.Update(0.1, s2, core.Keys{})
	if rising.Pos().Y >= 2.5 {
		t.Errorf("player should rise after jumping, got y=%f", rising.Pos().Y)
	}
}

func TestPlayerCannotJumpInMidAir(t *testing.T) {
	s := core.Start(mustParse(t, `
...
.@.
...
...
`))

	next := s.Player().Update(0.1, s, core.Keys{Up: true}).(core.Player)
	if next.Speed().Y < 0 {
		t.Errorf("player in the air should not jump, speed %f", next.Speed().Y)
	}
}

func TestLavaBouncesOffWall(t *testing.T) {
	s := core.Start(mustParse(t, `
.....
@..=#
#####
`))
	lava := actorOf(t, s, core.KindLava).(core.Lava)

	next := lava.Update(0.1, s, core.Keys{}).(core.Lava)

	if next.Speed() != lava.Speed().Times(-1) {
		t.Errorf("expected speed %v after bounce, got %v", lava.Speed().Times(-1), next.Speed())
	}
	if next.Pos() != lava.Pos() {
		t.Errorf("bouncing lava should stay put, moved to %v", next.Pos())
	}

	back := next.Update(0.1, s, core.Keys{})
	if !approx(back.Pos().X, 2.8) {
		t.Errorf("expected lava to move back to x=2.8, got %f", back.Pos().X)
	}
}

func TestDrippingLavaResets(t *testing.T) {
	s := core.Start(mustParse(t, `
..v..
.....
@....
#####
`))
	var actor core.Actor = actorOf(t, s, core.KindLava)
	origin, _ := actor.(core.Lava).Reset()

	for i := 0; i < 100; i++ {
		prev := actor.Pos()
		actor = actor.Update(0.1, s, core.Keys{})
		if actor.Pos().Y < prev.Y {
			if actor.Pos() != origin {
				t.Fatalf("drip should restart exactly at %v, got %v", origin, actor.Pos())
			}
			if actor.(core.Lava).Speed() != core.V(0, 3) {
				t.Errorf("drip should keep its speed, got %v", actor.(core.Lava).Speed())
			}
			return
		}
	}
	t.Fatal("dripping lava never reset")
}

func TestCoinWobbles(t *testing.T) {
	s := core.Start(mustParse(t, "@o"))
	coin := core.NewCoin(core.V(1, 0), 0)

	next := coin.Update(0.1, s, core.Keys{}).(core.Coin)

	if !approx(next.Phase(), 0.8) {
		t.Errorf("expected phase 0.8, got %f", next.Phase())
	}
	expectedY := 0.1 + math.Sin(0.8)*core.WobbleDist
	if !approx(next.Pos().Y, expectedY) || !approx(next.Pos().X, 1.2) {
		t.Errorf("expected coin at (1.2, %f), got %v", expectedY, next.Pos())
	}
}

func TestMonsterTurnsAtWall(t *testing.T) {
	s := core.Start(mustParse(t, `
......
......
@...M#
######
`))
	monster := actorOf(t, s, core.KindMonster).(core.Monster)

	turned := monster.Update(0.1, s, core.Keys{}).(core.Monster)
	if turned.Speed() != core.V(-core.MonsterSpeed, 0) {
		t.Fatalf("expected monster to turn around, speed %v", turned.Speed())
	}
	if turned.Pos() != monster.Pos() {
		t.Errorf("turning monster should stay put, moved to %v", turned.Pos())
	}

	moved := turned.Update(0.1, s, core.Keys{})
	if !approx(moved.Pos().X, 3.8) {
		t.Errorf("expected monster at x=3.8, got %f", moved.Pos().X)
	}
}

func TestActorUpdateIsPure(t *testing.T) {
	s := core.Start(mustParse(t, `
..v...
.@o=M.
######
`))

	before := make([]core.Actor, len(s.Actors))
	copy(before, s.Actors)

	for _, a := range s.Actors {
		a.Update(0.1, s, core.Keys{Right: true, Up: true})
	}
	s.Update(0.1, core.Keys{Right: true})

	for i := range before {
		if s.Actors[i] != before[i] {
			t.Errorf("actor %d changed after Update: %v -> %v", i, before[i].Pos(), s.Actors[i].Pos())
		}
	}
	if s.Status != core.StatusPlaying {
		t.Errorf("receiver status changed to %v", s.Status)
	}
}
