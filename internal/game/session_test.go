package game

import (
	"context"
	"errors"
	"testing"
)

// scripted replays a fixed list of commands, then fails with errScriptDone.
type scripted struct {
	cmds []Command
}

var errScriptDone = errors.New("script done")

func (s *scripted) NextCommand(ctx context.Context) (Command, error) {
	if err := ctx.Err(); err != nil {
		return CommandNone, err
	}
	if len(s.cmds) == 0 {
		return CommandNone, errScriptDone
	}
	c := s.cmds[0]
	s.cmds = s.cmds[1:]
	return c, nil
}

func TestSessionWonOnFirstTick(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I   I",
		"I4 SI",
		"I   I",
		"IIIII",
	)
	s := NewSession(l, DefaultRules())
	if s.State() != Won {
		t.Errorf("State = %v, want Won", s.State())
	}
	if s.Turns() != 0 {
		t.Errorf("Turns = %d, want 0", s.Turns())
	}
}

func TestSessionReversedStatue(t *testing.T) {
	l := mustGrid(t,
		"IIIII",
		"I4 RI",
		"IX  I",
		"IIIII",
	)
	s := NewSession(l, DefaultRules())
	if s.State() != Playing {
		t.Fatalf("State = %v, want Playing while the statue is lit", s.State())
	}
	if got := s.Step(Action); got != Won {
		t.Errorf("after switching the laser off: State = %v, want Won", got)
	}
}

func TestSessionPushIntoBeam(t *testing.T) {
	// A block against the ring cannot be pushed; walking into the beam is fatal.
	l := mustGrid(t,
		"IIIIII",
		"I4 B I",
		"I  XSI",
		"IIIIII",
	)
	s := NewSession(l, DefaultRules())
	if s.State() != Playing {
		t.Fatalf("State = %v, want Playing", s.State())
	}
	if got := s.Step(MoveUp); got != Playing {
		t.Fatalf("block pushed against the ring should stay put, State = %v", got)
	}
	if got := s.Step(MoveLeft); got != Playing {
		t.Fatalf("State = %v, want Playing", got)
	}
	if got := s.Step(MoveUp); got != LostDeath {
		t.Errorf("walking into the beam: State = %v, want LostDeath", got)
	}
}

func TestSessionQuit(t *testing.T) {
	l := mustGrid(t, "IIIII", "IX SI", "IIIII")
	s := NewSession(l, DefaultRules())
	if got := s.Step(CommandQuit); got != Quit {
		t.Fatalf("State = %v, want Quit", got)
	}
	if got := s.Step(MoveRight); got != Quit {
		t.Errorf("commands after the round ended changed the state to %v", got)
	}
	if l.Player().Pos != P(1, 1) {
		t.Error("player moved after the round ended")
	}
}

func TestSessionIgnoresNone(t *testing.T) {
	l := mustGrid(t, "IIIII", "IX SI", "IIIII")
	s := NewSession(l, DefaultRules())
	s.Step(CommandNone)
	if s.Turns() != 0 {
		t.Errorf("Turns = %d after CommandNone", s.Turns())
	}
	s.Step(MoveRight)
	s.Step(MoveRight) // blocked by the statue, still a turn
	if s.Turns() != 2 {
		t.Errorf("Turns = %d, want 2", s.Turns())
	}
}

func TestSessionRun(t *testing.T) {
	l := mustGrid(t,
		"IIIIII",
		"I8  SI",
		"IX   I",
		"IIIIII",
	)
	s := NewSession(l, DefaultRules())
	src := &scripted{cmds: []Command{MoveRight, CommandNone, MoveLeft, Action, MoveDown}}

	var snaps []Snapshot
	state, err := s.Run(context.Background(), src, func(snap Snapshot) {
		snaps = append(snaps, snap)
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if state != Won {
		t.Errorf("state = %v, want Won", state)
	}
	// Initial tick plus three applied commands; CommandNone is skipped and
	// MoveDown is never read.
	if len(snaps) != 4 {
		t.Fatalf("got %d snapshots, want 4", len(snaps))
	}
	if snaps[0].State != Playing || snaps[3].State != Won {
		t.Errorf("snapshot states %v .. %v", snaps[0].State, snaps[3].State)
	}
	if len(src.cmds) != 1 {
		t.Errorf("Run read past the end of the round, %d commands left", len(src.cmds))
	}
}

func TestSessionRunSourceError(t *testing.T) {
	l := mustGrid(t, "IIIII", "IX SI", "IIIII")
	s := NewSession(l, DefaultRules())

	state, err := s.Run(context.Background(), &scripted{cmds: []Command{MoveRight}}, nil)
	if !errors.Is(err, errScriptDone) {
		t.Errorf("err = %v, want errScriptDone", err)
	}
	if state != Playing {
		t.Errorf("state = %v, want Playing", state)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx, &scripted{cmds: []Command{MoveLeft}}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	l := mustGrid(t, "IIIII", "I4 SI", "IX  I", "IIIII")
	s := NewSession(l, DefaultRules())
	snap := s.Snapshot()

	laser := nodeAt(t, l, 1, 1)
	laser.Beam[0] = P(9, 9)
	if snap.Nodes[0].Beam[0] != P(1, 2) {
		t.Error("snapshot shares the beam with the live level")
	}
	if snap.Player().Pos != P(2, 1) {
		t.Errorf("snapshot player at %v, want (2,1)", snap.Player().Pos)
	}
	if got, total := snap.Statues(); got != 1 || total != 1 {
		t.Errorf("Statues = %d/%d, want 1/1", got, total)
	}
}
