package game

import "context"

// Session runs one round on a level it owns exclusively.
//
// Every tick resets the statues, recomputes all beams and evaluates the
// round. NewSession runs the first tick; each applied command runs another.
// A Session is not safe for concurrent use.
type Session struct {
	level *Level
	rules Rules
	state State
	turns int
}

// NewSession takes ownership of l and evaluates its initial state.
func NewSession(l *Level, rules Rules) *Session {
	s := &Session{level: l, rules: rules}
	s.tick()
	return s
}

func (s *Session) tick() {
	ResetStatues(s.level)
	FireLasers(s.level, s.rules)
	s.state = Evaluate(s.level)
}

// Step applies one command and runs a tick. Commands after the round ended,
// and CommandNone, change nothing.
func (s *Session) Step(cmd Command) State {
	if s.state.Terminal() {
		return s.state
	}
	switch cmd {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		dir, _ := cmd.Direction()
		if MovePlayer(s.level, dir) {
			UpdateButtons(s.level, s.rules)
		}
	case Action:
		PlayerAction(s.level, s.rules)
	case CommandQuit:
		s.state = Quit
		return s.state
	default:
		return s.state
	}
	s.turns++
	s.tick()
	return s.state
}

// State returns the verdict of the last tick.
func (s *Session) State() State {
	return s.state
}

// Turns returns how many commands were applied.
func (s *Session) Turns() int {
	return s.turns
}

// Level returns the live level. Callers must not mutate it.
func (s *Session) Level() *Level {
	return s.level
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return newSnapshot(s.level, s.state, s.turns)
}

// Run drives the session until the round ends. sink receives a snapshot after
// the initial tick and after every command. Run returns the final state, or
// the current state and the source's error if reading a command fails.
func (s *Session) Run(ctx context.Context, src CommandSource, sink func(Snapshot)) (State, error) {
	if sink != nil {
		sink(s.Snapshot())
	}
	for !s.state.Terminal() {
		cmd, err := src.NextCommand(ctx)
		if err != nil {
			return s.state, err
		}
		if cmd == CommandNone {
			continue
		}
		s.Step(cmd)
		if sink != nil {
			sink(s.Snapshot())
		}
	}
	return s.state, nil
}
