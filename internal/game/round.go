package game

// State is the verdict of the round evaluator.
type State uint8

const (
	Playing State = iota
	Won
	LostZapper
	LostDeath
	Quit
)

// String returns a human readable name of the state.
func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	case LostZapper:
		return "LostZapper"
	case LostDeath:
		return "LostDeath"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends the round.
func (s State) Terminal() bool {
	return s != Playing
}

// ResetStatues clears every statue's lit flag before the beams are recomputed.
// Statues count only while a beam keeps them lit.
func ResetStatues(l *Level) {
	for i := range l.Nodes {
		if l.Nodes[i].Kind == KindStatue {
			l.Nodes[i].TurnOff()
		}
	}
}

// Evaluate returns the round verdict for the current level state. A dead
// player loses before a lit zapper, which loses before the win check.
// A level without statues is won as soon as no loss applies.
func Evaluate(l *Level) State {
	if p := l.Player(); p != nil && p.Dead {
		return LostDeath
	}
	won := true
	for i := range l.Nodes {
		n := &l.Nodes[i]
		switch n.Kind {
		case KindZapper:
			if n.Lit {
				return LostZapper
			}
		case KindStatue:
			if n.Reversed == n.Lit {
				won = false
			}
		}
	}
	if won {
		return Won
	}
	return Playing
}
