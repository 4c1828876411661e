package game

import "fmt"

// LaserHit selects what a beam does to a laser it strikes.
type LaserHit uint8

const (
	// LaserHitOff turns the struck laser off.
	LaserHitOff LaserHit = iota
	// LaserHitToggle flips the struck laser's power.
	LaserHitToggle
)

// String returns the config name of the rule.
func (h LaserHit) String() string {
	switch h {
	case LaserHitOff:
		return "off"
	case LaserHitToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// ParseLaserHit converts a config name into a LaserHit.
func ParseLaserHit(s string) (LaserHit, error) {
	switch s {
	case "", "off":
		return LaserHitOff, nil
	case "toggle":
		return LaserHitToggle, nil
	default:
		return LaserHitOff, fmt.Errorf("unknown laser hit rule %q (want off or toggle)", s)
	}
}

// ButtonMode selects how buttons are pressed.
type ButtonMode uint8

const (
	// ButtonsAdjacent presses a button while the player stands next to it.
	ButtonsAdjacent ButtonMode = iota
	// ButtonsAction presses a button with the player's use action.
	ButtonsAction
)

// String returns the config name of the mode.
func (m ButtonMode) String() string {
	switch m {
	case ButtonsAdjacent:
		return "adjacent"
	case ButtonsAction:
		return "action"
	default:
		return "unknown"
	}
}

// ParseButtonMode converts a config name into a ButtonMode.
func ParseButtonMode(s string) (ButtonMode, error) {
	switch s {
	case "", "adjacent":
		return ButtonsAdjacent, nil
	case "action":
		return ButtonsAction, nil
	default:
		return ButtonsAdjacent, fmt.Errorf("unknown button mode %q (want adjacent or action)", s)
	}
}

// Rules holds the interaction rules that differ between game revisions.
type Rules struct {
	LaserHit LaserHit
	Buttons  ButtonMode
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		LaserHit: LaserHitOff,
		Buttons:  ButtonsAdjacent,
	}
}
