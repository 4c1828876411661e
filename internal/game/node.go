package game

// Kind selects the variant of a Node.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBlock
	KindWall
	KindSwitch
	KindToggleBlock
	KindButton
	KindMirror
	KindLaser
	KindStatue
	KindZapper
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindBlock:
		return "Block"
	case KindWall:
		return "Wall"
	case KindSwitch:
		return "Switch"
	case KindToggleBlock:
		return "ToggleBlock"
	case KindButton:
		return "Button"
	case KindMirror:
		return "Mirror"
	case KindLaser:
		return "Laser"
	case KindStatue:
		return "Statue"
	case KindZapper:
		return "Zapper"
	default:
		return "Unknown"
	}
}

// Node is a single entity on the level grid.
//
// Payload fields are meaningful only for the kinds listed next to them and
// stay zero otherwise.
type Node struct {
	Kind Kind
	Pos  Pos

	Dead        bool      // Player
	On          bool      // Switch, Laser
	Visible     bool      // ToggleBlock
	Pressed     bool      // Button
	Lit         bool      // Statue, Zapper
	Reversed    bool      // Statue
	Orientation Direction // Mirror: Forward or Backward
	Dir         Direction // Laser: firing direction

	// Beam holds the cells swept by this laser during the last recomputation.
	// Only drawing reads it.
	Beam []Pos

	moveable bool
}

// NewNode creates a node of the given kind with its initial payload.
// Mirrors start Forward, lasers start on and facing Up, toggle blocks start
// visible. Only players and blocks are moveable.
func NewNode(kind Kind, pos Pos) Node {
	n := Node{Kind: kind, Pos: pos}
	switch kind {
	case KindPlayer, KindBlock:
		n.moveable = true
	case KindToggleBlock:
		n.Visible = true
	case KindMirror:
		n.Orientation = Forward
	case KindLaser:
		n.On = true
		n.Dir = Up
	}
	return n
}

// NewMirror creates a mirror with the given orientation.
func NewMirror(pos Pos, orientation Direction, moveable bool) Node {
	n := NewNode(KindMirror, pos)
	n.Orientation = orientation
	n.moveable = moveable
	return n
}

// NewLaser creates a laser facing dir.
func NewLaser(pos Pos, dir Direction, on bool) Node {
	n := NewNode(KindLaser, pos)
	n.Dir = dir
	n.On = on
	return n
}

// NewStatue creates an unlit statue.
func NewStatue(pos Pos, reversed bool) Node {
	n := NewNode(KindStatue, pos)
	n.Reversed = reversed
	return n
}

// Moveable reports whether the node can be pushed by the player.
// Fixed at creation.
func (n *Node) Moveable() bool {
	return n.moveable
}

// PlayerToggleable reports whether the player's use action changes the node.
func (n *Node) PlayerToggleable() bool {
	switch n.Kind {
	case KindLaser, KindMirror, KindSwitch:
		return true
	default:
		return false
	}
}

// LaserToggleable reports whether a beam impact changes the node.
func (n *Node) LaserToggleable() bool {
	switch n.Kind {
	case KindPlayer, KindLaser, KindStatue, KindZapper:
		return true
	default:
		return false
	}
}

// TurnOn sets the node's state flag. No-op for mirrors, blocks and walls.
func (n *Node) TurnOn() {
	n.set(true)
}

// TurnOff clears the node's state flag. No-op for mirrors, blocks and walls.
func (n *Node) TurnOff() {
	n.set(false)
}

func (n *Node) set(v bool) {
	switch n.Kind {
	case KindPlayer:
		n.Dead = v
	case KindLaser, KindSwitch:
		n.On = v
	case KindStatue, KindZapper:
		n.Lit = v
	case KindButton:
		n.Pressed = v
	case KindToggleBlock:
		n.Visible = v
	}
}

// Toggle flips the node's state flag. Mirrors flip their orientation.
func (n *Node) Toggle() {
	switch n.Kind {
	case KindPlayer:
		n.Dead = !n.Dead
	case KindLaser, KindSwitch:
		n.On = !n.On
	case KindStatue, KindZapper:
		n.Lit = !n.Lit
	case KindButton:
		n.Pressed = !n.Pressed
	case KindToggleBlock:
		n.Visible = !n.Visible
	case KindMirror:
		n.Orientation = n.Orientation.Flip()
	}
}

// clone returns a copy that does not share the beam slice.
func (n Node) clone() Node {
	if n.Beam != nil {
		n.Beam = append([]Pos(nil), n.Beam...)
	}
	return n
}
