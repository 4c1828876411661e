// Package game provides the l1t simulation: the grid and entity model, the
// laser engine, the player interaction resolver and the round evaluator.
// This package is UI-agnostic and deterministic.
package game

// Direction is a unit step on the grid expressed as row and column deltas.
// Up decreases Row, Down increases Row (screen coordinates).
type Direction struct {
	Row int
	Col int
}

// Cardinal directions.
var (
	Up    = Direction{Row: -1, Col: 0}
	Down  = Direction{Row: 1, Col: 0}
	Left  = Direction{Row: 0, Col: -1}
	Right = Direction{Row: 0, Col: 1}
)

// Mirror orientations. They tag the reflective diagonal of a mirror and are
// never used to move anything.
//
// Forward is the "/" diagonal (bottom-left to top-right), Backward is the "\"
// diagonal (top-left to bottom-right).
var (
	Forward  = Direction{Row: -1, Col: 1}
	Backward = Direction{Row: 1, Col: 1}
)

// Cardinals lists the four movement directions in a fixed order.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{Row: -d.Row, Col: -d.Col}
}

// Vertical reports whether the direction travels along rows.
func (d Direction) Vertical() bool {
	return d.Row != 0 && d.Col == 0
}

// Reflect returns the direction a beam travelling in d takes after striking
// a mirror with the given orientation. The axis swaps (vertical becomes
// horizontal and vice versa); the sign comes from the orientation diagonal.
func (d Direction) Reflect(orientation Direction) Direction {
	sign := orientation.Row * orientation.Col
	return Direction{Row: d.Col * sign, Col: d.Row * sign}
}

// Flip returns the other mirror orientation.
func (d Direction) Flip() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Pos is a cell on the level grid. Row 0 and column 0 belong to the wall ring.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Step returns the neighbouring cell in direction d.
func (p Pos) Step(d Direction) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Adjacent reports whether q is one of the four orthogonal neighbours of p.
func (p Pos) Adjacent(q Pos) bool {
	dr := p.Row - q.Row
	dc := p.Col - q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}
