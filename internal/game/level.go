package game

import "slices"

// Info is the descriptive header of a level.
type Info struct {
	Name        string
	Author      string
	Description string
}

// Level is a bounded grid of Rows x Cols interior cells surrounded by a wall
// ring, plus the ordered collection of nodes placed inside it.
//
// A node's identity is its index in Nodes and stays stable for the life of
// the level. At most one node occupies a cell; every mutation of a node
// position must go through Move so the position index stays in sync.
type Level struct {
	Info  Info
	Rows  int // interior rows
	Cols  int // interior columns
	Nodes []Node

	player int // index of the player node, -1 when the level has none
	index  map[Pos]int
}

// NewLevel creates a level from interior dimensions and nodes.
// Returns false if a node lies outside the interior, two nodes share a cell,
// or the level holds more than one player.
func NewLevel(info Info, rows, cols int, nodes []Node) (*Level, bool) {
	l := &Level{
		Info:   info,
		Rows:   rows,
		Cols:   cols,
		Nodes:  nodes,
		player: -1,
		index:  make(map[Pos]int, len(nodes)),
	}
	for i := range l.Nodes {
		n := &l.Nodes[i]
		if !l.InBounds(n.Pos) {
			return nil, false
		}
		if _, taken := l.index[n.Pos]; taken {
			return nil, false
		}
		l.index[n.Pos] = i
		if n.Kind == KindPlayer {
			if l.player >= 0 {
				return nil, false
			}
			l.player = i
		}
	}
	return l, true
}

// InBounds reports whether p is an interior cell.
func (l *Level) InBounds(p Pos) bool {
	return p.Row >= 1 && p.Row <= l.Rows && p.Col >= 1 && p.Col <= l.Cols
}

// IsWall reports whether p lies on the outer wall ring.
func (l *Level) IsWall(p Pos) bool {
	if p.Row < 0 || p.Row > l.Rows+1 || p.Col < 0 || p.Col > l.Cols+1 {
		return false
	}
	return !l.InBounds(p)
}

// NodeAt returns the index of the node occupying p.
func (l *Level) NodeAt(p Pos) (int, bool) {
	i, ok := l.index[p]
	return i, ok
}

// Occupied reports whether a node sits on p.
func (l *Level) Occupied(p Pos) bool {
	_, ok := l.index[p]
	return ok
}

// Player returns the player node, or nil when the level has none.
func (l *Level) Player() *Node {
	if l.player < 0 {
		return nil
	}
	return &l.Nodes[l.player]
}

// PlayerIndex returns the index of the player node.
func (l *Level) PlayerIndex() (int, bool) {
	return l.player, l.player >= 0
}

// Move relocates node i to p. The caller guarantees p is free and inside
// the interior.
func (l *Level) Move(i int, p Pos) {
	n := &l.Nodes[i]
	delete(l.index, n.Pos)
	n.Pos = p
	l.index[p] = i
}

// Count returns the number of nodes of the given kind.
func (l *Level) Count(kind Kind) int {
	count := 0
	for i := range l.Nodes {
		if l.Nodes[i].Kind == kind {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	nodes := make([]Node, len(l.Nodes))
	for i := range l.Nodes {
		nodes[i] = l.Nodes[i].clone()
	}
	index := make(map[Pos]int, len(l.index))
	for p, i := range l.index {
		index[p] = i
	}
	return &Level{
		Info:   l.Info,
		Rows:   l.Rows,
		Cols:   l.Cols,
		Nodes:  nodes,
		player: l.player,
		index:  index,
	}
}

// adjacent returns the indices of nodes orthogonally adjacent to p in
// collection order.
func (l *Level) adjacent(p Pos) []int {
	out := make([]int, 0, 4)
	for _, d := range Cardinals {
		if i, ok := l.index[p.Step(d)]; ok {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out
}
