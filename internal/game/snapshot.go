package game

// Snapshot is a read-only copy of a session after a tick. It shares nothing
// with the live level, so it is safe to hand to another goroutine.
type Snapshot struct {
	Info  Info
	Rows  int
	Cols  int
	Nodes []Node
	State State
	Turns int
}

func newSnapshot(l *Level, state State, turns int) Snapshot {
	nodes := make([]Node, len(l.Nodes))
	for i := range l.Nodes {
		nodes[i] = l.Nodes[i].clone()
	}
	return Snapshot{
		Info:  l.Info,
		Rows:  l.Rows,
		Cols:  l.Cols,
		Nodes: nodes,
		State: state,
		Turns: turns,
	}
}

// Player returns the player node of the snapshot, or nil.
func (s Snapshot) Player() *Node {
	for i := range s.Nodes {
		if s.Nodes[i].Kind == KindPlayer {
			return &s.Nodes[i]
		}
	}
	return nil
}

// Statues returns how many statues are satisfied and how many there are.
func (s Snapshot) Statues() (satisfied, total int) {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Kind != KindStatue {
			continue
		}
		total++
		if n.Reversed != n.Lit {
			satisfied++
		}
	}
	return satisfied, total
}
