package game

// MovePlayer moves the player one cell in dir, pushing at most one moveable
// node ahead of it. Any move that would leave the interior, push into an
// occupied cell, or walk into a fixed node is silently rejected.
// Returns true if the player moved.
func MovePlayer(l *Level, dir Direction) bool {
	pi, ok := l.PlayerIndex()
	if !ok {
		return false
	}
	dest := l.Nodes[pi].Pos.Step(dir)
	if !l.InBounds(dest) {
		return false
	}
	if j, taken := l.NodeAt(dest); taken {
		if !l.Nodes[j].Moveable() {
			return false
		}
		beyond := dest.Step(dir)
		if !l.InBounds(beyond) || l.Occupied(beyond) {
			return false
		}
		l.Move(j, beyond)
	}
	l.Move(pi, dest)
	return true
}

// PlayerAction applies the use action to every node next to the player.
// Lasers and switches flip their power, mirrors flip their orientation.
// Toggling a switch flips every toggle block. Under ButtonsAction the action
// also works buttons, each press flipping every toggle block.
func PlayerAction(l *Level, rules Rules) {
	p := l.Player()
	if p == nil {
		return
	}
	for _, i := range l.adjacent(p.Pos) {
		n := &l.Nodes[i]
		switch {
		case n.PlayerToggleable():
			n.Toggle()
			if n.Kind == KindSwitch {
				toggleBlocks(l)
			}
		case n.Kind == KindButton && rules.Buttons == ButtonsAction:
			n.Toggle()
			toggleBlocks(l)
		}
	}
}

// UpdateButtons refreshes button pressure after the player moved. A button is
// pressed while the player stands next to it; every press flips the toggle
// blocks and every release flips them back. No-op under ButtonsAction.
func UpdateButtons(l *Level, rules Rules) {
	if rules.Buttons != ButtonsAdjacent {
		return
	}
	p := l.Player()
	for i := range l.Nodes {
		n := &l.Nodes[i]
		if n.Kind != KindButton {
			continue
		}
		pressed := p != nil && p.Pos.Adjacent(n.Pos)
		if pressed != n.Pressed {
			n.Pressed = pressed
			toggleBlocks(l)
		}
	}
}

func toggleBlocks(l *Level) {
	for i := range l.Nodes {
		if l.Nodes[i].Kind == KindToggleBlock {
			l.Nodes[i].Toggle()
		}
	}
}
