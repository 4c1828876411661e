package game

// FireLasers recomputes every beam in collection order.
//
// A beam starts at its laser and advances one cell at a time. It stops
// silently at the wall ring, bends at mirrors, and stops at any other node.
// Striking a player kills it, striking a laser applies rules.LaserHit, and
// striking a statue or zapper toggles it. A laser switched off earlier in the
// same pass fires no beam, so the outcome depends on collection order.
func FireLasers(l *Level, rules Rules) {
	for i := range l.Nodes {
		if l.Nodes[i].Kind != KindLaser {
			continue
		}
		if !l.Nodes[i].On {
			l.Nodes[i].Beam = l.Nodes[i].Beam[:0]
			continue
		}
		l.Nodes[i].Beam = traceBeam(l, i, rules)
	}
}

// traceBeam walks the beam of laser i and applies its impact.
func traceBeam(l *Level, i int, rules Rules) []Pos {
	pos := l.Nodes[i].Pos
	dir := l.Nodes[i].Dir
	beam := make([]Pos, 0, l.Rows+l.Cols)

	// Reflection is reversible, so a beam can only revisit a (cell, direction)
	// state by returning to its own laser. The cap is never reached.
	maxSteps := 4 * l.Rows * l.Cols
	for step := 0; step < maxSteps; step++ {
		next := pos.Step(dir)
		if !l.InBounds(next) {
			break
		}
		beam = append(beam, next)
		pos = next

		j, ok := l.index[next]
		if !ok {
			continue
		}
		target := &l.Nodes[j]
		if target.Kind == KindMirror {
			dir = dir.Reflect(target.Orientation)
			continue
		}
		if target.LaserToggleable() {
			strike(target, rules)
		}
		break
	}
	return beam
}

// strike applies a beam impact to a laser-toggleable node.
func strike(n *Node, rules Rules) {
	switch n.Kind {
	case KindPlayer:
		n.TurnOn()
	case KindLaser:
		if rules.LaserHit == LaserHitToggle {
			n.Toggle()
		} else {
			n.TurnOff()
		}
		if !n.On {
			n.Beam = n.Beam[:0]
		}
	case KindStatue, KindZapper:
		n.Toggle()
	}
}
