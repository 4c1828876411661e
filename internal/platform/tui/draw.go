package tui

import (
	"fmt"

	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/game"
)

const (
	beamColor  = core.ColorBrightRed
	wallColor  = core.ColorGray
	playFooter = "wasd/hjkl/arrows: move   space: use   H: help   q: quit"
)

// nodeGlyph returns the rune and color a node is drawn with.
// Lit, powered and pressed nodes use the bright variant of their color.
func nodeGlyph(n *game.Node) (rune, core.Color) {
	switch n.Kind {
	case game.KindPlayer:
		if n.Dead {
			return 'X', core.ColorRed
		}
		return 'X', core.ColorBrightGreen
	case game.KindBlock:
		return 'B', core.ColorWhite
	case game.KindWall:
		return game.WallChar, wallColor
	case game.KindSwitch:
		return 's', pick(n.On, core.ColorBrightGreen, core.ColorGreen)
	case game.KindButton:
		return 'b', pick(n.Pressed, core.ColorBrightYellow, core.ColorYellow)
	case game.KindToggleBlock:
		if !n.Visible {
			return ' ', core.ColorDefault
		}
		return 'T', core.ColorMagenta
	case game.KindMirror:
		r := '\\'
		if n.Orientation == game.Forward {
			r = '/'
		}
		return r, pick(n.Moveable(), core.ColorBrightCyan, core.ColorCyan)
	case game.KindLaser:
		return 'L', pick(n.On, core.ColorBrightRed, core.ColorRed)
	case game.KindStatue:
		r := 'S'
		if n.Reversed {
			r = 'R'
		}
		return r, pick(n.Lit, core.ColorBrightYellow, core.ColorOrange)
	case game.KindZapper:
		return 'Z', pick(n.Lit, core.ColorBrightMagenta, core.ColorMagenta)
	}
	return '?', core.ColorDefault
}

func pick(bright bool, on, off core.Color) core.Color {
	if bright {
		return on
	}
	return off
}

// beamGlyph returns the rune of a beam cell entered moving in d. The last
// cell of a beam shows an arrow.
func beamGlyph(d game.Direction, last bool) rune {
	if last {
		switch d {
		case game.Up:
			return '^'
		case game.Down:
			return 'v'
		case game.Left:
			return '<'
		default:
			return '>'
		}
	}
	if d.Vertical() {
		return '|'
	}
	return '-'
}

// DrawBoard draws the wall ring, the beams and the nodes of snap with the
// top-left wall corner at (x, y). Nodes are drawn over beams.
func DrawBoard(s *core.Screen, snap game.Snapshot, x, y int) {
	for r := 0; r <= snap.Rows+1; r++ {
		for c := 0; c <= snap.Cols+1; c++ {
			if r == 0 || c == 0 || r == snap.Rows+1 || c == snap.Cols+1 {
				s.SetCell(x+c, y+r, game.WallChar, wallColor)
			}
		}
	}

	for i := range snap.Nodes {
		n := &snap.Nodes[i]
		if n.Kind != game.KindLaser {
			continue
		}
		prev := n.Pos
		for j, p := range n.Beam {
			d := game.Direction{Row: p.Row - prev.Row, Col: p.Col - prev.Col}
			s.SetCell(x+p.Col, y+p.Row, beamGlyph(d, j == len(n.Beam)-1), beamColor)
			prev = p
		}
	}

	for i := range snap.Nodes {
		n := &snap.Nodes[i]
		r, c := nodeGlyph(n)
		s.SetCell(x+n.Pos.Col, y+n.Pos.Row, r, c)
	}
}

// roundBanner returns the end-of-round message, or "" while the round runs.
func roundBanner(state game.State) (string, core.Color) {
	switch state {
	case game.Won:
		return "YAY, you won!", core.ColorBrightGreen
	case game.LostZapper:
		return "Uh oh, you lit a zapper!", core.ColorBrightMagenta
	case game.LostDeath:
		return "You got zapped by a laser!", core.ColorBrightRed
	}
	return "", core.ColorDefault
}

// DrawPlay draws the whole play screen: the level header, the board, a status
// line and the key footer, centered on s. prompt, when set, is shown in a box
// over the board, as is the end-of-round banner.
func DrawPlay(s *core.Screen, snap game.Snapshot, prompt string) {
	s.Clear()

	boardW, boardH := snap.Cols+2, snap.Rows+2
	// header (2) + gap + board + gap + status + footer
	area := core.CenteredRect(s.Width(), s.Height(), boardW, boardH+6)

	title := snap.Info.Name
	if snap.Info.Author != "" {
		title = fmt.Sprintf("%s by %s", snap.Info.Name, snap.Info.Author)
	}
	s.DrawTextCentered(area.Y, title, core.ColorBrightWhite)
	s.DrawTextCentered(area.Y+1, snap.Info.Description, core.ColorGray)

	boardY := area.Y + 3
	DrawBoard(s, snap, area.X, boardY)

	satisfied, total := snap.Statues()
	status := fmt.Sprintf("Turns: %d   Statues: %d/%d", snap.Turns, satisfied, total)
	s.DrawTextCentered(boardY+boardH+1, status, core.ColorWhite)
	s.DrawTextCentered(boardY+boardH+2, playFooter, core.ColorGray)

	msg, color := roundBanner(snap.State)
	if prompt != "" {
		msg, color = prompt, core.ColorBrightYellow
	}
	if msg != "" {
		drawBanner(s, boardY+boardH/2, msg, color)
	}
}

// drawBanner draws msg in a box centered on row y.
func drawBanner(s *core.Screen, y int, msg string, color core.Color) {
	w := len([]rune(msg)) + 4
	box := core.CenteredRect(s.Width(), 0, w, 3)
	box.Y = y - 1
	for r := box.Y; r < box.Bottom(); r++ {
		for c := box.X; c < box.Right(); c++ {
			s.Set(c, r, ' ')
		}
	}
	s.DrawBox(box, color)
	s.DrawTextColor(box.X+2, y, msg, color)
}
