package game

import (
	"fmt"
	"strings"
)

// WallChar is the character that draws the outer wall ring.
const WallChar = 'I'

const (
	headerLines  = 3
	minGridLines = 3 // top wall, one interior row, bottom wall
	minGridWidth = 3 // left wall, one interior column, right wall
)

// Parse error codes.
const (
	CodeEmpty      = "EMPTY"
	CodeTooFew     = "TOO_FEW_LINES"
	CodeTooNarrow  = "GRID_TOO_NARROW"
	CodeRagged     = "RAGGED_ROW"
	CodeBadBorder  = "BAD_BORDER"
	CodeTwoPlayers = "TWO_PLAYERS"
)

// ParseError describes why level text could not be turned into a Level.
// Line is 1-based within the whole text, 0 when not tied to a line.
type ParseError struct {
	Code    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("level: [%s] line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("level: [%s] %s", e.Code, e.Message)
}

// Is matches parse errors by code so the sentinels below work with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Code == e.Code
}

// Sentinel parse errors.
var (
	ErrEmptyLevel    = &ParseError{Code: CodeEmpty, Message: "empty level file"}
	ErrTooFewLines   = &ParseError{Code: CodeTooFew, Message: "level needs name, author and description lines followed by the grid"}
	ErrGridTooNarrow = &ParseError{Code: CodeTooNarrow, Message: "grid needs at least one interior cell inside the wall"}
	ErrRaggedRow     = &ParseError{Code: CodeRagged, Message: "grid rows differ in length"}
	ErrBadBorder     = &ParseError{Code: CodeBadBorder, Message: "grid border must be made of wall characters"}
	ErrTwoPlayers    = &ParseError{Code: CodeTwoPlayers, Message: "level holds more than one player"}
)

// Parse builds a level from its text form: name, author and description
// lines followed by a rectangular grid enclosed in WallChar.
func Parse(text string) (*Level, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, ErrEmptyLevel
	}
	lines := strings.Split(text, "\n")
	if len(lines) < headerLines+minGridLines {
		return nil, &ParseError{
			Code:    CodeTooFew,
			Message: fmt.Sprintf("%s (got %d lines, need at least %d)", ErrTooFewLines.Message, len(lines), headerLines+minGridLines),
		}
	}
	info := Info{
		Name:        strings.TrimSpace(lines[0]),
		Author:      strings.TrimSpace(lines[1]),
		Description: strings.TrimSpace(lines[2]),
	}
	return parseGrid(info, lines[headerLines:], headerLines)
}

// ParseGrid builds a level from an already split grid (wall ring included).
func ParseGrid(info Info, rows []string) (*Level, error) {
	return parseGrid(info, rows, 0)
}

func parseGrid(info Info, rows []string, lineOffset int) (*Level, error) {
	if len(rows) < minGridLines {
		return nil, &ParseError{
			Code:    CodeTooFew,
			Message: fmt.Sprintf("grid has %d rows, need at least %d", len(rows), minGridLines),
		}
	}

	grid := make([][]rune, len(rows))
	for r, row := range rows {
		grid[r] = []rune(row)
	}
	width := len(grid[0])
	if width < minGridWidth {
		return nil, &ParseError{
			Code:    CodeTooNarrow,
			Line:    lineOffset + 1,
			Message: fmt.Sprintf("grid is %d wide, need at least %d", width, minGridWidth),
		}
	}

	last := len(grid) - 1
	var nodes []Node
	players := 0
	for r, row := range grid {
		line := lineOffset + r + 1
		if len(row) != width {
			return nil, &ParseError{
				Code:    CodeRagged,
				Line:    line,
				Message: fmt.Sprintf("row is %d wide, expected %d", len(row), width),
			}
		}
		for c, ch := range row {
			if r == 0 || r == last || c == 0 || c == width-1 {
				if ch != WallChar {
					return nil, &ParseError{
						Code:    CodeBadBorder,
						Line:    line,
						Message: fmt.Sprintf("column %d is %q, expected %q", c+1, ch, WallChar),
					}
				}
				continue
			}
			if ch == ' ' {
				continue
			}
			n := nodeFromChar(ch, P(r, c))
			if n.Kind == KindPlayer {
				players++
				if players > 1 {
					return nil, &ParseError{Code: CodeTwoPlayers, Line: line, Message: ErrTwoPlayers.Message}
				}
			}
			nodes = append(nodes, n)
		}
	}

	lvl, ok := NewLevel(info, len(grid)-2, width-2, nodes)
	if !ok {
		// Unreachable: parsing places each node on its own interior cell.
		return nil, &ParseError{Code: CodeBadBorder, Message: "invalid node placement"}
	}
	return lvl, nil
}

// nodeFromChar maps a legend character to its node. Unknown characters,
// including an interior WallChar, become walls.
func nodeFromChar(ch rune, pos Pos) Node {
	switch ch {
	case 'X':
		return NewNode(KindPlayer, pos)
	case 'B':
		return NewNode(KindBlock, pos)
	case 's':
		return NewNode(KindSwitch, pos)
	case 'b':
		return NewNode(KindButton, pos)
	case 'T':
		return NewNode(KindToggleBlock, pos)
	case 'S':
		return NewStatue(pos, false)
	case 'R':
		return NewStatue(pos, true)
	case 'Z':
		return NewNode(KindZapper, pos)
	case '/':
		return NewMirror(pos, Forward, false)
	case '\\':
		return NewMirror(pos, Backward, false)
	case '?':
		return NewMirror(pos, Forward, true)
	case '|':
		return NewMirror(pos, Backward, true)
	case '1', '2', '3', '4', '5', '6', '7', '8':
		k := int(ch - '1')
		return NewLaser(pos, laserDirs[k%4], k < 4)
	default:
		return NewNode(KindWall, pos)
	}
}

var laserDirs = [4]Direction{Up, Down, Left, Right}

// Format renders the level back into its text form. Mirror orientation and
// laser power survive; flags the legend cannot express (dead, lit, pressed,
// switch and toggle-block state) are dropped.
func Format(l *Level) string {
	var sb strings.Builder
	sb.WriteString(l.Info.Name)
	sb.WriteByte('\n')
	sb.WriteString(l.Info.Author)
	sb.WriteByte('\n')
	sb.WriteString(l.Info.Description)
	sb.WriteByte('\n')
	for r := 0; r <= l.Rows+1; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c <= l.Cols+1; c++ {
			p := P(r, c)
			if l.IsWall(p) {
				sb.WriteRune(WallChar)
				continue
			}
			i, ok := l.NodeAt(p)
			if !ok {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(charFor(&l.Nodes[i]))
		}
	}
	return sb.String()
}

func charFor(n *Node) rune {
	switch n.Kind {
	case KindPlayer:
		return 'X'
	case KindBlock:
		return 'B'
	case KindSwitch:
		return 's'
	case KindButton:
		return 'b'
	case KindToggleBlock:
		return 'T'
	case KindStatue:
		if n.Reversed {
			return 'R'
		}
		return 'S'
	case KindZapper:
		return 'Z'
	case KindMirror:
		switch {
		case n.Orientation == Forward && n.moveable:
			return '?'
		case n.moveable:
			return '|'
		case n.Orientation == Forward:
			return '/'
		default:
			return '\\'
		}
	case KindLaser:
		for k, d := range laserDirs {
			if d == n.Dir {
				if n.On {
					return rune('1' + k)
				}
				return rune('5' + k)
			}
		}
		return '1'
	default:
		return WallChar
	}
}
