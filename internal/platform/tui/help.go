package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/game"
)

// helpEntry is one legend entry of the help text.
type helpEntry struct {
	glyph rune
	color core.Color
	title string
	body  string
}

var helpEntries = []helpEntry{
	{'X', core.ColorBrightGreen, "PLAYER", "Hey, that's you! A laser beam that reaches you ends the level."},
	{'L', core.ColorBrightRed, "LASERS", "Lasers fire a beam up, down, left or right. They cannot turn, " +
		"but standing next to one and pressing space switches it on or off. A laser hit by a beam switches off."},
	{'S', core.ColorBrightYellow, "STATUES", "Every statue must be lit by a beam to win the level. " +
		"Statues cannot be moved or switched by hand."},
	{'R', core.ColorBrightYellow, "REVERSE STATUES", "Like statues, except they must NOT be lit to win."},
	{'/', core.ColorCyan, "MIRRORS", "Mirrors turn a beam by a right angle. Press space next to one to flip it " +
		"between / and \\."},
	{'/', core.ColorBrightCyan, "MOVEABLE MIRRORS", "The same as mirrors, but they can be pushed around."},
	{'Z', core.ColorBrightMagenta, "ZAPPERS", "If a beam lights a zapper you lose the level at once."},
	{game.WallChar, core.ColorGray, "WALLS", "Walls cannot be moved and stop beams."},
	{'B', core.ColorWhite, "BLOCKS", "Blocks can be pushed one at a time and stop beams."},
	{'T', core.ColorMagenta, "TOGGLE BLOCKS", "Fixed blocks that switches and buttons turn on and off. " +
		"They stop beams and block the way either way."},
	{'s', core.ColorGreen, "SWITCHES", "Press space next to a switch to flip every toggle block."},
	{'b', core.ColorYellow, "BUTTONS", "Standing next to a button presses it and flips every toggle block. " +
		"Stepping away flips them back."},
}

// HelpKeyMap defines the key bindings of the help viewer.
type HelpKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HelpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k HelpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Close}}
}

// DefaultHelpKeyMap returns default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "H", "?", "enter"),
			key.WithHelp("esc/q", "close"),
		),
	}
}

// HelpModel is a scrollable page explaining the controls and every entity.
// It is embedded by the play and menu screens rather than run on its own.
type HelpModel struct {
	viewport viewport.Model
	help     help.Model
	keys     HelpKeyMap
	closed   bool
}

// NewHelpModel creates a help viewer filling a width x height terminal.
func NewHelpModel(width, height int) HelpModel {
	m := HelpModel{
		viewport: viewport.New(width, core.Max(1, height-2)),
		help:     help.New(),
		keys:     DefaultHelpKeyMap(),
	}
	m.help.Width = width
	m.viewport.SetContent(HelpText(width))
	return m
}

// Update handles keys and resizes. Scrolling keys go to the viewport.
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Close) {
			m.closed = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = core.Max(1, msg.Height-2)
		m.viewport.SetContent(HelpText(msg.Width))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Closed reports whether the user asked to leave the help viewer.
func (m HelpModel) Closed() bool {
	return m.closed
}

// View renders the visible part of the help text and the key hints.
func (m HelpModel) View() string {
	footer := fmt.Sprintf("%s  %3.f%%", m.help.View(m.keys), m.viewport.ScrollPercent()*100)
	return m.viewport.View() + "\n" + dimStyle.Render(footer)
}

// HelpText returns the help page wrapped to width.
func HelpText(width int) string {
	wrap := lipgloss.NewStyle().Width(core.Clamp(width-4, 20, 72)).PaddingLeft(2)
	heading := lipgloss.NewStyle().Bold(true).Underline(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(wrap.Render("In " + titleStyle.Render("l1t") +
		", your goal is to use the lasers in each level to light up all of its statues."))
	b.WriteString("\n\n")

	b.WriteString(wrap.Render(heading.Render("CONTROLS")))
	b.WriteString("\n\n")
	controls := [][2]string{
		{"w k up", "Move up"},
		{"s j down", "Move down"},
		{"a h left", "Move left"},
		{"d l right", "Move right"},
		{"space", "Use everything next to you"},
		{"H ?", "Show this help"},
		{"q", "Quit the level"},
	}
	for _, c := range controls {
		b.WriteString(wrap.Render(fmt.Sprintf("%-10s %s", c[0], c[1])))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, e := range helpEntries {
		glyph := styleFor(e.color).Bold(true).Render(string(e.glyph))
		b.WriteString(wrap.Render(glyph + " " + heading.Render(e.title)))
		b.WriteString("\n")
		b.WriteString(wrap.Render(e.body))
		b.WriteString("\n\n")
	}
	return b.String()
}
