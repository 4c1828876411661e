package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/levels"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Pack levels.Pack
	Info levels.Info
	Done bool // won at least once
}

// menuLine is one row of the level list; headers have no item.
type menuLine struct {
	text string
	item int // index into items, -1 for pack headers
}

// MenuModel is the Bubble Tea model for the level picker.
// It only records what the user chose; the session model acts on it.
type MenuModel struct {
	env          Env
	items        []MenuItem
	lines        []menuLine
	cursor       int // index into items
	width        int
	height       int
	keyMapper    *KeyMapper
	help         *HelpModel
	quitting     bool
	selected     *MenuItem
	openProgress bool
}

// NewMenuModel creates a menu over catalog. Completion marks come from the
// progress store when there is one.
func NewMenuModel(env Env, catalog []CatalogPack) MenuModel {
	m := MenuModel{
		env:       env,
		width:     env.Config.ScreenW,
		height:    env.Config.ScreenH,
		keyMapper: NewKeyMapper(),
	}

	for _, cp := range catalog {
		header := cp.Pack.Title()
		if cp.Err != nil {
			header += errorStyle.Render("  (unavailable)")
		}
		m.lines = append(m.lines, menuLine{text: packStyle.Render(header), item: -1})

		done := m.completed(cp.Pack.ID())
		for _, info := range cp.Levels {
			m.lines = append(m.lines, menuLine{item: len(m.items)})
			m.items = append(m.items, MenuItem{Pack: cp.Pack, Info: info, Done: done[info.ID]})
		}
	}
	return m
}

func (m MenuModel) completed(pack string) map[string]bool {
	if m.env.Store == nil {
		return nil
	}
	set, err := m.env.Store.CompletedSet(pack)
	if err != nil {
		m.env.logger().Warn("could not read progress", "pack", pack, "error", err)
		return nil
	}
	return set
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.help != nil {
		h, cmd := m.help.Update(msg)
		if h.Closed() {
			m.help = nil
			return m, nil
		}
		m.help = &h
		if wsm, ok := msg.(tea.WindowSizeMsg); ok {
			m.width, m.height = wsm.Width, wsm.Height
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.env.Config.ScreenW = msg.Width
		m.env.Config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.items) - 1

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < last {
			m.cursor++
		}

	case MenuActionTop:
		m.cursor = 0

	case MenuActionBottom:
		m.cursor = core.Max(0, last)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionProgress:
		m.openProgress = true

	case MenuActionHelp:
		h := NewHelpModel(m.width, m.height)
		m.help = &h
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.help != nil {
		return m.help.View()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L 1 T"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Light every statue. Don't get zapped."), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No levels found.", m.width))
		b.WriteString("\n")
	}

	// header (4) + description (2) + footer (2)
	avail := core.Max(3, m.height-8)
	cursorLine := 0
	for i, l := range m.lines {
		if l.item == m.cursor {
			cursorLine = i
			break
		}
	}
	offset := core.Clamp(cursorLine-avail/2, 0, core.Max(0, len(m.lines)-avail))
	end := core.Min(len(m.lines), offset+avail)

	// The first visible level keeps its pack header in view.
	rows := make([]string, 0, avail+1)
	if offset > 0 && m.lines[offset].item >= 0 {
		for i := offset - 1; i >= 0; i-- {
			if m.lines[i].item < 0 {
				rows = append(rows, m.lines[i].text)
				break
			}
		}
	}
	for _, l := range m.lines[offset:end] {
		if l.item < 0 {
			rows = append(rows, l.text)
			continue
		}
		rows = append(rows, m.itemLine(l.item))
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	if len(m.items) > 0 {
		info := m.items[m.cursor].Info
		b.WriteString(centerText(dimStyle.Render(info.Description), m.width))
		b.WriteString("\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Progress  |  H: Help  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) itemLine(i int) string {
	item := m.items[i]
	mark := "[ ]"
	if item.Done {
		mark = "[x]"
	}
	line := fmt.Sprintf("  %s %-28s", mark, item.Info.Title())
	if i == m.cursor {
		return cursorStyle.Render(line)
	}
	return line
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsProgress returns true if user asked for the progress board.
func (m MenuModel) WantsProgress() bool {
	return m.openProgress
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.env.Config
}
