package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/storage"
)

// Progress board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the pack sidebar
	sidebarWidth       = 24  // Width of the pack sidebar
	maxCompletions     = 100 // Max completions to load per pack
)

// ProgressKeyMap defines the key bindings for the progress board.
type ProgressKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// progressPack is a pack tab of the board.
type progressPack struct {
	id    string
	title string
	total int // levels in the pack
}

// ProgressModel is the Bubble Tea model for the progress board: the won
// rounds of one pack at a time, newest first.
type ProgressModel struct {
	packs       []progressPack
	packCursor  int
	store       *storage.Store
	completions []storage.Completion
	done        int // distinct levels won in the current pack
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProgressModel creates a progress board over the packs of catalog.
func NewProgressModel(store *storage.Store, catalog []CatalogPack, width, height int) ProgressModel {
	packs := make([]progressPack, len(catalog))
	for i, cp := range catalog {
		packs[i] = progressPack{id: cp.Pack.ID(), title: cp.Pack.Title(), total: len(cp.Levels)}
	}

	m := ProgressModel{
		packs:       packs,
		store:       store,
		keys:        DefaultProgressKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.packs) > 0 {
		m.loadCompletions(m.packs[0].id)
	}
	return m
}

// createTable creates a new table sized to the terminal.
func (m *ProgressModel) createTable() table.Model {
	tableWidth := m.width - 8
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4
	}
	nameWidth := core.Clamp(tableWidth-8-7-14, 12, 32)

	columns := []table.Column{
		{Title: "Level", Width: 8},
		{Title: "Name", Width: nameWidth},
		{Title: "Turns", Width: 7},
		{Title: "Won", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadCompletions loads the completions of the given pack.
func (m *ProgressModel) loadCompletions(pack string) {
	m.completions, m.loadErr, m.done = nil, nil, 0
	if m.store != nil {
		m.completions, m.loadErr = m.store.Completions(pack, maxCompletions)
		if set, err := m.store.CompletedSet(pack); err == nil {
			m.done = len(set)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current completions.
func (m *ProgressModel) updateTableRows() {
	rows := make([]table.Row, len(m.completions))
	for i, c := range m.completions {
		rows[i] = table.Row{
			c.LevelID,
			c.Name,
			fmt.Sprintf("%d", c.Turns),
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress board.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor + 1) % len(m.packs)
				m.loadCompletions(m.packs[m.packCursor].id)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor - 1 + len(m.packs)) % len(m.packs)
				m.loadCompletions(m.packs[m.packCursor].id)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress board.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "PROGRESS"
	if len(m.packs) > 0 {
		p := m.packs[m.packCursor]
		title = fmt.Sprintf("PROGRESS - %s (%d/%d)", p.title, m.done, p.total)
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := box.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the pack list of the wide layout.
func (m ProgressModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Packs\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, p := range m.packs {
		name := truncate(p.title, sidebarWidth-6)
		if i == m.packCursor {
			sb.WriteString(titleStyle.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")
	}
	return style.Render(sb.String())
}

// renderTabs renders the pack selector of the narrow layout.
func (m ProgressModel) renderTabs() string {
	if len(m.packs) == 0 {
		return ""
	}
	tabs := make([]string, len(m.packs))
	for i, p := range m.packs {
		name := truncate(p.title, 12)
		if i == m.packCursor {
			tabs[i] = cursorStyle.Padding(0, 1).Render(name)
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.packs[m.packCursor].title)
	}
	return line
}

// renderTableContent renders the table or a placeholder.
func (m ProgressModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return empty.Render("Progress is not being saved.\nThe progress database could not be opened.")
	case m.loadErr != nil:
		return errorStyle.Padding(2, 4).Render(m.loadErr.Error())
	case len(m.completions) == 0:
		return empty.Render("No levels completed yet.\nLight up some statues!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}
