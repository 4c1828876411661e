package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/l1t/internal/levels"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLoading
	screenPlay
	screenProgress
)

// levelLoadedMsg carries the result of loading the level picked in the menu.
type levelLoadedMsg struct {
	level levels.Level
	err   error
}

// loadLevelCmd loads a level off the UI goroutine; remote packs hit the network.
func loadLevelCmd(ctx context.Context, item MenuItem) tea.Cmd {
	return func() tea.Msg {
		lvl, err := item.Pack.Load(ctx, item.Info.ID)
		return levelLoadedMsg{level: lvl, err: err}
	}
}

// SessionModel manages the full flow: menu -> level -> menu, plus the
// progress board. It is the top-level model of `l1t menu` and of every SSH
// session.
type SessionModel struct {
	ctx      context.Context
	env      Env
	catalog  []CatalogPack
	screen   sessionScreen
	menu     MenuModel
	play     *PlayModel
	progress *ProgressModel
	status   string // last load error, shown under the menu
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(ctx context.Context, env Env, catalog []CatalogPack) SessionModel {
	return SessionModel{
		ctx:     ctx,
		env:     env,
		catalog: catalog,
		menu:    NewMenuModel(env, catalog),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Config.ScreenW = msg.Width
		m.env.Config.ScreenH = msg.Height

	case levelLoadedMsg:
		if msg.err != nil {
			m.env.logger().Warn("could not load level", "error", msg.err)
			m.status = fmt.Sprintf("Could not load level: %v", msg.err)
			m.backToMenu()
			return m, nil
		}
		play := NewPlayModel(m.env, msg.level)
		m.play = &play
		m.screen = screenPlay
		return m, m.play.Init()
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenProgress:
		return m.updateProgress(msg)
	case screenLoading:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsProgress() {
		progress := NewProgressModel(m.env.Store, m.catalog, m.env.Config.ScreenW, m.env.Config.ScreenH)
		m.progress = &progress
		m.screen = screenProgress
		return m, m.progress.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.status = ""
		m.screen = screenLoading
		return m, loadLevelCmd(m.ctx, *selected)
	}

	return m, cmd
}

// updatePlay handles updates while a level is being played.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if play, ok := newModel.(PlayModel); ok {
		m.play = &play
	}

	if m.play.Done() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

// updateProgress handles updates when the progress board is showing.
func (m SessionModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.progress.Update(msg)
	if progress, ok := newModel.(ProgressModel); ok {
		m.progress = &progress
	}

	if m.progress.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.progress.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

// backToMenu rebuilds the menu so completion marks are fresh, keeping the
// cursor where it was.
func (m *SessionModel) backToMenu() {
	cursor := m.menu.cursor
	m.menu = NewMenuModel(m.env, m.catalog)
	if cursor < len(m.menu.items) {
		m.menu.cursor = cursor
	}
	m.play = nil
	m.progress = nil
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenProgress:
		return m.progress.View()
	case screenLoading:
		return "\n" + centerText(dimStyle.Render("Loading level..."), m.env.Config.ScreenW)
	}

	view := m.menu.View()
	if m.status != "" && m.menu.help == nil {
		view += centerText(errorStyle.Render(m.status), m.env.Config.ScreenW) + "\n"
	}
	return view
}

// RunSession runs the menu loop in the local terminal until the user quits.
func RunSession(ctx context.Context, env Env, catalog []CatalogPack) error {
	p := tea.NewProgram(
		NewSessionModel(ctx, env, catalog),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
