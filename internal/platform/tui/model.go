package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/game"
	"github.com/vovakirdan/l1t/internal/levels"
	"github.com/vovakirdan/l1t/internal/storage"
)

const quitPrompt = "Are you sure you want to quit? (y/n)"

// Env carries what every screen of a session shares.
type Env struct {
	Store  *storage.Store // nil disables progress tracking
	Logger *log.Logger
	Rules  game.Rules
	Config core.RuntimeConfig
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// PlayModel is the Bubble Tea model for playing one level.
// Each key press is at most one command to the game session.
type PlayModel struct {
	env        Env
	level      levels.Level
	session    *game.Session
	screen     *core.Screen
	keyMapper  *KeyMapper
	help       *HelpModel
	confirming bool // quit prompt is showing
	recorded   bool
	done       bool
	exitOnDone bool // standalone program: quit when the round is over
}

// NewPlayModel starts a session on lvl. The level's board is owned by the
// session from now on.
func NewPlayModel(env Env, lvl levels.Level) PlayModel {
	return PlayModel{
		env:       env,
		level:     lvl,
		session:   game.NewSession(lvl.Board, env.Rules),
		screen:    core.NewScreen(env.Config.ScreenW, env.Config.ScreenH),
		keyMapper: NewKeyMapper(),
	}
}

// Init schedules the end of a round that is already decided by its first
// evaluation, such as a level without statues.
func (m PlayModel) Init() tea.Cmd {
	if m.session.State().Terminal() {
		return pauseCmd(m.env.Config.EndPause)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.env.Config.ScreenW = msg.Width
		m.env.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.help != nil {
			h, cmd := m.help.Update(msg)
			m.help = &h
			return m, cmd
		}
		return m, nil

	case RoundOverMsg:
		m.record()
		m.done = true
		if m.exitOnDone {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.help != nil {
		h, cmd := m.help.Update(msg)
		m.help = &h
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help != nil {
		h, cmd := m.help.Update(msg)
		if h.Closed() {
			m.help = nil
			return m, nil
		}
		m.help = &h
		return m, cmd
	}

	// The banner is showing; wait for RoundOverMsg.
	if m.session.State().Terminal() {
		return m, nil
	}

	if m.confirming {
		switch m.keyMapper.MapKeyToConfirm(msg) {
		case ConfirmYes:
			m.confirming = false
			return m.step(game.CommandQuit)
		case ConfirmNo:
			m.confirming = false
		}
		return m, nil
	}

	if m.keyMapper.IsHelp(msg) {
		h := NewHelpModel(m.env.Config.ScreenW, m.env.Config.ScreenH)
		m.help = &h
		return m, nil
	}

	switch cmd := m.keyMapper.MapKey(msg); cmd {
	case game.CommandNone:
		return m, nil
	case game.CommandQuit:
		m.confirming = true
		return m, nil
	default:
		return m.step(cmd)
	}
}

// step feeds one command to the session and schedules the end of the round
// when it is decided.
func (m PlayModel) step(cmd game.Command) (tea.Model, tea.Cmd) {
	state := m.session.Step(cmd)
	if !state.Terminal() {
		return m, nil
	}

	m.env.logger().Debug("round over",
		"pack", m.level.Pack,
		"level", m.level.ID,
		"state", state,
		"turns", m.session.Turns(),
	)
	if state == game.Quit {
		return m, pauseCmd(0)
	}
	return m, pauseCmd(m.env.Config.EndPause)
}

// record saves the finished round. Loose level files outside any pack are
// not tracked.
func (m *PlayModel) record() {
	if m.recorded || m.env.Store == nil || m.level.Pack == "" {
		return
	}
	m.recorded = true

	state := m.session.State()
	turns := m.session.Turns()
	logger := m.env.logger()

	if err := m.env.Store.RecordAttempt(m.level.Pack, m.level.ID, outcomeFor(state), turns); err != nil {
		logger.Warn("could not record attempt", "level", m.level.ID, "error", err)
	}
	if state != game.Won {
		return
	}
	_, err := m.env.Store.RecordCompletion(storage.Completion{
		Pack:    m.level.Pack,
		LevelID: m.level.ID,
		Name:    m.level.Name,
		Author:  m.level.Author,
		Turns:   turns,
	})
	if err != nil {
		logger.Warn("could not record completion", "level", m.level.ID, "error", err)
	}
}

func outcomeFor(state game.State) storage.Outcome {
	switch state {
	case game.Won:
		return storage.OutcomeWon
	case game.LostZapper:
		return storage.OutcomeLostZapper
	case game.LostDeath:
		return storage.OutcomeLostDeath
	default:
		return storage.OutcomeQuit
	}
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.done && m.exitOnDone {
		return ""
	}
	if m.help != nil {
		return m.help.View()
	}

	prompt := ""
	if m.confirming {
		prompt = quitPrompt
	}
	DrawPlay(m.screen, m.session.Snapshot(), prompt)
	return RenderScreen(m.screen)
}

// Done reports whether the round is over and its banner has been shown.
func (m PlayModel) Done() bool {
	return m.done
}

// State returns the state of the round.
func (m PlayModel) State() game.State {
	return m.session.State()
}

// Turns returns the number of commands applied so far.
func (m PlayModel) Turns() int {
	return m.session.Turns()
}

// RunPlay plays lvl in its own Bubble Tea program and returns the final state.
func RunPlay(env Env, lvl levels.Level) (game.State, int, error) {
	model := NewPlayModel(env, lvl)
	model.exitOnDone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return game.Quit, 0, err
	}

	m, ok := finalModel.(PlayModel)
	if !ok {
		return game.Quit, 0, nil
	}
	return m.State(), m.Turns(), nil
}
