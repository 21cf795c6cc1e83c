package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xenzia/internal/core"
	"github.com/vovakirdan/xenzia/internal/games/snake"
)

// chromeRows is the number of terminal rows used by the status bar and the
// help footer.
const chromeRows = 2

// Smallest board that still shows the snake's shape.
const (
	minBoardW = 20
	minBoardH = 6
)

// Model is the Bubble Tea model for a snake game.
type Model struct {
	session   *snake.Session
	opts      snake.Options
	presenter *statusPresenter
	logger    *log.Logger
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	width     int
	height    int
	game      int // Incremented on every new session
	quitting  bool
}

// NewModel creates a model with a fresh session. A zero seed in opts falls
// back to cfg.Seed, then to a time-based one.
func NewModel(opts snake.Options, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:      opts,
		presenter: newStatusPresenter(logger),
		logger:    logger,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 0)),
		keys:      DefaultKeyMap(),
		help:      h,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.startSession()
	return m
}

// startSession replaces the session with a new one. The ended session is
// discarded, never resumed.
func (m *Model) startSession() {
	m.game++
	m.presenter.reset()
	m.session = snake.NewSession(m.opts, m.presenter)
	m.logger.Info("session started", "game", m.game, "seed", m.opts.Seed)
}

// Init arms the first tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game, m.session.Options().BaseInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionRestart:
		if m.session.Ended() {
			m.opts.Seed = time.Now().UnixNano()
			m.startSession()
			return m, tickCmd(m.game, m.session.Options().BaseInterval)
		}

	default:
		if !action.IsDirectional() {
			break
		}
		if d, ok := snake.DirectionFromAction(action); ok {
			m.session.Turn(d)
		}
	}

	return m, nil
}

// handleResize keeps the session running; only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 0))
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Game != m.game {
		return m, nil
	}

	res := m.session.Tick()
	if res.Ended {
		return m, nil
	}
	return m, tickCmd(m.game, res.Next)
}

// View renders the status bar, the board and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// The status bar and banner show what the session last reported
	status := renderStatus(m.presenter.score, m.width)
	footer := helpStyle.Render(m.help.View(m.keys))

	var board string
	if m.presenter.ended {
		board = renderBanner(m.presenter.score, m.screen.Width(), m.screen.Height())
	} else if m.screen.Width() < minBoardW || m.screen.Height() < minBoardH {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "terminal too small")
		board = RenderScreen(m.screen)
	} else {
		m.session.Render(m.screen)
		board = RenderScreen(m.screen)
	}

	return status + "\n" + board + "\n" + footer
}

// Session returns the current session.
func (m Model) Session() *snake.Session {
	return m.session
}

// Run starts the Bubble Tea program for one player.
func Run(opts snake.Options, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(opts, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
