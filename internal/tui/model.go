package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/popper/internal/config"
	"github.com/alexisbeaulieu97/popper/internal/logger"
	"github.com/alexisbeaulieu97/popper/internal/popper"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chromeRows is the header plus the help line.
	chromeRows = 2
)

// frameMsg flushes one frame of the session's frame queue.
type frameMsg struct{}

// Model is the bubbletea model of the interactive dropdown demo. It hosts
// one positioning engine; frames are produced by tea.Tick only while
// callbacks are queued.
type Model struct {
	s        *session
	keys     keyMap
	help     help.Model
	width    int
	height   int
	interval time.Duration
	ticking  bool
	frames   uint64
	quitting bool
}

// NewModel constructs the demo model from configuration.
func NewModel(cfg *config.Config, log *logger.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	rate := cfg.Demo.FrameRate
	if rate <= 0 {
		rate = 60
	}

	return Model{
		s:        newSession(cfg, defaultWidth, defaultHeight-chromeRows, log),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
		interval: time.Second / time.Duration(rate),
	}
}

// Init starts the bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// IsOpen reports whether the menu is open.
func (m Model) IsOpen() bool {
	return m.s.open
}

// Result returns the last position applied to the menu and whether the
// current open menu has been positioned yet.
func (m Model) Result() (popper.PositionResult, bool) {
	return m.s.result, m.s.open && m.s.positioned
}

// Chosen returns the last chosen menu item.
func (m Model) Chosen() string {
	return m.s.chosen
}

// Engine exposes the positioning engine.
func (m Model) Engine() *popper.Engine {
	return m.s.engine
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// nextFrame schedules a frame tick when callbacks are waiting and none is
// in flight.
func (m *Model) nextFrame() tea.Cmd {
	if m.ticking || m.s.frames.Pending() == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return frameMsg{} })
}
