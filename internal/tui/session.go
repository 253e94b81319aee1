package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/popper/internal/config"
	"github.com/alexisbeaulieu97/popper/internal/document"
	"github.com/alexisbeaulieu97/popper/internal/frame"
	"github.com/alexisbeaulieu97/popper/internal/logger"
	"github.com/alexisbeaulieu97/popper/internal/popper"
	"github.com/alexisbeaulieu97/popper/internal/ui/components"
)

const (
	anchorCol    = 4
	anchorRow    = 6
	maxAnchorPad = 20
	minPageRows  = 60
)

var widthModes = []popper.WidthMode{popper.WidthAuto, popper.WidthMatchAnchor, popper.WidthMaxContent}

// session is the terminal host for one dropdown: a document measured in
// cells, a frame queue flushed on bubbletea ticks, and the engine placing
// the menu against the anchor button. All methods run inside Update.
type session struct {
	log    *logger.Logger
	doc    *document.Document
	frames *frame.Queue
	engine *popper.Engine

	button    *components.Button
	anchor    *document.Box
	anchorPad int
	body      *document.Box
	items     []string
	selected  int

	open       bool
	positioned bool
	result     popper.PositionResult
	chosen     string
}

func newSession(cfg *config.Config, width, height int, log *logger.Logger) *session {
	s := &session{
		log:    log.WithComponent("tui"),
		doc:    document.New(float64(width), float64(height), log),
		frames: frame.NewQueue(),
		button: components.NewButton(cfg.Demo.AnchorLabel).WithCaret(true),
		items:  append([]string(nil), cfg.Demo.Items...),
	}

	w, h := components.Size(s.button)
	s.anchor = s.doc.Append("anchor", popper.Rect{X: anchorCol, Y: anchorRow, Width: float64(w), Height: float64(h)})

	opts := cfg.PopperOptions()
	offset := cfg.Demo.Offset
	opts.Offset = &offset
	opts.Logger = log
	opts.OnPosition = s.onPosition
	opts.OnClose = s.close
	s.engine = popper.New(s.doc, s.frames, popper.RefTo(s.anchor), opts)
	return s
}

// pageRows is the scrollable document height.
func (s *session) pageRows() int {
	return max(minPageRows, 3*int(s.doc.Viewport().Height))
}

func (s *session) anchorView() string {
	width := int(s.anchor.Rect().Width)
	return s.button.WithActive(s.open).
		WithStyle(lipgloss.NewStyle().Width(width).Align(lipgloss.Center)).
		View()
}

func (s *session) menu() *components.Menu {
	width := popper.Unconstrained()
	if s.positioned {
		width = s.result.Width
	}
	return components.NewMenu(s.items...).
		WithSelected(s.selected).
		WithWidth(width).
		WithMaxWidth(int(s.doc.Viewport().Width))
}

// openMenu opens the engine before the menu box exists, the way a component
// tree runs the open effect before its portal child mounts. Setting the
// popper handle completes activation.
func (s *session) openMenu() {
	if s.open {
		return
	}
	s.open = true
	s.positioned = false
	s.selected = 0
	s.engine.SetOpen(true)

	w, h := components.Size(s.menu())
	s.body = s.doc.Append("menu", popper.Rect{Width: float64(w), Height: float64(h)})
	s.engine.Popper().Set(s.body)
}

func (s *session) close() {
	if !s.open {
		return
	}
	s.open = false
	s.engine.SetOpen(false)
	s.engine.Popper().Clear()
	s.doc.Remove(s.body)
	s.body = nil
}

func (s *session) toggle() {
	if s.open {
		s.choose(s.selected)
		return
	}
	s.openMenu()
}

func (s *session) choose(index int) {
	if index >= 0 && index < len(s.items) {
		s.chosen = s.items[index]
	}
	s.close()
}

func (s *session) moveSelection(delta int) {
	n := len(s.items)
	if n == 0 {
		return
	}
	s.selected = ((s.selected+delta)%n + n) % n
}

// onPosition applies a result to the menu box, as a renderer applying
// top/left/width styles would. A width change resizes the box.
func (s *session) onPosition(result popper.PositionResult) {
	s.result = result
	s.positioned = true
	if s.body == nil {
		return
	}
	s.body.MoveTo(result.Left, result.Top)
	w, h := components.Size(s.menu())
	s.body.SetSize(float64(w), float64(h))
}

// click delivers a pointer-down at viewport cell (x, y). Dismissal runs
// first; a click on the anchor toggles and a click on an item chooses it.
func (s *session) click(x, y int) {
	target := s.doc.PointerDown(float64(x), float64(y))

	switch {
	case target == s.anchor:
		if s.open {
			s.close()
		} else {
			s.openMenu()
		}
	case s.body != nil && target == s.body:
		row := y + int(s.doc.ScrollOffset().Y) - int(s.body.Rect().Y) - 1
		if row >= 0 && row < len(s.items) {
			s.choose(row)
		}
	}
}

func (s *session) scrollBy(rows int) {
	limit := float64(s.pageRows()) - s.doc.Viewport().Height
	y := min(max(s.doc.ScrollOffset().Y+float64(rows), 0), max(limit, 0))
	s.doc.ScrollTo(0, y)
}

func (s *session) resize(width, height int) {
	s.doc.Resize(float64(width), float64(height))
}

func (s *session) cyclePlacement() {
	all := popper.Placements()
	current := s.engine.Options().Placement
	next := all[0]
	for i, p := range all {
		if p == current {
			next = all[(i+1)%len(all)]
			break
		}
	}
	s.engine.SetPlacement(next)
}

func (s *session) cycleWidth() {
	current := s.engine.Options().WidthMode
	next := widthModes[0]
	for i, mode := range widthModes {
		if mode == current {
			next = widthModes[(i+1)%len(widthModes)]
			break
		}
	}
	s.engine.SetWidthMode(next)
}

// growAnchor widens or narrows the anchor button; its size observer picks
// the change up.
func (s *session) growAnchor(delta int) {
	pad := min(max(s.anchorPad+delta, 0), maxAnchorPad)
	if pad == s.anchorPad {
		return
	}
	s.anchorPad = pad
	w, h := components.Size(components.NewButton(s.button.Label()).WithCaret(true))
	s.anchor.SetSize(float64(w+2*pad), float64(h))
}
