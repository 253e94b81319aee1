package popper

import (
	"github.com/alexisbeaulieu97/popper/internal/logger"
)

// DefaultZIndex is the stacking order given to positioned poppers.
const DefaultZIndex = 1000

// DefaultOffset leaves a small gap below the anchor for the default
// placement.
var DefaultOffset = Offset{X: 0, Y: 8}

// Options configures an Engine.
type Options struct {
	// Placement selects the anchor edge and alignment. Empty means
	// DefaultPlacement.
	Placement Placement
	// Offset is added to the placed position before scroll correction. Nil
	// means DefaultOffset.
	Offset *Offset
	// WidthMode controls the published width. Empty means WidthAuto.
	WidthMode WidthMode
	// ZIndex is copied into every PositionResult. Zero means DefaultZIndex.
	ZIndex int

	// OnClose is invoked on Escape or an outside pointer-down while open.
	// When nil, those interactions do nothing.
	OnClose func()
	// OnPosition receives every newly computed result.
	OnPosition func(PositionResult)
	// Dismiss disables individual dismissal triggers.
	Dismiss DismissOptions

	// Logger receives debug diagnostics. Nil disables logging.
	Logger *logger.Logger
}

// DefaultOptions returns the engine defaults: bottom placement, an (0, 8)
// offset, auto width and DefaultZIndex.
func DefaultOptions() Options {
	return Options{}.WithDefaults()
}

// WithDefaults fills every unset geometry option with its default. The
// returned Offset never aliases the receiver's.
func (o Options) WithDefaults() Options {
	if o.Placement == "" {
		o.Placement = DefaultPlacement
	}
	if o.WidthMode == "" {
		o.WidthMode = WidthAuto
	}
	offset := DefaultOffset
	if o.Offset != nil {
		offset = *o.Offset
	}
	o.Offset = &offset
	if o.ZIndex == 0 {
		o.ZIndex = DefaultZIndex
	}
	return o
}
