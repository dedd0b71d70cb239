package piewheel

import "log/slog"

// FrameRenderer is the narrow surface the session drives. The production
// implementation is [Renderer]; tests substitute a recording fake to count
// and inspect render calls.
type FrameRenderer interface {
	// RenderFrame composes and presents a complete frame for the given
	// state. hoverIndex is -1 when no wedge is hovered.
	RenderFrame(canvas Canvas, menu *Menu, hoverIndex int)
}

// Session is the interaction state machine for one run of the menu. It owns
// all mutable state, consumes a serialized event stream via HandleEvent, and
// invokes the renderer on every state change that affects the picture.
//
// A session is single-threaded by design: the host loop processes one event
// fully (state update plus optional synchronous render) before fetching the
// next, so hover feedback can never lag behind the input that produced it.
// No method is safe to call concurrently with another on the same Session.
type Session struct {
	menu     *Menu
	canvas   Canvas
	renderer FrameRenderer
	logger   *slog.Logger

	hoverIndex int
	pressIndex int
	phase      Phase
	selected   int
}

// NewSession creates a session in PhaseRunning with no hovered wedge.
// renderer may be nil (no frames are produced); logger may be nil
// (diagnostics are discarded).
func NewSession(menu *Menu, canvas Canvas, renderer FrameRenderer, logger *slog.Logger) *Session {
	return &Session{
		menu:       menu,
		canvas:     canvas,
		renderer:   renderer,
		logger:     ensureLogger(logger),
		hoverIndex: -1,
		pressIndex: -1,
		selected:   -1,
	}
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Done reports whether the session has reached a terminal state.
func (s *Session) Done() bool {
	return s.phase != PhaseRunning
}

// Selected returns the chosen label. ok is false unless the session ended
// in PhaseSelected.
func (s *Session) Selected() (label string, ok bool) {
	if s.phase != PhaseSelected {
		return "", false
	}
	return s.menu.Label(s.selected), true
}

// SelectedIndex returns the chosen wedge index, or -1.
func (s *Session) SelectedIndex() int {
	if s.phase != PhaseSelected {
		return -1
	}
	return s.selected
}

// HoverIndex returns the wedge currently under the pointer, or -1.
func (s *Session) HoverIndex() int {
	return s.hoverIndex
}

// Canvas returns the current canvas dimensions.
func (s *Session) Canvas() Canvas {
	return s.canvas
}

// HandleEvent applies one event to the session. Events arriving after the
// session is terminal are ignored. Unknown event variants are ignored
// silently.
func (s *Session) HandleEvent(ev Event) {
	if s.phase != PhaseRunning {
		return
	}

	switch e := ev.(type) {
	case Expose:
		s.render()

	case PointerMove:
		idx := WedgeIndexAt(s.menu.Len(), s.canvas.Width, s.canvas.Height, e.X, e.Y)
		if idx != s.hoverIndex {
			s.logger.Debug("hover changed", "from", s.hoverIndex, "to", idx, "x", e.X, "y", e.Y)
			s.hoverIndex = idx
			s.render()
		}

	case ButtonPress:
		if e.Button != MouseButtonLeft {
			return
		}
		// Bookkeeping only: selection is keyed to the release location.
		s.pressIndex = WedgeIndexAt(s.menu.Len(), s.canvas.Width, s.canvas.Height, e.X, e.Y)
		s.logger.Debug("press", "index", s.pressIndex, "x", e.X, "y", e.Y)

	case ButtonRelease:
		if e.Button != MouseButtonLeft {
			return
		}
		idx := WedgeIndexAt(s.menu.Len(), s.canvas.Width, s.canvas.Height, e.X, e.Y)
		s.logger.Debug("release", "index", idx, "pressed", s.pressIndex, "x", e.X, "y", e.Y)
		if idx >= 0 && idx < s.menu.Len() {
			s.selected = idx
			s.phase = PhaseSelected
			s.logger.Debug("selected", "index", idx, "label", s.menu.Label(idx))
		}
		s.pressIndex = -1

	case KeyPress:
		if e.Key == KeyEscape || e.Key == KeyQ {
			s.logger.Debug("cancelled", "key", e.Key)
			s.phase = PhaseCancelled
		}

	case Resize:
		if e.Width == s.canvas.Width && e.Height == s.canvas.Height {
			return
		}
		s.logger.Debug("resize", "width", e.Width, "height", e.Height)
		s.canvas = Canvas{Width: e.Width, Height: e.Height}
		s.render()

	case CloseRequested:
		s.logger.Debug("close requested")
		s.phase = PhaseCancelled

	default:
		// Unknown variant: forward compatibility, not an error.
	}
}

func (s *Session) render() {
	if s.renderer == nil {
		return
	}
	s.renderer.RenderFrame(s.canvas, s.menu, s.hoverIndex)
}
