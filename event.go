package piewheel

// Event is the closed set of normalized input and window events a Session
// consumes. Hosts translate their native event system into these variants;
// the session dispatches on the concrete type in a single switch and treats
// any variant it does not recognize as a no-op, so adding variants never
// breaks existing state machines.
type Event interface {
	isEvent()
}

// Expose signals that the window contents were invalidated and must be
// redrawn. Carries no state change.
type Expose struct{}

// PointerMove reports the pointer at screen position (X, Y).
type PointerMove struct {
	X, Y float64
}

// ButtonPress reports a mouse button going down at (X, Y). Only the primary
// button is actionable; others are ignored.
type ButtonPress struct {
	Button MouseButton
	X, Y   float64
}

// ButtonRelease reports a mouse button going up at (X, Y). A primary-button
// release over a wedge confirms the selection.
type ButtonRelease struct {
	Button MouseButton
	X, Y   float64
}

// KeyPress reports a normalized key symbol. Only the cancel keys (Escape, Q)
// are actionable.
type KeyPress struct {
	Key Key
}

// Resize reports a new canvas size in device pixels.
type Resize struct {
	Width, Height int
}

// CloseRequested reports that the host window system asked the window to
// close. Treated as cancellation.
type CloseRequested struct{}

func (Expose) isEvent()         {}
func (PointerMove) isEvent()    {}
func (ButtonPress) isEvent()    {}
func (ButtonRelease) isEvent()  {}
func (KeyPress) isEvent()       {}
func (Resize) isEvent()         {}
func (CloseRequested) isEvent() {}
