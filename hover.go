package piewheel

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// hoverHighlight eases the hovered wedge's brightness from the idle value to
// the highlight value each time the hover moves to a new wedge. It is
// renderer-local state: the session never sees it, so session-driven render
// counts and settled-frame determinism are unaffected.
//
// A zero duration disables easing: the highlight snaps to full brightness
// and frames are a pure function of session state.
type hoverHighlight struct {
	duration float32 // seconds; <= 0 means snap
	index    int     // wedge the current ease applies to
	tween    *gween.Tween
	value    float64 // current brightness of the hovered wedge
}

func newHoverHighlight(d time.Duration) *hoverHighlight {
	return &hoverHighlight{
		duration: float32(d.Seconds()),
		index:    -1,
		value:    wedgeHoverValue,
	}
}

// retarget restarts the ease when the hovered wedge changes. Moving to no
// wedge (-1) clears any running ease.
func (hh *hoverHighlight) retarget(index int) {
	if index == hh.index {
		return
	}
	hh.index = index
	if index < 0 || hh.duration <= 0 {
		hh.tween = nil
		hh.value = wedgeHoverValue
		return
	}
	hh.tween = gween.New(float32(wedgeBaseValue), float32(wedgeHoverValue), hh.duration, ease.OutQuad)
	hh.value = wedgeBaseValue
}

// advance steps a running ease by dt seconds and reports whether another
// frame is needed.
func (hh *hoverHighlight) advance(dt float64) bool {
	if hh.tween == nil {
		return false
	}
	v, finished := hh.tween.Update(float32(dt))
	hh.value = float64(v)
	if finished {
		hh.tween = nil
		hh.value = wedgeHoverValue
		return false
	}
	return true
}

// current returns the brightness to paint the hovered wedge with.
func (hh *hoverHighlight) current() float64 {
	return hh.value
}
