package piewheel

import (
	"testing"
	"time"
)

// --- hoverHighlight tests ---

func TestHoverHighlight_SnapWithoutDuration(t *testing.T) {
	hh := newHoverHighlight(0)

	hh.retarget(2)
	if hh.tween != nil {
		t.Error("zero-duration highlight started a tween")
	}
	if hh.current() != wedgeHoverValue {
		t.Errorf("current() = %v, want %v (snap)", hh.current(), wedgeHoverValue)
	}
}

func TestHoverHighlight_EasesToFullBrightness(t *testing.T) {
	hh := newHoverHighlight(100 * time.Millisecond)

	hh.retarget(1)
	if hh.current() != wedgeBaseValue {
		t.Errorf("current() = %v at ease start, want %v", hh.current(), wedgeBaseValue)
	}

	// Step in 10ms ticks; the ease must finish and settle exactly on the
	// hover brightness.
	prev := hh.current()
	for i := 0; i < 20; i++ {
		if !hh.advance(0.010) {
			break
		}
		if hh.current() < prev {
			t.Errorf("brightness regressed from %v to %v", prev, hh.current())
		}
		prev = hh.current()
	}
	if hh.current() != wedgeHoverValue {
		t.Errorf("current() = %v after easing, want %v", hh.current(), wedgeHoverValue)
	}
	if hh.advance(0.010) {
		t.Error("advance reported more frames needed after finishing")
	}
}

func TestHoverHighlight_RetargetSameIndexKeepsEase(t *testing.T) {
	hh := newHoverHighlight(100 * time.Millisecond)

	hh.retarget(1)
	hh.advance(0.010)
	mid := hh.current()

	hh.retarget(1)
	if hh.current() != mid {
		t.Errorf("retargeting the same wedge restarted the ease: %v -> %v", mid, hh.current())
	}
}

func TestHoverHighlight_RetargetNewIndexRestarts(t *testing.T) {
	hh := newHoverHighlight(100 * time.Millisecond)

	hh.retarget(1)
	for hh.advance(0.010) {
	}

	hh.retarget(3)
	if hh.current() != wedgeBaseValue {
		t.Errorf("current() = %v after moving to a new wedge, want %v", hh.current(), wedgeBaseValue)
	}
}

func TestHoverHighlight_RetargetNoneClears(t *testing.T) {
	hh := newHoverHighlight(100 * time.Millisecond)

	hh.retarget(1)
	hh.retarget(-1)
	if hh.tween != nil {
		t.Error("tween still running after hover left all wedges")
	}
	if hh.advance(0.010) {
		t.Error("advance reported frames needed with no hovered wedge")
	}
}
