package piewheel

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to the standard library color type used by Ebitengine fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or offset in screen coordinates. The origin is at the
// top-left with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Canvas is the current drawable area in device pixels. It changes only in
// response to a Resize event; every change invalidates all derived layout.
type Canvas struct {
	Width, Height int
}

// Center returns the canvas midpoint, the origin of all wedge geometry.
func (c Canvas) Center() Vec2 {
	return Vec2{X: float64(c.Width) / 2, Y: float64(c.Height) / 2}
}

// Contains reports whether the point lies inside the canvas.
func (c Canvas) Contains(x, y float64) bool {
	return x >= 0 && x < float64(c.Width) && y >= 0 && y < float64(c.Height)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// Key identifies a normalized key symbol delivered in a KeyPress event.
// Only the cancel keys are modeled; hosts map everything else to KeyOther.
type Key uint8

const (
	KeyOther  Key = iota // any key the menu does not react to
	KeyEscape            // cancel
	KeyQ                 // cancel (either case)
)

// Phase is the session lifecycle state. PhaseSelected and PhaseCancelled are
// terminal: once reached, further events are ignored.
type Phase uint8

const (
	PhaseRunning   Phase = iota // session is live and consuming events
	PhaseSelected               // a wedge was chosen on button release
	PhaseCancelled              // cancel key or window close
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseSelected:
		return "selected"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// whiteSubImage is a 1x1 white region used as the source texture for solid
// triangle fills. The interior sub-image of a 3x3 avoids edge bleeding when
// anti-aliasing samples neighboring texels.
var whiteSubImage *ebiten.Image

func init() {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}
