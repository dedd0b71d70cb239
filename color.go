package piewheel

import "math"

// Wedge palette parameters. Hue advances with the wedge index so adjacent
// wedges are visually distinct and the coloring of a frame is a pure
// function of (index, count, hovered).
const (
	wedgeSaturation = 0.55
	wedgeBaseValue  = 0.62 // brightness of an idle wedge
	wedgeHoverValue = 0.85 // brightness of the hovered wedge
)

var (
	backgroundColor = Color{R: 0.08, G: 0.08, B: 0.10, A: 1}
	shadowColor     = Color{R: 0.05, G: 0.05, B: 0.07, A: 1}
	labelColor      = Color{R: 1, G: 1, B: 1, A: 1}
	noEntriesColor  = Color{R: 0.9, G: 0.2, B: 0.2, A: 1}
)

// shadowOffset is the displacement of the dark label copy drawn behind the
// white fill, in pixels.
const shadowOffset = 1.5

// wedgeColor returns the fill color for wedge i of n at the given brightness.
// Hue is i/n, so hue order ascends with the index and repeated frames for
// identical state are identical.
func wedgeColor(i, n int, value float64) Color {
	r, g, b := hsvToRGB(float64(i)/float64(n), wedgeSaturation, value)
	return Color{R: r, G: g, B: b, A: 1}
}

// hsvToRGB converts an HSV triple (all components in [0, 1], hue wrapping)
// to RGB.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s <= 0 {
		return v, v, v
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
