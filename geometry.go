package piewheel

import "math"

// Wedge geometry. All functions here are pure: hit-testing runs on every
// pointer-motion event, so everything is closed-form angle math or a bounded
// binary search, with no cached state to invalidate.

// WedgeSpan returns the angular span [a0, a1) of wedge i of n, measured in
// radians from the positive x-axis, increasing clockwise in screen
// coordinates (Y grows downward).
func WedgeSpan(i, n int) (a0, a1 float64) {
	step := 2 * math.Pi / float64(n)
	return step * float64(i), step * float64(i+1)
}

// WedgeIndexAt maps the point (x, y) on a w×h canvas to the index of the
// wedge it falls in, for a menu of n wedges centered on the canvas.
// Returns -1 only when n <= 0.
//
// The exact center is not an error: math.Atan2(0, 0) is 0, so the center
// deterministically maps to wedge 0. Points outside the canvas still resolve
// to the wedge whose angular span contains them.
func WedgeIndexAt(n, w, h int, x, y float64) int {
	if n <= 0 {
		return -1
	}
	cx, cy := float64(w)/2, float64(h)/2
	ang := math.Atan2(y-cy, x-cx)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	step := 2 * math.Pi / float64(n)
	idx := int(math.Floor(ang / step))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// RayDistanceToEdge casts a ray from (cx, cy) at the given angle and returns
// the distance to whichever of the four canvas edges it exits through first.
// Rays parallel to an edge ignore that edge's intersection. Returns 0 when no
// finite positive intersection exists, such as a center outside the canvas.
func RayDistanceToEdge(w, h int, cx, cy, angle float64) float64 {
	dx, dy := math.Cos(angle), math.Sin(angle)
	fw, fh := float64(w), float64(h)

	tx := math.Inf(1)
	if math.Abs(dx) > 1e-9 {
		t1 := (0 - cx) / dx
		if y := cy + t1*dy; t1 > 0 && y >= 0 && y <= fh {
			tx = t1
		}
		t2 := (fw - cx) / dx
		if y := cy + t2*dy; t2 > 0 && y >= 0 && y <= fh {
			tx = math.Min(tx, t2)
		}
	}

	ty := math.Inf(1)
	if math.Abs(dy) > 1e-9 {
		t3 := (0 - cy) / dy
		if x := cx + t3*dx; t3 > 0 && x >= 0 && x <= fw {
			ty = t3
		}
		t4 := (fh - cy) / dy
		if x := cx + t4*dx; t4 > 0 && x >= 0 && x <= fw {
			ty = math.Min(ty, t4)
		}
	}

	t := math.Min(tx, ty)
	if math.IsInf(t, 0) || t <= 0 {
		return 0
	}
	return t
}

// MeasureFunc maps a trial font size to the rendered width and height of a
// string. Measurements must be non-decreasing in size; if they are not,
// FitFontSize results are merely approximate, not wrong.
type MeasureFunc func(text string, size float64) (w, h float64)

// fitFontIterations bounds the binary search. 20 halvings resolve the size
// to well under a tenth of a pixel for any screen-scale box.
const fitFontIterations = 20

// FitFontSize returns the largest font size in [1, max(1, min(maxW, maxH))]
// whose measured bounding box for text fits within maxW×maxH.
func FitFontSize(measure MeasureFunc, text string, maxW, maxH float64) float64 {
	lo := 1.0
	hi := math.Max(1, math.Min(maxW, maxH))
	for it := 0; it < fitFontIterations; it++ {
		mid := (lo + hi) / 2
		w, h := measure(text, mid)
		if w <= maxW && h <= maxH {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Label layout parameters, matching the wedge fill proportions.
const (
	minLabelRadius = 10.0 // anchor floor so thin wedges still get a visible label
	minLabelWidth  = 20.0
	labelMargin    = 0.9 // chord width scaled down for breathing room
	edgeClampScale = 1.8 // width cap: twice 0.9 of the nearest-edge distance
	labelHeightMax = 0.6 // height cap as a fraction of the anchor radius
)

// LabelLayout is the computed placement for one wedge's text: the anchor the
// label is centered on and the box the font must fit in.
type LabelLayout struct {
	Anchor    Vec2
	MaxWidth  float64
	MaxHeight float64
}

// WedgeLabelLayout computes the label placement for wedge i of n on a w×h
// canvas. The anchor sits at the wedge's angular midpoint, halfway to the
// canvas edge; the width budget comes from the chord length at that radius,
// clamped by the distance to the nearest canvas edge so text is never pushed
// off-screen.
func WedgeLabelLayout(w, h, i, n int) LabelLayout {
	a0, a1 := WedgeSpan(i, n)
	amid := (a0 + a1) / 2
	cx, cy := float64(w)/2, float64(h)/2

	edge := RayDistanceToEdge(w, h, cx, cy, amid)
	radius := math.Max(minLabelRadius, edge/2)
	px := cx + radius*math.Cos(amid)
	py := cy + radius*math.Sin(amid)

	step := 2 * math.Pi / float64(n)
	availW := math.Max(minLabelWidth, labelMargin*2*radius*math.Sin(step/2))
	distX := math.Min(px, float64(w)-px)
	distY := math.Min(py, float64(h)-py)
	availW = math.Min(availW, edgeClampScale*math.Min(distX, distY))
	availH := math.Min(availW, labelHeightMax*radius)

	return LabelLayout{
		Anchor:    Vec2{X: px, Y: py},
		MaxWidth:  availW,
		MaxHeight: availH,
	}
}
