package piewheel

import (
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RendererOptions configures a Renderer.
type RendererOptions struct {
	// Font used for label measurement and drawing. Nil selects the
	// embedded Go Bold face.
	Font Font

	// HoverEase is the duration over which the hovered wedge's highlight
	// brightens. Zero disables easing: the highlight snaps, and every
	// frame is a pure function of session state.
	HoverEase time.Duration

	// Logger receives per-frame diagnostics at debug level. Nil discards.
	Logger *slog.Logger
}

// Renderer composes complete frames into an offscreen buffer and presents
// them to the visible screen as a single atomic copy, so a partially drawn
// frame is never visible. The buffer is sized to the canvas and recreated
// whenever the canvas changes; no layout survives a resize.
//
// Renderer implements [FrameRenderer].
type Renderer struct {
	font      Font
	logger    *slog.Logger
	highlight *hoverHighlight

	buffer  *ebiten.Image
	bufSize Canvas

	// Snapshot of the last rendered state, redrawn while the hover ease
	// is animating.
	lastCanvas Canvas
	lastMenu   *Menu
	lastHover  int
	hasFrame   bool

	// Reused triangle buffers for wedge fills.
	verts []ebiten.Vertex
	inds  []uint16
}

// NewRenderer creates a renderer. The only failure mode is font parsing;
// callers treat it as fatal.
func NewRenderer(opts RendererOptions) (*Renderer, error) {
	font := opts.Font
	if font == nil {
		f, err := DefaultFont()
		if err != nil {
			return nil, err
		}
		font = f
	}
	return &Renderer{
		font:      font,
		logger:    ensureLogger(opts.Logger),
		highlight: newHoverHighlight(opts.HoverEase),
		lastHover: -1,
	}, nil
}

// RenderFrame composes a complete frame for the given state into the
// offscreen buffer. The state is snapshotted first, so nothing mutated by
// the caller mid-frame can tear the picture.
func (r *Renderer) RenderFrame(canvas Canvas, menu *Menu, hoverIndex int) {
	r.lastCanvas = canvas
	r.lastMenu = menu
	r.lastHover = hoverIndex
	r.hasFrame = true
	r.highlight.retarget(hoverIndex)
	r.draw()
}

// Advance steps the hover-highlight ease by dt seconds and redraws the last
// frame when the ease is active. Returns true while more frames are needed.
// Hosts call this once per tick; with easing disabled it is a no-op.
func (r *Renderer) Advance(dt float64) bool {
	if !r.hasFrame || r.highlight.tween == nil {
		return false
	}
	animating := r.highlight.advance(dt)
	r.draw()
	return animating
}

// Present copies the offscreen buffer to the visible screen. BlendCopy makes
// the blit a plain source copy, the same contract as presenting a back
// buffer.
func (r *Renderer) Present(screen *ebiten.Image) {
	if r.buffer == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendCopy
	screen.DrawImage(r.buffer, op)
}

// Close releases the offscreen buffer. Safe to call more than once; the
// session teardown sequence calls it exactly once on every exit path.
func (r *Renderer) Close() {
	if r.buffer != nil {
		r.buffer.Deallocate()
		r.buffer = nil
	}
	r.bufSize = Canvas{}
	r.hasFrame = false
}

// ensureBuffer (re)allocates the offscreen buffer to match the canvas.
// Allocation failure panics inside Ebitengine; there is no degraded-rendering
// fallback.
func (r *Renderer) ensureBuffer(canvas Canvas) bool {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return false
	}
	if r.buffer != nil && r.bufSize == canvas {
		return true
	}
	if r.buffer != nil {
		r.buffer.Deallocate()
	}
	r.buffer = ebiten.NewImage(canvas.Width, canvas.Height)
	r.bufSize = canvas
	r.logger.Debug("offscreen buffer recreated", "width", canvas.Width, "height", canvas.Height)
	return true
}

// draw renders the snapshotted state into the offscreen buffer.
func (r *Renderer) draw() {
	canvas := r.lastCanvas
	if !r.ensureBuffer(canvas) {
		return
	}
	t0 := time.Now()

	r.buffer.Fill(backgroundColor.toRGBA())

	n := r.lastMenu.Len()
	if n == 0 {
		// Defensive path: the session never reaches render with an empty
		// menu, but a broken host should see a message, not a crash.
		r.drawNoEntries(canvas)
		logFrame(r.logger, frameStats{width: canvas.Width, height: canvas.Height, elapsed: time.Since(t0)})
		return
	}

	cx, cy := canvas.Center().X, canvas.Center().Y
	// Radius past every corner so the arc always exits the canvas and the
	// wedge fills to the edges without exact corner geometry.
	radius := math.Hypot(float64(canvas.Width), float64(canvas.Height))

	for i := 0; i < n; i++ {
		a0, a1 := WedgeSpan(i, n)
		value := wedgeBaseValue
		if i == r.lastHover {
			value = r.highlight.current()
		}
		r.fillWedge(cx, cy, radius, a0, a1, wedgeColor(i, n, value))
		r.drawLabel(canvas, i, n, r.lastMenu.Label(i))
	}

	logFrame(r.logger, frameStats{
		wedges:  n,
		width:   canvas.Width,
		height:  canvas.Height,
		elapsed: time.Since(t0),
	})
}

// fillWedge fills one pie slice: center, out to the start angle, arc to the
// end angle, back to center.
func (r *Renderer) fillWedge(cx, cy, radius, a0, a1 float64, c Color) {
	var p vector.Path
	p.MoveTo(float32(cx), float32(cy))
	p.LineTo(float32(cx+radius*math.Cos(a0)), float32(cy+radius*math.Sin(a0)))
	p.Arc(float32(cx), float32(cy), float32(radius), float32(a0), float32(a1), vector.Clockwise)
	p.Close()

	r.verts, r.inds = p.AppendVerticesAndIndicesForFilling(r.verts[:0], r.inds[:0])
	for i := range r.verts {
		r.verts[i].SrcX = 1
		r.verts[i].SrcY = 1
		r.verts[i].ColorR = float32(c.R)
		r.verts[i].ColorG = float32(c.G)
		r.verts[i].ColorB = float32(c.B)
		r.verts[i].ColorA = float32(c.A)
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	r.buffer.DrawTriangles(r.verts, r.inds, whiteSubImage, op)
}

// drawLabel fits and draws one wedge's label, shadow first, centered on the
// wedge's anchor point.
func (r *Renderer) drawLabel(canvas Canvas, i, n int, label string) {
	layout := WedgeLabelLayout(canvas.Width, canvas.Height, i, n)
	size := FitFontSize(r.font.Measure, label, layout.MaxWidth, layout.MaxHeight)
	w, h := r.font.Measure(label, size)
	x := layout.Anchor.X - w/2
	y := layout.Anchor.Y - h/2
	r.drawText(label, size, x, y)
}

// drawNoEntries paints a centered message sized to 8% of the smaller canvas
// dimension.
func (r *Renderer) drawNoEntries(canvas Canvas) {
	const msg = "No entries."
	size := 0.08 * math.Min(float64(canvas.Width), float64(canvas.Height))
	if size < 1 {
		size = 1
	}
	w, h := r.font.Measure(msg, size)
	x := canvas.Center().X - w/2
	y := canvas.Center().Y - h/2

	f, ok := r.font.(*GoTextFont)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(noEntriesColor.R), float32(noEntriesColor.G), float32(noEntriesColor.B), float32(noEntriesColor.A))
	text.Draw(r.buffer, msg, f.face(size), op)
}

// drawText draws a shadow copy then a white copy of s at (x, y). Fonts that
// only measure (test fakes) draw nothing.
func (r *Renderer) drawText(s string, size, x, y float64) {
	f, ok := r.font.(*GoTextFont)
	if !ok {
		return
	}
	face := f.face(size)

	shadow := &text.DrawOptions{}
	shadow.GeoM.Translate(x+shadowOffset, y+shadowOffset)
	shadow.ColorScale.Scale(float32(shadowColor.R), float32(shadowColor.G), float32(shadowColor.B), float32(shadowColor.A))
	text.Draw(r.buffer, s, face, shadow)

	fill := &text.DrawOptions{}
	fill.GeoM.Translate(x, y)
	fill.ColorScale.Scale(float32(labelColor.R), float32(labelColor.G), float32(labelColor.B), float32(labelColor.A))
	text.Draw(r.buffer, s, face, fill)
}
