package piewheel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window for [Run].
type RunConfig struct {
	Title      string
	Fullscreen bool

	// Width and Height size the window when Fullscreen is false. Ignored
	// otherwise.
	Width  int
	Height int

	Logger *slog.Logger
}

// Run opens the window and drives the session until it reaches a terminal
// state or the window is closed. It owns the event loop: platform input is
// translated into [Event] values, each applied to the session before the
// next is read. Returns nil on a normal finish, including cancellation.
//
// Run must be called from the main goroutine.
func Run(session *Session, renderer *Renderer, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	} else if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	// Route the close button through the session so it cancels cleanly
	// instead of tearing the window down mid-frame.
	ebiten.SetWindowClosingHandled(true)

	g := &game{
		session:  session,
		renderer: renderer,
		logger:   ensureLogger(cfg.Logger),
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("piewheel: event loop failed: %w", err)
	}
	return nil
}

// game adapts the session and renderer to Ebitengine's Game interface.
type game struct {
	session  *Session
	renderer *Renderer
	logger   *slog.Logger

	exposed    bool
	haveCursor bool
	cursorX    int
	cursorY    int
	width      int
	height     int
}

func (g *game) Update() error {
	// First tick after the window maps: request the initial frame.
	if !g.exposed {
		g.exposed = true
		g.session.HandleEvent(Expose{})
	}

	if ebiten.IsWindowBeingClosed() {
		g.session.HandleEvent(CloseRequested{})
	}

	x, y := ebiten.CursorPosition()
	if !g.haveCursor || x != g.cursorX || y != g.cursorY {
		g.haveCursor = true
		g.cursorX, g.cursorY = x, y
		g.session.HandleEvent(PointerMove{X: float64(x), Y: float64(y)})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.HandleEvent(ButtonPress{Button: MouseButtonLeft, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.HandleEvent(ButtonRelease{Button: MouseButtonLeft, X: float64(x), Y: float64(y)})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.HandleEvent(KeyPress{Key: KeyEscape})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.session.HandleEvent(KeyPress{Key: KeyQ})
	}

	g.renderer.Advance(1.0 / float64(ebiten.TPS()))

	if g.session.Done() {
		g.logger.Debug("session finished", "phase", g.session.Phase())
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Present(screen)
}

// Layout reports the logical screen size and feeds size changes to the
// session as Resize events, so every pixel of the window is menu surface.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.HandleEvent(Resize{Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}
