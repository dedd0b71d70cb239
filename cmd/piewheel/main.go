// Command piewheel reads menu entries from stdin, shows a fullscreen pie
// menu, and prints the chosen entry to stdout.
//
// Exit status is 0 when an entry was selected and 1 when the menu was
// cancelled or stdin held no entries. Set DEBUG to a non-empty value other
// than "0" for diagnostics on stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/piewheel"
)

const hoverEase = 120 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = usage
	flag.Parse()

	logger := newLogger()

	entries, err := piewheel.ReadEntries(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "piewheel:", err)
		return 1
	}
	menu, err := piewheel.NewMenu(entries)
	if err != nil {
		if errors.Is(err, piewheel.ErrNoEntries) {
			fmt.Fprintln(os.Stderr, "piewheel: no entries on stdin")
			return 1
		}
		fmt.Fprintln(os.Stderr, "piewheel:", err)
		return 1
	}

	renderer, err := piewheel.NewRenderer(piewheel.RendererOptions{
		HoverEase: hoverEase,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "piewheel:", err)
		return 1
	}
	defer renderer.Close()

	// Initial canvas matches the fullscreen size; the window reports the
	// real dimensions through resize events once it maps.
	w, h := ebiten.ScreenSizeInFullscreen()
	session := piewheel.NewSession(menu, piewheel.Canvas{Width: w, Height: h}, renderer, logger)

	err = piewheel.Run(session, renderer, piewheel.RunConfig{
		Title:      "piewheel",
		Fullscreen: true,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "piewheel:", err)
		return 1
	}

	if label, ok := session.Selected(); ok {
		fmt.Println(label)
		return 0
	}
	return 1
}

// newLogger returns a stderr debug logger when DEBUG is set, otherwise nil
// (the library discards diagnostics for a nil logger).
func newLogger() *slog.Logger {
	v := os.Getenv("DEBUG")
	if v == "" || v == "0" {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: piewheel [-h]

Reads newline-separated entries from stdin, shows a fullscreen pie menu,
and prints the selected entry to stdout.

Click an entry to select it. Press Escape or Q to cancel.

Exit status:
  0  an entry was selected
  1  cancelled, or no entries on stdin

Environment:
  DEBUG  set to a non-empty value other than "0" for diagnostics on stderr
`)
}
