// Package piewheel is a fullscreen circular ("pie") selection menu for
// [Ebitengine].
//
// Given an ordered list of text labels, piewheel paints a fullscreen circle
// divided into one wedge per label, highlights the wedge under the pointer,
// and resolves to exactly one outcome: the label under the primary-button
// release, or cancellation (Escape, Q, or window close).
//
// # Quick start
//
// The simplest way to use piewheel is [Run], which creates a fullscreen
// window and event loop for you:
//
//	menu, _ := piewheel.NewMenu([]string{"One", "Two", "Three"})
//	renderer, _ := piewheel.NewRenderer(piewheel.RendererOptions{})
//	defer renderer.Close()
//	session := piewheel.NewSession(menu, piewheel.Canvas{Width: 1920, Height: 1080}, renderer, nil)
//	piewheel.Run(session, renderer, piewheel.RunConfig{Title: "piewheel", Fullscreen: true})
//	if label, ok := session.Selected(); ok {
//		fmt.Println(label)
//	}
//
// For full control, feed [Session.HandleEvent] a stream of [Event] values
// yourself and present frames with [Renderer.Present].
//
// # Architecture
//
// Three layers, each depending only on the one below it: pure wedge
// geometry ([WedgeIndexAt], [RayDistanceToEdge], [FitFontSize]), the
// render pipeline ([Renderer], which composes each frame into an offscreen
// buffer and presents it atomically), and the interaction state machine
// ([Session], which consumes events and drives rendering). The geometry
// layer has no state and the session owns all mutable state, so the whole
// interaction can be tested without a display.
//
// [Ebitengine]: https://ebitengine.org
package piewheel
