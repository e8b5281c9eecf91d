// Package wicker is a floating-window layout manager for [Ebitengine].
//
// Wicker manages a collection of draggable, resizable, collapsible,
// overlapping windows inside a single drawing region, like a minimal desktop
// window manager operating purely in 2D layout space. It tracks each
// window's rectangle, z-order, collapsed/hidden status, drag and resize
// interaction, pixel-grid snapping, and edge and window-to-window snapping
// during drags. Window content is opaque to the engine; the host draws it
// into the content rectangle each window handle reports.
//
// # Quick start
//
// The simplest way in is [WindowingArea], which reads ebiten input and
// drives the engine once per frame:
//
//	type Game struct {
//		area *wicker.WindowingArea
//		logWin wicker.WinID
//	}
//
//	func (g *Game) Update() error {
//		ctx := g.area.Update(640, 480)
//		win := ctx.Window(g.logWin, "Log", wicker.WindowConfig{
//			ClientSize: wicker.Vec2{X: 200, Y: 120},
//		})
//		if win.CollapseClicks > 0 {
//			g.area.State.SetWinCollapsed(g.logWin, !win.Collapsed)
//		}
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.area.Draw(screen) }
//
// Allocate window ids once with [WindowingState.NextID] and ask for each
// window every frame; windows the host stops asking for are swept
// automatically.
//
// # Engine only
//
// For full control, use [WindowingState] directly: it has no opinion about
// input or rendering and is driven by plain calls ([WindowingState.WinDragStart],
// [WindowingState.WinDragUpdate], [WindowingState.SetDimensions], ...).
// All engine state is in-memory and single-threaded; every mutating
// operation is total: stale window ids are ignored, never fatal.
//
// [Ebitengine]: https://ebitengine.org
package wicker
