package wicker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	doubleClickInterval = 0.35 // seconds between presses
	doubleClickSlop     = 4.0  // logical pixels of pointer wander allowed
)

// WindowingArea drives a WindowingState from ebiten input once per frame and
// draws the window frames. Pointer presses raise and drag windows, Alt turns
// any grab into a title-bar drag, Escape aborts an active drag, and
// double-clicking a title bar reports a collapse click on the window's
// handle.
type WindowingArea struct {
	State *WindowingState

	// Debug draws the live snap candidates and enables engine diagnostics.
	Debug bool

	frames map[WinID]*winFrameState

	prevDown     bool
	dragging     bool
	dragStartPos Vec2
	pressWin     WinID
	pressButton  buttonKind
	lastPress    float64
	lastPressPos Vec2
	lastPressWin WinID
	clock        float64
	cursor       CursorShape
}

// NewWindowingArea returns a windowing area with a fresh engine state.
func NewWindowingArea() *WindowingArea {
	return &WindowingArea{
		State:        NewWindowingState(),
		frames:       map[WinID]*winFrameState{},
		pressWin:     NoWin,
		lastPressWin: NoWin,
		lastPress:    -1,
	}
}

// Update runs one frame: area dimensions and display scale are pushed into
// the engine, unneeded windows are swept, pointer input is interpreted, and
// the cursor hint is applied. The returned context realizes windows for this
// frame.
func (a *WindowingArea) Update(areaW, areaH int) *WindowingContext {
	scale := ebiten.Monitor().DeviceScaleFactor()
	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyAltRight)
	cancel := ebiten.IsKeyPressed(ebiten.KeyEscape)
	dt := 1.0 / float64(ebiten.TPS())

	ctx := a.update(float64(areaW), float64(areaH), scale,
		Vec2{X: float64(mx), Y: float64(my)}, down, alt, cancel, dt)
	ebiten.SetCursorShape(a.cursor.EbitenCursorShape())
	return ctx
}

// update is the ebiten-free core of Update, separated so tests can feed
// synthetic input.
func (a *WindowingArea) update(areaW, areaH, scale float64, pointer Vec2, down, alt, cancel bool, dt float64) *WindowingContext {
	a.clock += dt
	s := a.State
	s.SetDebug(a.Debug)
	s.SetDimensions(Vec2{X: areaW, Y: areaH}, scale)
	s.SweepUnneeded()
	a.pruneFrames()
	s.EnsureAllWinInArea()
	if cancel && a.dragging {
		s.WinDragEnd(true)
		a.dragging = false
	}
	a.processPointer(pointer, down, alt)
	a.updateFrames(dt, pointer)
	a.cursor = a.cursorHint(pointer, alt)
	return &WindowingContext{area: a}
}

// processPointer runs the press/drag/release state machine for the primary
// pointer.
func (a *WindowingArea) processPointer(pos Vec2, down, alt bool) {
	s := a.State
	switch {
	case down && !a.prevDown:
		a.handlePress(pos, alt)
	case down && a.prevDown:
		if a.dragging {
			s.WinDragUpdate(Vec2{X: pos.X - a.dragStartPos.X, Y: pos.Y - a.dragStartPos.Y})
		}
	case !down && a.prevDown:
		a.handleRelease(pos)
	}
	a.prevDown = down
}

func (a *WindowingArea) handlePress(pos Vec2, alt bool) {
	s := a.State
	id, ht := s.WinHitTest(pos)
	if ht == HitNone {
		a.pressWin, a.pressButton = NoWin, buttonNone
		a.lastPressWin = NoWin
		return
	}
	s.BringToTop(id)
	if alt {
		ht = HitTitleBarOrDragArea
	}
	switch {
	case !alt && a.buttonAt(id, pos) != buttonNone:
		// Title-bar buttons swallow the press; the click lands on release.
		a.pressWin, a.pressButton = id, a.buttonAt(id, pos)
	case ht == HitTitleBarOrDragArea && a.isDoubleClick(id, pos):
		a.frame(id).collapseClicks++
		a.pressWin, a.pressButton = NoWin, buttonNone
		a.lastPress = -1
		return
	case s.WinDragStart(id, ht):
		a.dragging = true
		a.dragStartPos = pos
		a.pressWin, a.pressButton = id, buttonNone
	default:
		a.pressWin, a.pressButton = NoWin, buttonNone
	}
	a.lastPress = a.clock
	a.lastPressPos = pos
	a.lastPressWin = id
}

func (a *WindowingArea) handleRelease(pos Vec2) {
	if a.dragging {
		a.State.WinDragEnd(false)
		a.dragging = false
	}
	if a.pressButton != buttonNone && a.pressWin != NoWin {
		if a.buttonAt(a.pressWin, pos) == a.pressButton {
			f := a.frame(a.pressWin)
			switch a.pressButton {
			case buttonCollapse:
				f.collapseClicks++
			case buttonClose:
				f.closeClicks++
			}
		}
	}
	a.pressWin, a.pressButton = NoWin, buttonNone
}

func (a *WindowingArea) isDoubleClick(id WinID, pos Vec2) bool {
	if a.lastPress < 0 || a.lastPressWin != id {
		return false
	}
	if a.clock-a.lastPress > doubleClickInterval {
		return false
	}
	dx := pos.X - a.lastPressPos.X
	dy := pos.Y - a.lastPressPos.Y
	return dx*dx+dy*dy <= doubleClickSlop*doubleClickSlop
}

// cursorHint picks the cursor shape for the frame: the active drag's region
// wins, otherwise the hovered region of the topmost window under the pointer.
func (a *WindowingArea) cursorHint(pos Vec2, alt bool) CursorShape {
	s := a.State
	if _, ht, ok := s.CurrentDraggingWin(); ok {
		return HitTestCursor(ht)
	}
	_, ht := s.WinHitTest(pos)
	if ht != HitNone && alt {
		ht = HitTitleBarOrDragArea
	}
	return HitTestCursor(ht)
}

// pruneFrames drops per-window chrome state for windows that were swept.
func (a *WindowingArea) pruneFrames() {
	for id := range a.frames {
		if !a.State.WinIsLive(id) {
			delete(a.frames, id)
		}
	}
}

// WindowingContext realizes windows for the current frame.
type WindowingContext struct {
	area *WindowingArea
}

// WindowHandle is the per-frame view of one window: where to place content,
// how to style chrome, and which title buttons were clicked since the last
// frame. Click counts are reported once; acting on them is the caller's job.
type WindowHandle struct {
	ID          WinID
	DisplayRect Rect
	ContentRect Rect
	ZOrder      int
	Collapsed   bool
	Focused     bool

	CollapseClicks int
	CloseClicks    int
}

// Window marks the window as needed, realizes it on first use with cfg, and
// returns its per-frame handle. A window the host stops requesting is
// destroyed at the next frame's sweep.
func (c *WindowingContext) Window(id WinID, title string, cfg WindowConfig) WindowHandle {
	a := c.area
	s := a.State
	s.SetNeeded(id)
	s.EnsureInit(id, func() WindowConfig { return cfg })
	f := a.frame(id)
	f.title = title

	disp, _ := s.WinDisplayRect(id)
	z, _ := s.WinZOrder(id)
	top, _ := s.TopmostWin()
	h := WindowHandle{
		ID:             id,
		DisplayRect:    disp,
		ContentRect:    a.contentRect(disp),
		ZOrder:         z,
		Collapsed:      s.WinIsCollapsed(id),
		Focused:        top == id,
		CollapseClicks: f.collapseClicks,
		CloseClicks:    f.closeClicks,
	}
	f.collapseClicks, f.closeClicks = 0, 0
	return h
}

// contentRect carves the content area out of a display rectangle: inside the
// borders, below the title bar and gap. Collapsed windows have no content.
func (a *WindowingArea) contentRect(disp Rect) Rect {
	m := a.State.Metrics()
	h := a.State.Hidpi()
	b := float64(m.BorderThickness) / h
	top := (float64(m.BorderThickness+m.TitleBarHeight+m.TitleBarGap)) / h
	r := Rect{
		X: disp.X + b,
		Y: disp.Y + top,
		W: disp.W - 2*b,
		H: disp.H - top - b,
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}
