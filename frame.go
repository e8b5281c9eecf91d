package wicker

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Classic frame palette.
var (
	frameBorderColor        = Color{R: 0.32, G: 0.34, B: 0.38, A: 1}
	frameBorderFocusedColor = Color{R: 0.45, G: 0.49, B: 0.58, A: 1}
	titleBarColor           = Color{R: 0.22, G: 0.23, B: 0.27, A: 1}
	titleBarFocusedColor    = Color{R: 0.16, G: 0.32, B: 0.55, A: 1}
	contentBackdropColor    = Color{R: 0.12, G: 0.12, B: 0.14, A: 1}
	buttonColor             = Color{R: 1, G: 1, B: 1, A: 0.15}
	buttonHighlightColor    = Color{R: 1, G: 1, B: 1, A: 0.45}
	buttonGlyphColor        = Color{R: 0.9, G: 0.9, B: 0.92, A: 1}
	snapOverlayColor        = Color{R: 1, G: 0.55, B: 0.1, A: 0.9}
)

const buttonFadeDuration = 0.15 // seconds

// buttonKind identifies a title-bar button.
type buttonKind uint8

const (
	buttonNone buttonKind = iota
	buttonCollapse
	buttonClose
)

// winFrameState is per-window chrome bookkeeping on the host side: pending
// button clicks and the hover highlight fade.
type winFrameState struct {
	title          string
	collapseClicks int
	closeClicks    int

	hover     buttonKind
	highlight float64
	fade      *gween.Tween
}

// frame returns (creating on demand) the chrome state for a window.
func (a *WindowingArea) frame(id WinID) *winFrameState {
	f := a.frames[id]
	if f == nil {
		f = &winFrameState{}
		a.frames[id] = f
	}
	return f
}

// buttonRect returns a title-bar button's rectangle in logical units.
// Buttons sit at the right end of the title bar: close outermost, collapse
// beside it.
func (a *WindowingArea) buttonRect(id WinID, kind buttonKind) (Rect, bool) {
	disp, ok := a.State.WinDisplayRect(id)
	if !ok {
		return Rect{}, false
	}
	m := a.State.Metrics()
	h := a.State.Hidpi()
	size := float64(m.ButtonSize) / h
	pad := float64(m.ButtonPad) / h
	b := float64(m.BorderThickness) / h
	tb := float64(m.TitleBarHeight) / h

	x := disp.X + disp.W - b - pad - size
	if kind == buttonCollapse {
		x -= size + pad
	}
	return Rect{X: x, Y: disp.Y + b + (tb-size)/2, W: size, H: size}, true
}

// buttonAt returns which title-bar button of the window contains pos.
func (a *WindowingArea) buttonAt(id WinID, pos Vec2) buttonKind {
	for _, kind := range [...]buttonKind{buttonCollapse, buttonClose} {
		if r, ok := a.buttonRect(id, kind); ok && r.Contains(pos.X, pos.Y) {
			return kind
		}
	}
	return buttonNone
}

// updateFrames advances hover fades and retargets them when the hovered
// button changes. Only the topmost window under the pointer can hover.
func (a *WindowingArea) updateFrames(dt float64, pointer Vec2) {
	hoverWin, hoverButton := NoWin, buttonNone
	if !a.dragging {
		if id, ht := a.State.WinHitTest(pointer); ht != HitNone {
			hoverWin, hoverButton = id, a.buttonAt(id, pointer)
		}
	}
	for id, f := range a.frames {
		target := buttonNone
		if id == hoverWin {
			target = hoverButton
		}
		if target != f.hover {
			f.hover = target
			to := 0.0
			if target != buttonNone {
				to = 1.0
			}
			f.fade = gween.New(float32(f.highlight), float32(to), buttonFadeDuration, ease.OutQuad)
		}
		if f.fade != nil {
			v, done := f.fade.Update(float32(dt))
			f.highlight = float64(v)
			if done {
				f.fade = nil
			}
		}
	}
}

// Draw paints every visible window frame bottom-to-top, then the snap
// overlay when Debug is enabled. Window content is drawn by the host into
// each handle's ContentRect after this.
func (a *WindowingArea) Draw(dst *ebiten.Image) {
	s := a.State
	top, _ := s.TopmostWin()
	for _, id := range s.BottomToTopWins() {
		if s.WinIsHidden(id) {
			continue
		}
		a.drawFrame(dst, id, id == top)
	}
	if a.Debug {
		a.drawSnapOverlay(dst)
	}
}

func (a *WindowingArea) drawFrame(dst *ebiten.Image, id WinID, focused bool) {
	s := a.State
	disp, ok := s.WinDisplayRect(id)
	if !ok {
		return
	}
	f := a.frame(id)
	m := s.Metrics()
	h := s.Hidpi()
	b := float64(m.BorderThickness) / h
	tb := float64(m.TitleBarHeight) / h

	border, title := frameBorderColor, titleBarColor
	if focused {
		border, title = frameBorderFocusedColor, titleBarFocusedColor
	}
	fillRect(dst, disp, border)
	fillRect(dst, Rect{X: disp.X + b, Y: disp.Y + b, W: disp.W - 2*b, H: tb}, title)
	if !s.WinIsCollapsed(id) {
		content := a.contentRect(disp)
		gap := float64(m.TitleBarGap) / h
		fillRect(dst, Rect{X: content.X, Y: content.Y - gap, W: content.W, H: content.H + gap}, contentBackdropColor)
	}
	ebitenutil.DebugPrintAt(dst, f.title, int(disp.X+b+4), int(disp.Y+b+(tb-16)/2))

	for _, kind := range [...]buttonKind{buttonCollapse, buttonClose} {
		r, ok := a.buttonRect(id, kind)
		if !ok {
			continue
		}
		c := buttonColor
		if f.hover == kind {
			c = mixColor(buttonColor, buttonHighlightColor, f.highlight)
		}
		fillRect(dst, r, c)
		switch kind {
		case buttonCollapse:
			// Horizontal bar.
			fillRect(dst, Rect{X: r.X + r.W*0.2, Y: r.Y + r.H/2 - 1, W: r.W * 0.6, H: 2}, buttonGlyphColor)
		case buttonClose:
			drawCross(dst, r, buttonGlyphColor)
		}
	}
}

// drawSnapOverlay renders the live drag's candidate snap lines.
func (a *WindowingArea) drawSnapOverlay(dst *ebiten.Image) {
	for _, seg := range a.State.SnapXSegments() {
		fillRect(dst, Rect{X: seg.X1, Y: seg.Y1, W: 1, H: seg.Y2 - seg.Y1}, snapOverlayColor)
	}
	for _, seg := range a.State.SnapYSegments() {
		fillRect(dst, Rect{X: seg.X1, Y: seg.Y1, W: seg.X2 - seg.X1, H: 1}, snapOverlayColor)
	}
}

// fillRect draws a solid rectangle by scaling WhitePixel.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.ToRGBA())
	dst.DrawImage(WhitePixel, &op)
}

// drawCross draws an X glyph centered in r using two rotated bars.
func drawCross(dst *ebiten.Image, r Rect, c Color) {
	length := r.W * 0.7
	for _, angle := range [...]float64{0.785398163, -0.785398163} { // ±45°
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(length, 2)
		op.GeoM.Translate(-length/2, -1)
		op.GeoM.Rotate(angle)
		op.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
		op.ColorScale.ScaleWithColor(c.ToRGBA())
		dst.DrawImage(WhitePixel, &op)
	}
}

// mixColor linearly interpolates between two colors.
func mixColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
