package wicker

// WinID is an opaque handle identifying a window slot. It is stable for the
// lifetime of the slot and may be reused after the slot is swept; callers
// must treat a freed id as invalid until it is reissued by NextID.
type WinID int32

// NoWin is the WinID returned when a lookup finds no window.
const NoWin WinID = -1

// WindowConfig describes a window on first realization. It is data-only;
// zero values mean "engine default".
type WindowConfig struct {
	// ClientSize is the requested content size in logical units. The total
	// window rectangle adds the frame chrome (borders, title bar, gap).
	ClientSize Vec2
	// Pos is the explicit top-left position in logical units. When nil the
	// window is auto-positioned on a cascading diagonal.
	Pos *Vec2
	// MinSize is the minimum content size. The engine enforces a derived
	// minimum total size (chrome included) during resizes.
	MinSize Vec2
	// Collapsed makes the window start collapsed.
	Collapsed bool
}

// windowState is one live window slot.
type windowState struct {
	rect        Rect // normal (non-collapsed) rectangle, logical units
	minSize     Vec2
	hidden      bool
	collapsed   bool
	needed      bool
	initialized bool
	anchorX     Anchor
	anchorY     Anchor
}

const autoPosStart = 8.0

// WindowingState is the central registry of window slots, z-order, and the
// drag session. It is purely in-memory and single-threaded: the host toolkit
// owns it exclusively and drives it once per frame. All mutating operations
// are total: stale or invalid ids are ignored rather than reported.
type WindowingState struct {
	windows     []*windowState // index = WinID; nil = free slot
	zOrders     []int          // index = WinID; inverse of bottomToTop
	bottomToTop []WinID        // z-order, last element is topmost

	areaSize Vec2
	hidpi    float64
	metrics  FrameMetrics

	dragging *draggingState

	autoPos     Vec2
	autoPosBase float64

	debug bool
}

// NewWindowingState returns an empty windowing state at scale factor 1.
func NewWindowingState() *WindowingState {
	return &WindowingState{
		hidpi:       1,
		metrics:     ComputeFrameMetrics(1),
		autoPos:     Vec2{X: autoPosStart, Y: autoPosStart},
		autoPosBase: autoPosStart,
	}
}

// slot returns the window slot whether or not it has been initialized.
func (s *WindowingState) slot(id WinID) *windowState {
	if id < 0 || int(id) >= len(s.windows) {
		return nil
	}
	return s.windows[id]
}

// win returns the window slot only once it has been realized via EnsureInit.
func (s *WindowingState) win(id WinID) *windowState {
	st := s.slot(id)
	if st == nil || !st.initialized {
		return nil
	}
	return st
}

// --- Lifecycle ---

// NextID allocates a new window slot at the bottom of the z-order. The slot
// stays uninitialized (invisible to queries) until EnsureInit realizes it.
// Freed slots are reused.
func (s *WindowingState) NextID() WinID {
	id := NoWin
	for i, st := range s.windows {
		if st == nil {
			id = WinID(i)
			break
		}
	}
	if id == NoWin {
		id = WinID(len(s.windows))
		s.windows = append(s.windows, nil)
		s.zOrders = append(s.zOrders, 0)
	}
	s.windows[id] = &windowState{}
	s.bottomToTop = append(s.bottomToTop, 0)
	copy(s.bottomToTop[1:], s.bottomToTop)
	s.bottomToTop[0] = id
	s.reindexZOrders()
	return id
}

// EnsureInit realizes an allocated slot on first use, computing the total
// window rectangle from the requested client size plus chrome and bringing
// the window to the top. Subsequent calls are no-ops.
func (s *WindowingState) EnsureInit(id WinID, init func() WindowConfig) {
	st := s.slot(id)
	if st == nil || st.initialized {
		return
	}
	cfg := init()
	m := s.metrics
	wPx := roundPx(cfg.ClientSize.X*s.hidpi) + 2*m.BorderThickness
	hPx := roundPx(cfg.ClientSize.Y*s.hidpi) + 2*m.BorderThickness + m.TitleBarHeight + m.TitleBarGap
	size := Vec2{X: float64(wPx) / s.hidpi, Y: float64(hPx) / s.hidpi}

	var pos Vec2
	if cfg.Pos != nil {
		pos = *cfg.Pos
	} else {
		pos = s.nextAutoPos(size)
	}
	st.rect = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	st.minSize = cfg.MinSize
	st.collapsed = cfg.Collapsed
	st.initialized = true
	s.BringToTop(id)
}

// nextAutoPos returns the next cascading auto-position and advances the
// cursor. When the window would not fit vertically, the cascade restarts on
// a new diagonal shifted right; a diagonal that would start past the right
// edge wraps back to the area origin.
func (s *WindowingState) nextAutoPos(size Vec2) Vec2 {
	step := float64(s.metrics.TitleBarHeight+s.metrics.BorderThickness) / s.hidpi
	if s.areaSize.Y > 0 && s.autoPos.Y+size.Y > s.areaSize.Y && s.autoPos.Y > autoPosStart {
		s.autoPosBase += step
		if s.areaSize.X > 0 && s.autoPosBase+size.X > s.areaSize.X {
			s.autoPosBase = autoPosStart
		}
		s.autoPos = Vec2{X: s.autoPosBase, Y: autoPosStart}
	}
	pos := s.autoPos
	s.autoPos.X += step
	s.autoPos.Y += step
	return pos
}

// SetNeeded marks a window as still wanted this frame. Windows not marked
// before the next SweepUnneeded are destroyed.
func (s *WindowingState) SetNeeded(id WinID) {
	if st := s.slot(id); st != nil {
		st.needed = true
	}
}

// SetAllNeeded marks every live window as wanted this frame.
func (s *WindowingState) SetAllNeeded() {
	for _, st := range s.windows {
		if st != nil {
			st.needed = true
		}
	}
}

// SweepUnneeded destroys every realized window that was not marked needed
// since the previous sweep, then clears the marks for the new frame. Slots
// allocated by NextID but never realized are left alone; they only become
// sweepable once EnsureInit has run.
func (s *WindowingState) SweepUnneeded() {
	for i, st := range s.windows {
		if st != nil && st.initialized && !st.needed {
			s.destroy(WinID(i))
		}
	}
	for _, st := range s.windows {
		if st != nil {
			st.needed = false
		}
	}
}

// destroy frees a slot and removes it from the z-order. A drag session on
// the destroyed window is dropped.
func (s *WindowingState) destroy(id WinID) {
	if s.slot(id) == nil {
		return
	}
	if s.dragging != nil && s.dragging.win == id {
		s.dragging = nil
	}
	rank := s.zOrders[id]
	s.bottomToTop = append(s.bottomToTop[:rank], s.bottomToTop[rank+1:]...)
	s.reindexZOrders()
	s.windows[id] = nil
}

func (s *WindowingState) reindexZOrders() {
	for rank, w := range s.bottomToTop {
		s.zOrders[w] = rank
	}
}

// WinIsLive reports whether id refers to a realized, un-swept window.
func (s *WindowingState) WinIsLive(id WinID) bool {
	return s.win(id) != nil
}

// WinCount returns the number of allocated window slots (free slots included).
func (s *WindowingState) WinCount() int {
	return len(s.windows)
}

// --- Flags and minimum size ---

// SetWinHidden hides or reveals a window. Hidden windows are excluded from
// hit tests and clamping. Idempotent; a footprint change re-applies the
// window's edge anchors.
func (s *WindowingState) SetWinHidden(id WinID, hidden bool) {
	st := s.win(id)
	if st == nil || st.hidden == hidden {
		return
	}
	st.hidden = hidden
	s.applyAnchors(id)
}

// SetWinCollapsed collapses or expands a window. Collapsing only changes how
// the display rectangle is derived; the normal rectangle is untouched.
// Idempotent; the footprint change re-applies the window's edge anchors.
func (s *WindowingState) SetWinCollapsed(id WinID, collapsed bool) {
	st := s.win(id)
	if st == nil || st.collapsed == collapsed {
		return
	}
	st.collapsed = collapsed
	s.applyAnchors(id)
}

// WinIsCollapsed reports whether the window is collapsed.
func (s *WindowingState) WinIsCollapsed(id WinID) bool {
	st := s.win(id)
	return st != nil && st.collapsed
}

// WinIsHidden reports whether the window is hidden.
func (s *WindowingState) WinIsHidden(id WinID) bool {
	st := s.win(id)
	return st != nil && st.hidden
}

// SetWinMinSize updates the window's minimum content size, force-growing the
// current rectangle if it has become too small.
func (s *WindowingState) SetWinMinSize(id WinID, minSize Vec2) {
	st := s.win(id)
	if st == nil {
		return
	}
	st.minSize = minSize
	r := st.rect.Px(s.hidpi)
	minW, minH := s.minTotalSizePx(st)
	if r.W < minW {
		r.W = minW
	}
	if r.H < minH {
		r.H = minH
	}
	st.rect = r.Logical(s.hidpi)
}

// minTotalSizePx derives the minimum total rectangle size in device pixels:
// the requested minimum content size plus the frame chrome.
func (s *WindowingState) minTotalSizePx(st *windowState) (int, int) {
	m := s.metrics
	w := 2*m.BorderThickness + roundPx(st.minSize.X*s.hidpi)
	h := 2*m.BorderThickness + m.TitleBarHeight + roundPx(st.minSize.Y*s.hidpi)
	return w, h
}

// --- Z-order ---

// TopmostWin returns the window at the top of the z-order.
func (s *WindowingState) TopmostWin() (WinID, bool) {
	if len(s.bottomToTop) == 0 {
		return NoWin, false
	}
	return s.bottomToTop[len(s.bottomToTop)-1], true
}

// BringToTop raises the window to the top of the z-order by rotating the
// sub-list above it down one rank. A no-op on the topmost window.
func (s *WindowingState) BringToTop(id WinID) {
	if s.slot(id) == nil {
		return
	}
	n := len(s.bottomToTop)
	if n == 0 || s.bottomToTop[n-1] == id {
		return
	}
	rank := s.zOrders[id]
	sub := s.bottomToTop[rank:]
	copy(sub, sub[1:])
	sub[len(sub)-1] = id
	for i, w := range sub {
		s.zOrders[w] = rank + i
	}
}

// WinZOrder returns the window's z rank. Higher ranks draw on top.
func (s *WindowingState) WinZOrder(id WinID) (int, bool) {
	if s.win(id) == nil {
		return 0, false
	}
	return s.zOrders[id], true
}

// BottomToTopWins returns the live, realized windows in paint order.
func (s *WindowingState) BottomToTopWins() []WinID {
	out := make([]WinID, 0, len(s.bottomToTop))
	for _, id := range s.bottomToTop {
		if s.win(id) != nil {
			out = append(out, id)
		}
	}
	return out
}

// --- Geometry queries ---

// Metrics returns the current shared frame metrics.
func (s *WindowingState) Metrics() FrameMetrics { return s.metrics }

// Hidpi returns the current display-scale factor.
func (s *WindowingState) Hidpi() float64 { return s.hidpi }

// AreaSize returns the windowing area size in logical units.
func (s *WindowingState) AreaSize() Vec2 { return s.areaSize }

// WinNormalRectPx returns the window's full rectangle in device pixels.
func (s *WindowingState) WinNormalRectPx(id WinID) (RectPx, bool) {
	st := s.win(id)
	if st == nil {
		return RectPx{}, false
	}
	return st.rect.Px(s.hidpi), true
}

// WinNormalRect returns the window's full rectangle in logical units,
// rounded onto the device-pixel grid.
func (s *WindowingState) WinNormalRect(id WinID) (Rect, bool) {
	r, ok := s.WinNormalRectPx(id)
	if !ok {
		return Rect{}, false
	}
	return r.Logical(s.hidpi), true
}

// WinDisplayRectPx returns the window's visible rectangle in device pixels.
// For a collapsed window this is the fixed collapsed footprint anchored at
// the normal rectangle's top-left.
func (s *WindowingState) WinDisplayRectPx(id WinID) (RectPx, bool) {
	st := s.win(id)
	if st == nil {
		return RectPx{}, false
	}
	r := st.rect.Px(s.hidpi)
	r.W, r.H = s.displaySizePx(st, r.W, r.H)
	return r, true
}

// WinDisplayRect returns the window's visible rectangle in logical units.
func (s *WindowingState) WinDisplayRect(id WinID) (Rect, bool) {
	r, ok := s.WinDisplayRectPx(id)
	if !ok {
		return Rect{}, false
	}
	return r.Logical(s.hidpi), true
}

// displaySizePx maps a normal size to the display size, substituting the
// collapsed footprint when the window is collapsed.
func (s *WindowingState) displaySizePx(st *windowState, w, h int) (int, int) {
	if st.collapsed {
		return s.metrics.CollapsedWinWidth, s.metrics.CollapsedWinHeight()
	}
	return w, h
}

// --- Hit test dispatch ---

// WinHitTest finds the topmost window containing pos and the region hit.
func (s *WindowingState) WinHitTest(pos Vec2) (WinID, HitTest) {
	return s.WinHitTestFiltered(pos, nil)
}

// WinHitTestFiltered is WinHitTest restricted to windows accepted by keep.
func (s *WindowingState) WinHitTestFiltered(pos Vec2, keep func(WinID) bool) (WinID, HitTest) {
	for i := len(s.bottomToTop) - 1; i >= 0; i-- {
		id := s.bottomToTop[i]
		if keep != nil && !keep(id) {
			continue
		}
		if ht := s.SpecificWinHitTest(id, pos); ht != HitNone {
			return id, ht
		}
	}
	return NoWin, HitNone
}

// SpecificWinHitTest classifies pos against one window's display rectangle.
// Hidden and stale windows yield HitNone.
func (s *WindowingState) SpecificWinHitTest(id WinID, pos Vec2) HitTest {
	st := s.win(id)
	if st == nil || st.hidden {
		return HitNone
	}
	r, _ := s.WinDisplayRect(id)
	return WindowHitTest(
		Vec2{X: r.W, Y: r.H},
		Vec2{X: pos.X - r.X, Y: pos.Y - r.Y},
		s.hidpi, s.metrics,
	)
}

// --- Area resize, anchoring, clamping ---

// SetDimensions updates the windowing area size and display-scale factor.
// A scale change recomputes the frame metrics; any change re-derives every
// anchored window's rectangle.
func (s *WindowingState) SetDimensions(areaSize Vec2, hidpi float64) {
	if hidpi <= 0 {
		hidpi = 1
	}
	if areaSize == s.areaSize && hidpi == s.hidpi {
		return
	}
	s.areaSize = areaSize
	if hidpi != s.hidpi {
		s.hidpi = hidpi
		s.metrics = ComputeFrameMetrics(hidpi)
	}
	s.recomputeSnappedWinRects()
}

// recomputeSnappedWinRects re-applies every window's recorded edge anchors.
func (s *WindowingState) recomputeSnappedWinRects() {
	for i := range s.windows {
		s.applyAnchors(WinID(i))
	}
}

// applyAnchors re-derives one window's rectangle from its anchors: pinned
// edges stay at the snap margin, and a both-edges anchor stretches the
// window to fill the area minus margins (minimum size enforced).
func (s *WindowingState) applyAnchors(id WinID) {
	st := s.win(id)
	if st == nil || (st.anchorX == AnchorNone && st.anchorY == AnchorNone) {
		return
	}
	m := s.metrics
	r := st.rect.Px(s.hidpi)
	dispW, dispH := s.displaySizePx(st, r.W, r.H)
	areaW := roundPx(s.areaSize.X * s.hidpi)
	areaH := roundPx(s.areaSize.Y * s.hidpi)
	minW, minH := s.minTotalSizePx(st)
	r.X, r.W = applyAnchorAxis(st.anchorX, r.X, r.W, dispW, areaW, minW, m.SnapMargin, st.collapsed)
	r.Y, r.H = applyAnchorAxis(st.anchorY, r.Y, r.H, dispH, areaH, minH, m.SnapMargin, st.collapsed)
	st.rect = r.Logical(s.hidpi)
}

// applyAnchorAxis pins one axis. A collapsed window never stretches: its
// display size is fixed, so a both-edges anchor degrades to a lower-edge pin.
func applyAnchorAxis(a Anchor, pos, size, dispSize, areaSize, minSize, margin int, collapsed bool) (int, int) {
	switch a {
	case AnchorLowerEdge:
		pos = margin
	case AnchorUpperEdge:
		pos = areaSize - margin - dispSize
	case AnchorLowerAndUpperEdges:
		pos = margin
		if !collapsed {
			size = areaSize - 2*margin
			if size < minSize {
				size = minSize
			}
		}
	}
	return pos, size
}

// EnsureAllWinInArea is a best-effort per-frame clamp keeping every visible
// window's display footprint inside the area, e.g. after a host window
// shrink. Position is clamped; size is only capped when a non-collapsed
// window exceeds the area bounds plus a border allowance. The actively
// dragged window is left alone.
func (s *WindowingState) EnsureAllWinInArea() {
	areaW := roundPx(s.areaSize.X * s.hidpi)
	areaH := roundPx(s.areaSize.Y * s.hidpi)
	if areaW <= 0 || areaH <= 0 {
		return
	}
	b := s.metrics.BorderThickness
	for i, st := range s.windows {
		id := WinID(i)
		if st == nil || !st.initialized || st.hidden {
			continue
		}
		if s.dragging != nil && s.dragging.win == id {
			continue
		}
		r := st.rect.Px(s.hidpi)
		if !st.collapsed {
			if maxW := areaW + 2*b; r.W > maxW {
				r.W = maxW
			}
			if maxH := areaH + 2*b; r.H > maxH {
				r.H = maxH
			}
		}
		dispW, dispH := s.displaySizePx(st, r.W, r.H)
		r.X = clampInt(r.X, 0, max(0, areaW-dispW))
		r.Y = clampInt(r.Y, 0, max(0, areaH-dispH))
		st.rect = r.Logical(s.hidpi)
	}
}
