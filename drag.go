package wicker

// axisAction is the 1D behavior a drag applies to one axis, derived from the
// hit-test region that started the drag.
type axisAction uint8

const (
	axisNone        axisAction = iota // axis unaffected
	axisMove                          // translate
	axisResizeLower                   // move the lower (left/top) edge, re-derive size
	axisResizeUpper                   // move the upper (right/bottom) edge in place
)

// dragAxisActions maps a hit-test region to its per-axis actions.
func dragAxisActions(ht HitTest) (x, y axisAction) {
	switch ht {
	case HitTitleBarOrDragArea:
		return axisMove, axisMove
	case HitLeftBorder:
		return axisResizeLower, axisNone
	case HitRightBorder:
		return axisResizeUpper, axisNone
	case HitTopBorder:
		return axisNone, axisResizeLower
	case HitBottomBorder:
		return axisNone, axisResizeUpper
	case HitTopLeftCorner:
		return axisResizeLower, axisResizeLower
	case HitTopRightCorner:
		return axisResizeUpper, axisResizeLower
	case HitBottomLeftCorner:
		return axisResizeLower, axisResizeUpper
	case HitBottomRightCorner:
		return axisResizeUpper, axisResizeUpper
	}
	return axisNone, axisNone
}

// snapEdge says which edge of the dragged window a candidate line applies to.
type snapEdge uint8

const (
	snapLowerEdge snapEdge = iota
	snapUpperEdge
)

// snapCandidate is one alignment line gathered at drag start from another
// window's display rectangle.
type snapCandidate struct {
	win  WinID
	edge snapEdge
	seg  SnapSegment
}

// draggingState carries a drag gesture across frames. The starting rectangle
// is captured both pixel-aligned (all drag math is exact-integer) and in its
// raw logical form (so an aborted drag restores the rectangle bit-exactly).
type draggingState struct {
	win     WinID
	hitTest HitTest
	actionX axisAction
	actionY axisAction

	startRectPx RectPx
	startRect   Rect

	candidatesX []snapCandidate
	candidatesY []snapCandidate
	lastSnapX   int // index into candidatesX snapped to on the previous update, -1 = none
	lastSnapY   int
}

// CurrentDraggingWin exposes the active drag for cursor feedback.
func (s *WindowingState) CurrentDraggingWin() (WinID, HitTest, bool) {
	if s.dragging == nil {
		return NoWin, HitNone, false
	}
	return s.dragging.win, s.dragging.hitTest, true
}

// WinDragStart begins a drag gesture on a window. It reports false without
// changing state when the target is stale, hidden, or a collapsed window is
// grabbed by a border or corner (collapsed windows can only be moved). An
// already-active drag on another window is committed first; a new drag
// supersedes, it does not stack.
func (s *WindowingState) WinDragStart(id WinID, ht HitTest) bool {
	st := s.win(id)
	if st == nil || st.hidden || ht == HitNone {
		return false
	}
	if st.collapsed && ht.IsBorderOrCorner() {
		return false
	}
	if s.dragging != nil {
		s.WinDragEnd(false)
	}
	actionX, actionY := dragAxisActions(ht)
	d := &draggingState{
		win:         id,
		hitTest:     ht,
		actionX:     actionX,
		actionY:     actionY,
		startRectPx: st.rect.Px(s.hidpi),
		startRect:   st.rect,
		lastSnapX:   -1,
		lastSnapY:   -1,
	}
	d.candidatesX = s.gatherSnapCandidates(id, actionX, true)
	d.candidatesY = s.gatherSnapCandidates(id, actionY, false)
	s.dragging = d
	s.debugf("drag start on %v (win %d)", ht, id)
	return true
}

// gatherSnapCandidates collects, for one axis, the alignment lines the drag
// may lock onto: every other visible window's display rectangle contributes
// its far edge (offset outward by the snap margin) for whichever of the
// dragged window's edges the action moves. A move considers both edges, a
// resize only the edge being dragged.
func (s *WindowingState) gatherSnapCandidates(dragged WinID, action axisAction, horizontal bool) []snapCandidate {
	if action == axisNone {
		return nil
	}
	margin := s.metrics.SnapMargin
	var out []snapCandidate
	for _, id := range s.bottomToTop {
		if id == dragged {
			continue
		}
		st := s.win(id)
		if st == nil || st.hidden {
			continue
		}
		d, _ := s.WinDisplayRectPx(id)
		pos, size, perpPos, perpSize := d.X, d.W, d.Y, d.H
		if !horizontal {
			pos, size, perpPos, perpSize = d.Y, d.H, d.X, d.W
		}
		rng := NewDimRange(perpPos, perpPos+perpSize)
		if action == axisMove || action == axisResizeLower {
			// The dragged lower edge rests one margin past the other
			// window's upper edge.
			out = append(out, snapCandidate{win: id, edge: snapLowerEdge, seg: NewSnapSegment(pos+size+margin, rng)})
		}
		if action == axisMove || action == axisResizeUpper {
			out = append(out, snapCandidate{win: id, edge: snapUpperEdge, seg: NewSnapSegment(pos-margin, rng)})
		}
	}
	return out
}

// axisDrag is the input to one axis of a drag update. All fields are device
// pixels; the same code runs for X and Y.
type axisDrag struct {
	action     axisAction
	startPos   int
	startSize  int
	delta      int
	minSize    int
	dispSize   int // display size on this axis (what snapping aligns)
	areaSize   int
	perp       DimRange // dragged window's perpendicular display extent
	candidates []snapCandidate
	lastSnap   int
	threshold  int
	margin     int
}

// rawAxisDrag applies the action without snapping, clamped to the minimum
// total size.
func rawAxisDrag(action axisAction, startPos, startSize, delta, minSize int) (int, int) {
	switch action {
	case axisMove:
		return startPos + delta, startSize
	case axisResizeLower:
		end := startPos + startSize
		pos := startPos + delta
		if pos > end-minSize {
			pos = end - minSize
		}
		return pos, end - pos
	case axisResizeUpper:
		size := startSize + delta
		if size < minSize {
			size = minSize
		}
		return startPos, size
	}
	return startPos, startSize
}

// resolveAxisDrag computes one axis of a drag update: the raw clamped
// position/size, then snapping in priority order: the area's own edges
// first, then other-window candidates (preferring the candidate snapped to
// on the previous update, else the first overlapping match in registration
// order), else the raw value. Returns the new normal-rect position and size
// plus the index of the candidate snapped to (-1 for none).
func resolveAxisDrag(in axisDrag) (pos, size, snapped int) {
	pos, size = rawAxisDrag(in.action, in.startPos, in.startSize, in.delta, in.minSize)

	match := func(i, edgePos int) (int, bool) {
		c := in.candidates[i]
		if !c.seg.DimRange().Overlaps(in.perp) {
			return 0, false
		}
		line := c.seg.PerpendicularDim()
		if absInt(edgePos-line) > in.threshold {
			return 0, false
		}
		return line, true
	}

	switch in.action {
	case axisMove:
		raw := pos
		if absInt(raw-in.margin) <= in.threshold {
			return in.margin, size, -1
		}
		if upper := in.areaSize - in.margin - in.dispSize; absInt(raw-upper) <= in.threshold {
			return upper, size, -1
		}
		try := func(i int) (int, bool) {
			edgePos := raw
			if in.candidates[i].edge == snapUpperEdge {
				edgePos = raw + in.dispSize
			}
			line, ok := match(i, edgePos)
			if !ok {
				return 0, false
			}
			if in.candidates[i].edge == snapUpperEdge {
				line -= in.dispSize
			}
			return line, true
		}
		if in.lastSnap >= 0 && in.lastSnap < len(in.candidates) {
			if p, ok := try(in.lastSnap); ok {
				return p, size, in.lastSnap
			}
		}
		for i := range in.candidates {
			if p, ok := try(i); ok {
				return p, size, i
			}
		}

	case axisResizeLower:
		end := in.startPos + in.startSize
		maxPos := end - in.minSize
		raw := pos
		if absInt(raw-in.margin) <= in.threshold && in.margin <= maxPos {
			return in.margin, end - in.margin, -1
		}
		try := func(i int) (int, bool) {
			line, ok := match(i, raw)
			if !ok || line > maxPos {
				return 0, false
			}
			return line, true
		}
		if in.lastSnap >= 0 && in.lastSnap < len(in.candidates) {
			if p, ok := try(in.lastSnap); ok {
				return p, end - p, in.lastSnap
			}
		}
		for i := range in.candidates {
			if p, ok := try(i); ok {
				return p, end - p, i
			}
		}

	case axisResizeUpper:
		minEnd := in.startPos + in.minSize
		rawEnd := in.startPos + size
		if areaEdge := in.areaSize - in.margin; absInt(rawEnd-areaEdge) <= in.threshold && areaEdge >= minEnd {
			return pos, areaEdge - in.startPos, -1
		}
		try := func(i int) (int, bool) {
			line, ok := match(i, rawEnd)
			if !ok || line < minEnd {
				return 0, false
			}
			return line, true
		}
		if in.lastSnap >= 0 && in.lastSnap < len(in.candidates) {
			if e, ok := try(in.lastSnap); ok {
				return pos, e - in.startPos, in.lastSnap
			}
		}
		for i := range in.candidates {
			if e, ok := try(i); ok {
				return pos, e - in.startPos, i
			}
		}
	}
	return pos, size, -1
}

// WinDragUpdate advances the active drag given the cumulative pointer offset
// (logical units) from drag start. The dragged window is re-raised, each axis
// is resolved independently, and the pixel-rounded rectangle is committed.
func (s *WindowingState) WinDragUpdate(offset Vec2) {
	d := s.dragging
	if d == nil {
		return
	}
	st := s.win(d.win)
	if st == nil {
		s.dragging = nil
		return
	}
	s.BringToTop(d.win)

	m := s.metrics
	dx := roundPx(offset.X * s.hidpi)
	dy := roundPx(offset.Y * s.hidpi)
	minW, minH := s.minTotalSizePx(st)
	areaW := roundPx(s.areaSize.X * s.hidpi)
	areaH := roundPx(s.areaSize.Y * s.hidpi)

	// Raw geometry first: each axis snaps against the other's unsnapped
	// display extent.
	rawX, rawW := rawAxisDrag(d.actionX, d.startRectPx.X, d.startRectPx.W, dx, minW)
	rawY, rawH := rawAxisDrag(d.actionY, d.startRectPx.Y, d.startRectPx.H, dy, minH)
	dispW, dispH := s.displaySizePx(st, rawW, rawH)

	x, w, snapX := resolveAxisDrag(axisDrag{
		action: d.actionX, startPos: d.startRectPx.X, startSize: d.startRectPx.W,
		delta: dx, minSize: minW, dispSize: dispW, areaSize: areaW,
		perp:       NewDimRange(rawY, rawY+dispH),
		candidates: d.candidatesX, lastSnap: d.lastSnapX,
		threshold: m.SnapThreshold, margin: m.SnapMargin,
	})
	y, h, snapY := resolveAxisDrag(axisDrag{
		action: d.actionY, startPos: d.startRectPx.Y, startSize: d.startRectPx.H,
		delta: dy, minSize: minH, dispSize: dispH, areaSize: areaH,
		perp:       NewDimRange(rawX, rawX+dispW),
		candidates: d.candidatesY, lastSnap: d.lastSnapY,
		threshold: m.SnapThreshold, margin: m.SnapMargin,
	})
	d.lastSnapX, d.lastSnapY = snapX, snapY
	st.rect = RectPx{X: x, Y: y, W: w, H: h}.Logical(s.hidpi)
}

// WinDragEnd tears down the drag session. Aborting restores the exact
// pre-drag rectangle; committing records per-axis edge anchors when the
// final position sits exactly at the area's snap-margin offsets.
func (s *WindowingState) WinDragEnd(abort bool) {
	d := s.dragging
	if d == nil {
		return
	}
	s.dragging = nil
	st := s.win(d.win)
	if st == nil {
		return
	}
	if abort {
		st.rect = d.startRect
		s.debugf("drag abort (win %d)", d.win)
		return
	}
	r := st.rect.Px(s.hidpi)
	dispW, dispH := s.displaySizePx(st, r.W, r.H)
	areaW := roundPx(s.areaSize.X * s.hidpi)
	areaH := roundPx(s.areaSize.Y * s.hidpi)
	margin := s.metrics.SnapMargin
	st.anchorX = anchorForAxis(r.X, dispW, areaW, margin)
	st.anchorY = anchorForAxis(r.Y, dispH, areaH, margin)
	st.rect = r.Logical(s.hidpi)
	s.debugf("drag end (win %d, anchors %d/%d)", d.win, st.anchorX, st.anchorY)
}

// anchorForAxis derives the persistent edge anchor from the final pixel
// position on one axis.
func anchorForAxis(pos, dispSize, areaSize, margin int) Anchor {
	lower := pos == margin
	upper := pos+dispSize == areaSize-margin
	switch {
	case lower && upper:
		return AnchorLowerAndUpperEdges
	case lower:
		return AnchorLowerEdge
	case upper:
		return AnchorUpperEdge
	default:
		return AnchorNone
	}
}
