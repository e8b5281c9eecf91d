package wicker

import "testing"

// --- Drag basics ---

func TestDragMovesByTitleBar(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})

	if !s.WinDragStart(id, HitTitleBarOrDragArea) {
		t.Fatal("WinDragStart refused a title-bar drag")
	}
	s.WinDragUpdate(Vec2{X: 5, Y: 5})
	got, _ := s.WinNormalRect(id)
	want := Rect{X: 105, Y: 105, W: 158, H: 134}
	if got != want {
		t.Errorf("rect during drag = %+v, want %+v", got, want)
	}
	s.WinDragEnd(false)
	got, _ = s.WinNormalRect(id)
	if got != want {
		t.Errorf("rect after commit = %+v, want %+v", got, want)
	}
	if _, _, ok := s.CurrentDraggingWin(); ok {
		t.Error("drag still active after WinDragEnd")
	}
}

func TestDragMovesAtScale(t *testing.T) {
	s := newTestState(800, 600, 2.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})

	s.WinDragStart(id, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: 5, Y: 5})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRectPx(id)
	if got.X != 210 || got.Y != 210 {
		t.Errorf("position after scaled drag = (%d, %d), want (210, 210)", got.X, got.Y)
	}
}

func TestDragAbortRestoresExactRect(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})
	before, _ := s.WinNormalRect(id)

	s.WinDragStart(id, HitBottomRightCorner)
	s.WinDragUpdate(Vec2{X: 37, Y: -19})
	s.WinDragEnd(true)

	after, _ := s.WinNormalRect(id)
	if after != before {
		t.Errorf("rect after abort = %+v, want %+v", after, before)
	}
}

func TestDragUpdateRaisesWindow(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	cfg := WindowConfig{ClientSize: Vec2{X: 100, Y: 100}}
	a := addWin(t, s, cfg)
	b := addWin(t, s, cfg)

	s.WinDragStart(a, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: 1, Y: 0})
	if top, _ := s.TopmostWin(); top != a {
		t.Errorf("TopmostWin() during drag = %d, want %d", top, a)
	}
	_ = b
}

func TestDragStartRefusals(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})

	if s.WinDragStart(id, HitNone) {
		t.Error("drag started on HitNone")
	}
	if s.WinDragStart(99, HitTitleBarOrDragArea) {
		t.Error("drag started on a stale id")
	}
	s.SetWinHidden(id, true)
	if s.WinDragStart(id, HitTitleBarOrDragArea) {
		t.Error("drag started on a hidden window")
	}
	s.SetWinHidden(id, false)

	s.SetWinCollapsed(id, true)
	if s.WinDragStart(id, HitRightBorder) {
		t.Error("resize drag started on a collapsed window")
	}
	if !s.WinDragStart(id, HitTitleBarOrDragArea) {
		t.Error("move drag refused on a collapsed window")
	}
	s.WinDragUpdate(Vec2{X: 10, Y: 0})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRect(id)
	if got.X != 110 {
		t.Errorf("collapsed window X after move = %v, want 110", got.X)
	}
}

func TestDragSupersedesCommitsPrevious(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	a := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(100, 100)})
	b := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(400, 100)})

	s.WinDragStart(a, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: 5, Y: 0})
	if !s.WinDragStart(b, HitTitleBarOrDragArea) {
		t.Fatal("superseding drag refused")
	}
	got, _ := s.WinNormalRect(a)
	if got.X != 105 {
		t.Errorf("superseded drag not committed: X = %v, want 105", got.X)
	}
	if win, _, _ := s.CurrentDraggingWin(); win != b {
		t.Errorf("CurrentDraggingWin() = %d, want %d", win, b)
	}
}

func TestSweepDropsActiveDrag(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}})

	s.WinDragStart(id, HitTitleBarOrDragArea)
	s.SweepUnneeded()
	if _, _, ok := s.CurrentDraggingWin(); ok {
		t.Error("drag survived its window being swept")
	}
}

// --- Resize tests ---

func TestDragResizesEdges(t *testing.T) {
	tests := []struct {
		name   string
		ht     HitTest
		offset Vec2
		want   Rect
	}{
		{"right border grows", HitRightBorder, Vec2{X: 20, Y: 0}, Rect{X: 100, Y: 100, W: 178, H: 134}},
		{"left border grows", HitLeftBorder, Vec2{X: -20, Y: 0}, Rect{X: 80, Y: 100, W: 178, H: 134}},
		{"top border grows", HitTopBorder, Vec2{X: 0, Y: -10}, Rect{X: 100, Y: 90, W: 158, H: 144}},
		{"bottom border grows", HitBottomBorder, Vec2{X: 0, Y: 10}, Rect{X: 100, Y: 100, W: 158, H: 144}},
		{"bottom-right corner", HitBottomRightCorner, Vec2{X: 15, Y: 25}, Rect{X: 100, Y: 100, W: 173, H: 159}},
		{"top-left corner", HitTopLeftCorner, Vec2{X: -15, Y: -25}, Rect{X: 85, Y: 75, W: 173, H: 159}},
		{"left border ignores vertical motion", HitLeftBorder, Vec2{X: -20, Y: 50}, Rect{X: 80, Y: 100, W: 178, H: 134}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(800, 600, 1.0)
			id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})
			s.WinDragStart(id, tt.ht)
			s.WinDragUpdate(tt.offset)
			s.WinDragEnd(false)
			got, _ := s.WinNormalRect(id)
			if got != tt.want {
				t.Errorf("rect after %v resize = %+v, want %+v", tt.ht, got, tt.want)
			}
		})
	}
}

func TestDragResizeClampsToMinSize(t *testing.T) {
	// Minimum total: 2*4 + 50 = 58 wide, 2*4 + 24 + 40 = 72 high.
	tests := []struct {
		name   string
		ht     HitTest
		offset Vec2
		want   RectPx
	}{
		{"upper edge overshoot", HitRightBorder, Vec2{X: -200, Y: 0}, RectPx{X: 100, Y: 100, W: 58, H: 134}},
		// The lower edge stops where the minimum is reached; the far edge
		// (at 258) stays put.
		{"lower edge overshoot", HitLeftBorder, Vec2{X: 200, Y: 0}, RectPx{X: 200, Y: 100, W: 58, H: 134}},
		{"bottom overshoot", HitBottomBorder, Vec2{X: 0, Y: -500}, RectPx{X: 100, Y: 100, W: 158, H: 72}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(800, 600, 1.0)
			id := addWin(t, s, WindowConfig{
				ClientSize: Vec2{X: 150, Y: 100},
				Pos:        posAt(100, 100),
				MinSize:    Vec2{X: 50, Y: 40},
			})
			s.WinDragStart(id, tt.ht)
			s.WinDragUpdate(tt.offset)
			s.WinDragEnd(false)
			got, _ := s.WinNormalRectPx(id)
			if got != tt.want {
				t.Errorf("rect after overshoot = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// --- Area-edge snapping and anchors ---

func TestDragSnapsToAreaEdgeAndAnchors(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})

	// Raw X would be 15; within the 12px threshold of the 8px margin.
	s.WinDragStart(id, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: -85, Y: 0})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRectPx(id)
	if got.X != 8 {
		t.Fatalf("X after edge snap = %d, want 8", got.X)
	}

	// The snap is remembered as an anchor: the window stays pinned when the
	// area is resized.
	s.SetDimensions(Vec2{X: 900, Y: 600}, 1.0)
	got, _ = s.WinNormalRectPx(id)
	if got.X != 8 {
		t.Errorf("X after area resize = %d, want 8", got.X)
	}
}

func TestDragSnapsToUpperAreaEdge(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})

	// Raw X would be 630; the right-margin position is 800-8-158 = 634.
	s.WinDragStart(id, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: 530, Y: 0})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRectPx(id)
	if got.X != 634 {
		t.Fatalf("X after edge snap = %d, want 634", got.X)
	}

	s.SetDimensions(Vec2{X: 900, Y: 600}, 1.0)
	got, _ = s.WinNormalRectPx(id)
	if got.X != 734 {
		t.Errorf("X after area resize = %d, want 900-8-158 = 734", got.X)
	}
}

func TestBothEdgeAnchorStretches(t *testing.T) {
	s := newTestState(300, 600, 1.0)
	// 276 + chrome = 284 wide: exactly the area minus both margins.
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 276, Y: 100}, Pos: posAt(8, 50)})

	s.WinDragStart(id, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: 0, Y: 5})
	s.WinDragEnd(false)

	s.SetDimensions(Vec2{X: 400, Y: 600}, 1.0)
	got, _ := s.WinNormalRectPx(id)
	if got.X != 8 || got.W != 384 {
		t.Errorf("stretched rect = %+v, want X=8 W=384", got)
	}

	// A collapsed window keeps its fixed footprint, pinned to the lower edge.
	s.SetWinCollapsed(id, true)
	disp, _ := s.WinDisplayRectPx(id)
	if disp.X != 8 || disp.W != 160 {
		t.Errorf("collapsed anchored rect = %+v, want X=8 W=160", disp)
	}
}

func TestResizeSnapsToAreaEdge(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	id := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(300, 120)})

	// Raw right edge would be 788; the margin position is 800-8 = 792.
	s.WinDragStart(id, HitRightBorder)
	s.WinDragUpdate(Vec2{X: 380, Y: 0})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRectPx(id)
	if got.W != 492 {
		t.Errorf("width after edge snap = %d, want 792-300 = 492", got.W)
	}
}

// --- Window-to-window snapping ---

func TestDragSnapsToNeighborWindow(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	a := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})
	b := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(300, 120)})

	// a's right edge is at 258; b's left edge locks one margin past it, 266.
	// Raw X would be 262.
	s.WinDragStart(b, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: -38, Y: 0})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRectPx(b)
	if got.X != 266 || got.Y != 120 {
		t.Errorf("position after neighbor snap = (%d, %d), want (266, 120)", got.X, got.Y)
	}
	_ = a
}

func TestDragSkipsNonOverlappingNeighbor(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	// a sits far below b's vertical extent, so its edges are not candidates
	// that can match.
	addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 400)})
	b := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(300, 120)})

	s.WinDragStart(b, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: -38, Y: 0})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRectPx(b)
	if got.X != 262 {
		t.Errorf("X = %d, want unsnapped 262", got.X)
	}
}

func TestResizeSnapsToNeighborWindow(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})
	b := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(300, 120)})

	s.WinDragStart(b, HitLeftBorder)
	s.WinDragUpdate(Vec2{X: -38, Y: 0})
	s.WinDragEnd(false)
	got, _ := s.WinNormalRectPx(b)
	if got.X != 266 || got.W != 142 {
		t.Errorf("rect after resize snap = %+v, want X=266 W=142", got)
	}
}

func TestDragPrefersPreviousSnap(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	// Two neighbors with right edges 4px apart: snap lines at 266 and 270.
	addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})
	addWin(t, s, WindowConfig{ClientSize: Vec2{X: 154, Y: 100}, Pos: posAt(100, 150)})
	b := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(300, 120)})

	// Raw X 279 is out of range of the 266 line but snaps to 270.
	s.WinDragStart(b, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: -21, Y: 0})
	if got, _ := s.WinNormalRectPx(b); got.X != 270 {
		t.Fatalf("X after first update = %d, want 270", got.X)
	}
	// Raw X 271 now matches both lines; the drag stays on the one it already
	// holds rather than jumping to the earlier-registered 266.
	s.WinDragUpdate(Vec2{X: -29, Y: 0})
	if got, _ := s.WinNormalRectPx(b); got.X != 270 {
		t.Errorf("X after second update = %d, want 270 (kept previous snap)", got.X)
	}
	s.WinDragEnd(false)

	// A fresh drag at raw 271 takes the first matching line instead.
	s.WinDragStart(b, HitTitleBarOrDragArea)
	s.WinDragUpdate(Vec2{X: 1, Y: 0})
	if got, _ := s.WinNormalRectPx(b); got.X != 266 {
		t.Errorf("X in fresh drag = %d, want 266", got.X)
	}
	s.WinDragEnd(true)
}

// --- Debug overlay segments ---

func TestSnapSegmentsExposedDuringDrag(t *testing.T) {
	s := newTestState(800, 600, 1.0)
	addWin(t, s, WindowConfig{ClientSize: Vec2{X: 150, Y: 100}, Pos: posAt(100, 100)})
	b := addWin(t, s, WindowConfig{ClientSize: Vec2{X: 100, Y: 100}, Pos: posAt(300, 120)})

	if got := s.SnapXSegments(); got != nil {
		t.Errorf("SnapXSegments() with no drag = %v, want nil", got)
	}
	s.WinDragStart(b, HitTitleBarOrDragArea)
	segs := s.SnapXSegments()
	// One neighbor contributes a line for each of the moved window's edges.
	if len(segs) != 2 {
		t.Fatalf("len(SnapXSegments()) = %d, want 2", len(segs))
	}
	if segs[0].X1 != segs[0].X2 {
		t.Errorf("X snap segment not vertical: %+v", segs[0])
	}
	s.WinDragEnd(true)
	if got := s.SnapXSegments(); got != nil {
		t.Errorf("SnapXSegments() after drag = %v, want nil", got)
	}
}
