package wicker

import (
	"fmt"
	"os"
)

// LineSegment is one candidate snap line in logical units, for overlay
// rendering while a drag is active.
type LineSegment struct {
	X1, Y1, X2, Y2 float64
}

// SnapXSegments returns the live drag's X-axis snap candidates as vertical
// line segments. Empty when no drag is active.
func (s *WindowingState) SnapXSegments() []LineSegment {
	d := s.dragging
	if d == nil {
		return nil
	}
	out := make([]LineSegment, 0, len(d.candidatesX))
	for _, c := range d.candidatesX {
		x := float64(c.seg.PerpendicularDim()) / s.hidpi
		out = append(out, LineSegment{
			X1: x,
			Y1: float64(c.seg.DimRange().Lower()) / s.hidpi,
			X2: x,
			Y2: float64(c.seg.DimRange().Upper()) / s.hidpi,
		})
	}
	return out
}

// SnapYSegments returns the live drag's Y-axis snap candidates as horizontal
// line segments. Empty when no drag is active.
func (s *WindowingState) SnapYSegments() []LineSegment {
	d := s.dragging
	if d == nil {
		return nil
	}
	out := make([]LineSegment, 0, len(d.candidatesY))
	for _, c := range d.candidatesY {
		y := float64(c.seg.PerpendicularDim()) / s.hidpi
		out = append(out, LineSegment{
			X1: float64(c.seg.DimRange().Lower()) / s.hidpi,
			Y1: y,
			X2: float64(c.seg.DimRange().Upper()) / s.hidpi,
			Y2: y,
		})
	}
	return out
}

// SetDebug toggles stderr diagnostics for drag transitions.
func (s *WindowingState) SetDebug(v bool) {
	s.debug = v
}

// debugf prints a diagnostic line to stderr when debugging is enabled.
func (s *WindowingState) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[wicker] "+format+"\n", args...)
}
