package wicker

// DimRange is a normalized 1D interval in device pixels, used as the
// perpendicular validity extent of a snap candidate.
type DimRange struct {
	start, end int
}

// NewDimRange builds a range from two endpoints in either order.
func NewDimRange(a, b int) DimRange {
	if a > b {
		return DimRange{start: b, end: a}
	}
	return DimRange{start: a, end: b}
}

// Lower returns the smaller endpoint.
func (r DimRange) Lower() int { return r.start }

// Upper returns the larger endpoint.
func (r DimRange) Upper() int { return r.end }

// Overlaps reports whether the two ranges share a non-empty interval.
// Ranges that merely touch at an endpoint do not overlap.
func (r DimRange) Overlaps(other DimRange) bool {
	return r.start < other.end && other.start < r.end
}

// SnapSegment is a candidate alignment line for a dragged window edge: the
// coordinate the edge may lock onto, plus the perpendicular interval over
// which the candidate is valid.
type SnapSegment struct {
	perpendicular int
	rng           DimRange
}

// NewSnapSegment builds a snap segment at the given perpendicular coordinate,
// valid over rng.
func NewSnapSegment(perpendicular int, rng DimRange) SnapSegment {
	return SnapSegment{perpendicular: perpendicular, rng: rng}
}

// PerpendicularDim returns the coordinate of the alignment line.
func (s SnapSegment) PerpendicularDim() int { return s.perpendicular }

// DimRange returns the interval the candidate is valid over.
func (s SnapSegment) DimRange() DimRange { return s.rng }

// Anchor records how a window is pinned to the windowing area's edges on one
// axis. Anchors are captured when a drag ends with the window sitting exactly
// at the area's snap margin and are re-applied whenever the area is resized.
type Anchor uint8

const (
	AnchorNone               Anchor = iota // not pinned
	AnchorLowerEdge                        // pinned to the left/top edge
	AnchorUpperEdge                        // pinned to the right/bottom edge
	AnchorLowerAndUpperEdges               // pinned to both edges (stretches on resize)
)
