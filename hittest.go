package wicker

import "github.com/hajimehoshi/ebiten/v2"

// HitTest classifies a point relative to a window's display rectangle into a
// functional region. The zero value HitNone means the point is outside.
type HitTest uint8

const (
	HitNone HitTest = iota
	HitContent
	HitTitleBarOrDragArea
	HitTopBorder
	HitBottomBorder
	HitLeftBorder
	HitRightBorder
	HitTopLeftCorner
	HitTopRightCorner
	HitBottomLeftCorner
	HitBottomRightCorner
)

var hitTestNames = [...]string{
	HitNone:               "None",
	HitContent:            "Content",
	HitTitleBarOrDragArea: "TitleBarOrDragArea",
	HitTopBorder:          "TopBorder",
	HitBottomBorder:       "BottomBorder",
	HitLeftBorder:         "LeftBorder",
	HitRightBorder:        "RightBorder",
	HitTopLeftCorner:      "TopLeftCorner",
	HitTopRightCorner:     "TopRightCorner",
	HitBottomLeftCorner:   "BottomLeftCorner",
	HitBottomRightCorner:  "BottomRightCorner",
}

func (ht HitTest) String() string {
	if int(ht) < len(hitTestNames) {
		return hitTestNames[ht]
	}
	return "HitTest(?)"
}

// IsBorderOrCorner reports whether ht denotes a resize handle.
func (ht HitTest) IsBorderOrCorner() bool {
	switch ht {
	case HitTopBorder, HitBottomBorder, HitLeftBorder, HitRightBorder,
		HitTopLeftCorner, HitTopRightCorner, HitBottomLeftCorner, HitBottomRightCorner:
		return true
	}
	return false
}

// x and y band classifications used by WindowHitTest.
type windowPartX uint8

const (
	partXLeftBorder windowPartX = iota
	partXContent
	partXRightBorder
)

type windowPartY uint8

const (
	partYTopBorder windowPartY = iota
	partYTitleBar
	partYContent
	partYBottomBorder
)

// WindowHitTest classifies pos (logical units, relative to the window's
// top-left) against a window of the given display size. Everything is rounded
// onto the device-pixel grid first, which also provides the sub-pixel
// tolerance at the boundary. A point in a single border band that is within
// three border thicknesses of a perpendicular edge is promoted to the nearest
// corner, so resize corners can be grabbed slightly off the exact pixels.
func WindowHitTest(size, pos Vec2, scale float64, m FrameMetrics) HitTest {
	w := roundPx(size.X * scale)
	h := roundPx(size.Y * scale)
	x := roundPx(pos.X * scale)
	y := roundPx(pos.Y * scale)
	if x < 0 || y < 0 || x > w || y > h {
		return HitNone
	}

	b := m.BorderThickness
	var partX windowPartX
	switch {
	case x <= b:
		partX = partXLeftBorder
	case x >= w-b:
		partX = partXRightBorder
	default:
		partX = partXContent
	}
	var partY windowPartY
	switch {
	case y <= b:
		partY = partYTopBorder
	case y >= h-b:
		partY = partYBottomBorder
	case y <= b+m.TitleBarHeight:
		partY = partYTitleBar
	default:
		partY = partYContent
	}

	leeway := 3 * b
	switch {
	case partX == partXLeftBorder && partY == partYTopBorder:
		return HitTopLeftCorner
	case partX == partXRightBorder && partY == partYTopBorder:
		return HitTopRightCorner
	case partX == partXLeftBorder && partY == partYBottomBorder:
		return HitBottomLeftCorner
	case partX == partXRightBorder && partY == partYBottomBorder:
		return HitBottomRightCorner
	case partX == partXLeftBorder:
		if y <= leeway {
			return HitTopLeftCorner
		}
		if y >= h-leeway {
			return HitBottomLeftCorner
		}
		return HitLeftBorder
	case partX == partXRightBorder:
		if y <= leeway {
			return HitTopRightCorner
		}
		if y >= h-leeway {
			return HitBottomRightCorner
		}
		return HitRightBorder
	case partY == partYTopBorder:
		if x <= leeway {
			return HitTopLeftCorner
		}
		if x >= w-leeway {
			return HitTopRightCorner
		}
		return HitTopBorder
	case partY == partYBottomBorder:
		if x <= leeway {
			return HitBottomLeftCorner
		}
		if x >= w-leeway {
			return HitBottomRightCorner
		}
		return HitBottomBorder
	case partY == partYTitleBar:
		return HitTitleBarOrDragArea
	default:
		return HitContent
	}
}

// CursorShape is a cursor hint derived from the hovered or dragged region.
type CursorShape uint8

const (
	CursorDefault    CursorShape = iota // no hint
	CursorMove                          // title bar / drag area
	CursorResizeNS                      // horizontal borders
	CursorResizeEW                      // vertical borders
	CursorResizeNWSE                    // top-left and bottom-right corners
	CursorResizeNESW                    // top-right and bottom-left corners
)

// HitTestCursor returns the cursor hint for a region.
func HitTestCursor(ht HitTest) CursorShape {
	switch ht {
	case HitTitleBarOrDragArea:
		return CursorMove
	case HitTopBorder, HitBottomBorder:
		return CursorResizeNS
	case HitLeftBorder, HitRightBorder:
		return CursorResizeEW
	case HitTopLeftCorner, HitBottomRightCorner:
		return CursorResizeNWSE
	case HitTopRightCorner, HitBottomLeftCorner:
		return CursorResizeNESW
	default:
		return CursorDefault
	}
}

// EbitenCursorShape returns the ebiten.CursorShapeType corresponding to this
// CursorShape.
func (c CursorShape) EbitenCursorShape() ebiten.CursorShapeType {
	switch c {
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorResizeNS:
		return ebiten.CursorShapeNSResize
	case CursorResizeEW:
		return ebiten.CursorShapeEWResize
	case CursorResizeNWSE:
		return ebiten.CursorShapeNWSEResize
	case CursorResizeNESW:
		return ebiten.CursorShapeNESWResize
	default:
		return ebiten.CursorShapeDefault
	}
}
