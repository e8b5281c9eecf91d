package wicker

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ToRGBA converts the color to 8-bit RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// WhitePixel is a 1x1 white image used for solid-color fills (frame chrome,
// debug overlay lines).
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.ToRGBA())
}

// Vec2 is a 2D vector in logical units. The coordinate system has its origin
// at the top-left of the windowing area, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in logical units (position + size).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Px converts the rectangle to device-pixel units, rounding each component
// to the pixel grid. Drag and snap arithmetic operates on the result so that
// no floating-point drift accumulates across frames.
func (r Rect) Px(scale float64) RectPx {
	return RectPx{
		X: roundPx(r.X * scale),
		Y: roundPx(r.Y * scale),
		W: roundPx(r.W * scale),
		H: roundPx(r.H * scale),
	}
}

// RectPx is an axis-aligned rectangle in integer device pixels.
type RectPx struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge (X + W).
func (r RectPx) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge (Y + H).
func (r RectPx) Bottom() int { return r.Y + r.H }

// Logical converts the rectangle back to logical units.
func (r RectPx) Logical(scale float64) Rect {
	return Rect{
		X: float64(r.X) / scale,
		Y: float64(r.Y) / scale,
		W: float64(r.W) / scale,
		H: float64(r.H) / scale,
	}
}

// roundPx rounds a logical value that has already been scaled to device
// pixels onto the integer pixel grid.
func roundPx(v float64) int {
	return int(math.Round(v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
