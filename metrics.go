package wicker

import "math"

// Base frame measurements in logical units. FrameMetrics scales these onto
// the device-pixel grid for the current display-scale factor.
const (
	baseBorderThickness   = 4.0
	baseTitleBarHeight    = 24.0
	baseTitleBarGap       = 2.0
	baseCollapsedWinWidth = 160.0
	baseButtonSize        = 16.0
	baseButtonPad         = 4.0
	baseSnapThreshold     = 12.0
	baseSnapMargin        = 8.0
)

// FrameMetrics holds the derived pixel measurements shared by every window:
// chrome thicknesses, the collapsed footprint, title-button geometry, and the
// snapping distances. All values are integer device pixels. A WindowingState
// recomputes its metrics whenever the display-scale factor changes; they are
// read-only for the rest of the frame.
type FrameMetrics struct {
	BorderThickness   int
	TitleBarHeight    int
	TitleBarGap       int
	CollapsedWinWidth int
	ButtonSize        int
	ButtonPad         int
	SnapThreshold     int
	SnapMargin        int
}

// ComputeFrameMetrics derives the metrics for the given display-scale factor.
func ComputeFrameMetrics(hidpi float64) FrameMetrics {
	return FrameMetrics{
		BorderThickness:   scaleMetric(baseBorderThickness, hidpi),
		TitleBarHeight:    scaleMetric(baseTitleBarHeight, hidpi),
		TitleBarGap:       scaleMetric(baseTitleBarGap, hidpi),
		CollapsedWinWidth: scaleMetric(baseCollapsedWinWidth, hidpi),
		ButtonSize:        scaleMetric(baseButtonSize, hidpi),
		ButtonPad:         scaleMetric(baseButtonPad, hidpi),
		SnapThreshold:     scaleMetric(baseSnapThreshold, hidpi),
		SnapMargin:        scaleMetric(baseSnapMargin, hidpi),
	}
}

// CollapsedWinHeight returns the display height of a collapsed window:
// chrome only, no content.
func (m FrameMetrics) CollapsedWinHeight() int {
	return m.TitleBarHeight + 2*m.BorderThickness
}

func scaleMetric(base, hidpi float64) int {
	v := int(math.Round(base * hidpi))
	if v < 1 {
		v = 1
	}
	return v
}
