package wicker

import "testing"

func TestComputeFrameMetrics(t *testing.T) {
	tests := []struct {
		name  string
		hidpi float64
		want  FrameMetrics
	}{
		{
			name:  "scale 1.0",
			hidpi: 1.0,
			want: FrameMetrics{
				BorderThickness:   4,
				TitleBarHeight:    24,
				TitleBarGap:       2,
				CollapsedWinWidth: 160,
				ButtonSize:        16,
				ButtonPad:         4,
				SnapThreshold:     12,
				SnapMargin:        8,
			},
		},
		{
			name:  "scale 2.0",
			hidpi: 2.0,
			want: FrameMetrics{
				BorderThickness:   8,
				TitleBarHeight:    48,
				TitleBarGap:       4,
				CollapsedWinWidth: 320,
				ButtonSize:        32,
				ButtonPad:         8,
				SnapThreshold:     24,
				SnapMargin:        16,
			},
		},
		{
			name:  "scale 1.5",
			hidpi: 1.5,
			want: FrameMetrics{
				BorderThickness:   6,
				TitleBarHeight:    36,
				TitleBarGap:       3,
				CollapsedWinWidth: 240,
				ButtonSize:        24,
				ButtonPad:         6,
				SnapThreshold:     18,
				SnapMargin:        12,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeFrameMetrics(tt.hidpi); got != tt.want {
				t.Errorf("ComputeFrameMetrics(%v) = %+v, want %+v", tt.hidpi, got, tt.want)
			}
		})
	}
}

func TestComputeFrameMetricsNeverZero(t *testing.T) {
	m := ComputeFrameMetrics(0.05)
	if m.BorderThickness < 1 || m.TitleBarGap < 1 || m.SnapMargin < 1 {
		t.Errorf("tiny scale produced a zero metric: %+v", m)
	}
}

func TestCollapsedWinHeight(t *testing.T) {
	m := ComputeFrameMetrics(1.0)
	if got, want := m.CollapsedWinHeight(), 32; got != want {
		t.Errorf("CollapsedWinHeight() = %d, want %d", got, want)
	}
}
