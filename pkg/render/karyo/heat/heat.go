// Package heat maps gene values onto the fixed five-color heatmap palette.
//
// Values are clamped to a window of one standard deviation around the mean of
// all gene values, then binned linearly across the palette. The palette is a
// diverging-blue ramp and is intentionally not configurable.
package heat

import "github.com/karyoplot/karyoplot/pkg/errors"

// Palette is the fixed heatmap ramp, ordered light to dark.
var Palette = [5]string{"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061"}

// Bins is the number of color bins.
const Bins = len(Palette)

// Scale converts gene values into palette bin indices. Construct with
// NewScale so the clamp window is always non-degenerate.
type Scale struct {
	Min float64 // lower clamp, mean − stdev
	Max float64 // upper clamp, mean + stdev
}

// NewScale builds a scale clamping to [mean−stdev, mean+stdev].
// A non-positive stdev would collapse the window and divide by zero during
// binning, so it is rejected.
func NewScale(mean, stdev float64) (Scale, error) {
	if stdev <= 0 {
		return Scale{}, errors.New(errors.ErrCodeDegenerateScale,
			"gene value stdev must be positive, got %g", stdev)
	}
	return Scale{Min: mean - stdev, Max: mean + stdev}, nil
}

// Clamp limits v to the scale's window.
func (s Scale) Clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Bin returns the palette index for v: the clamped value mapped linearly
// onto [0, Bins). Values at or above the upper clamp land in the last bin,
// values at or below the lower clamp in the first. The index is floored at 0
// so float rounding near the lower clamp can never go negative.
func (s Scale) Bin(v float64) int {
	clamped := s.Clamp(v)
	idx := int((clamped - s.Min) / (s.Max - s.Min) * float64(Bins))
	if idx >= Bins {
		idx = Bins - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Color returns the palette color for v.
func (s Scale) Color(v float64) string {
	return Palette[s.Bin(v)]
}
