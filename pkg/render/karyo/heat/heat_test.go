package heat

import (
	"math"
	"testing"

	"github.com/karyoplot/karyoplot/pkg/errors"
)

func TestNewScale(t *testing.T) {
	s, err := NewScale(10, 2)
	if err != nil {
		t.Fatalf("NewScale error: %v", err)
	}
	if s.Min != 8 || s.Max != 12 {
		t.Errorf("Scale = [%g, %g], want [8, 12]", s.Min, s.Max)
	}
}

func TestNewScaleDegenerate(t *testing.T) {
	for _, stdev := range []float64{0, -1} {
		if _, err := NewScale(10, stdev); !errors.Is(err, errors.ErrCodeDegenerateScale) {
			t.Errorf("NewScale(10, %g) error = %v, want DEGENERATE_SCALE", stdev, err)
		}
	}
}

func TestBin(t *testing.T) {
	// Window [8, 12], bin width 0.8.
	s, err := NewScale(10, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"far below lower clamp", -100, 0},
		{"at lower clamp", 8, 0},
		{"inside first bin", 8.5, 0},
		{"start of second bin", 8.8, 1},
		{"middle bin", 10.0, 2},
		{"fourth bin", 11.1, 3},
		{"just under upper clamp", 11.99, 4},
		{"at upper clamp", 12, 4},
		{"above upper clamp", 1e9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Bin(tt.value); got != tt.want {
				t.Errorf("Bin(%g) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestBinHandComputed(t *testing.T) {
	// Ten gene values including 5.0; mean and sample stdev recomputed below
	// by hand so the expected bin is independent of the stats library.
	values := []float64{5.0, 4.0, 6.0, 7.0, 5.0, 6.0, 4.0, 7.0, 5.0, 6.0}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	stdev := math.Sqrt(sq / float64(len(values)-1))

	s, err := NewScale(mean, stdev)
	if err != nil {
		t.Fatal(err)
	}

	// mean = 5.5, stdev ≈ 1.0801, window ≈ [4.4199, 6.5801].
	// (5.0 − 4.4199) / (6.5801 − 4.4199) · 5 ≈ 1.3427 → bin 1.
	if got := s.Bin(5.0); got != 1 {
		t.Errorf("Bin(5.0) = %d, want 1 (window [%g, %g])", got, s.Min, s.Max)
	}
}

func TestColor(t *testing.T) {
	s, err := NewScale(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Color(-5); got != Palette[0] {
		t.Errorf("Color(-5) = %s, want lightest %s", got, Palette[0])
	}
	if got := s.Color(5); got != Palette[4] {
		t.Errorf("Color(5) = %s, want darkest %s", got, Palette[4])
	}
}
