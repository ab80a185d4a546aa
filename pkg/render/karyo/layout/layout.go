// Package layout computes the track geometry for the genome visualization.
//
// Each chromosome occupies one horizontal track. Track widths are
// proportional to chromosome length (the longest chromosome spans the full
// drawable width), and tracks stack vertically in ascending numeric-suffix
// order. All coordinates are in SVG user units.
package layout

import (
	"github.com/karyoplot/karyoplot/pkg/errors"
	"github.com/karyoplot/karyoplot/pkg/genome"
)

// Default canvas geometry. Width is fixed by the output contract; the rest
// mirrors the proportions the visualization was designed around.
const (
	DefaultWidth        = 1200.0
	DefaultTrackHeight  = 14.0
	DefaultTrackSpacing = 120.0
	DefaultMarginTop    = 160.0
	DefaultMarginBottom = 100.0
	DefaultMarginSide   = 100.0
)

// Geometry holds the tunable canvas dimensions. The zero value is not
// usable; start from DefaultGeometry.
type Geometry struct {
	Width        float64 // total canvas width
	TrackHeight  float64 // height of a chromosome backbone
	TrackSpacing float64 // vertical gap between tracks
	MarginTop    float64
	MarginBottom float64
	MarginSide   float64
}

// DefaultGeometry returns the standard canvas dimensions.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        DefaultWidth,
		TrackHeight:  DefaultTrackHeight,
		TrackSpacing: DefaultTrackSpacing,
		MarginTop:    DefaultMarginTop,
		MarginBottom: DefaultMarginBottom,
		MarginSide:   DefaultMarginSide,
	}
}

// Validate checks that every dimension is positive and that the margins
// leave room to draw.
func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0, g.TrackHeight <= 0, g.TrackSpacing <= 0,
		g.MarginTop <= 0, g.MarginBottom <= 0, g.MarginSide <= 0:
		return errors.New(errors.ErrCodeInvalidGeometry, "all canvas dimensions must be positive")
	case g.DrawableWidth() <= 0:
		return errors.New(errors.ErrCodeInvalidGeometry,
			"side margins %g leave no drawable width on a %g-wide canvas", g.MarginSide, g.Width)
	}
	return nil
}

// DrawableWidth is the horizontal span available to the longest chromosome.
func (g Geometry) DrawableWidth() float64 {
	return g.Width - 2*g.MarginSide
}

// Track is the drawable lane for one chromosome.
type Track struct {
	Chrom  string
	Index  int     // position in sorted order, 0-based
	Y      float64 // top edge of the backbone
	Width  float64 // backbone width, proportional to Length
	Length int     // chromosome length in base pairs
}

// Baseline returns the y coordinate of the SNP plot baseline, 30 units above
// the backbone.
func (t Track) Baseline() float64 {
	return t.Y - 30
}

// Layout is the complete computed geometry for one render.
type Layout struct {
	Geometry
	Tracks    []Track // ascending numeric-suffix order
	MaxLength int     // longest chromosome, base pairs
	Height    float64 // computed canvas height
}

// Build derives the layout from the gene dataset and summary statistics.
// Chromosomes are those of the gene dataset, sorted by numeric suffix; a
// non-conforming name fails the build.
func Build(genes *genome.Dataset, sum genome.Summary, geom Geometry) (Layout, error) {
	if err := geom.Validate(); err != nil {
		return Layout{}, err
	}
	if genes.Len() == 0 {
		return Layout{}, errors.New(errors.ErrCodeEmptyDataset, "gene dataset has no chromosomes")
	}
	if sum.MaxLength <= 0 {
		return Layout{}, errors.New(errors.ErrCodeDegenerateScale,
			"max chromosome length must be positive, got %d", sum.MaxLength)
	}

	order, err := genome.SortChromosomes(genes.Chromosomes())
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Geometry:  geom,
		Tracks:    make([]Track, 0, len(order)),
		MaxLength: sum.MaxLength,
		Height:    float64(len(order))*(geom.TrackHeight+geom.TrackSpacing) + geom.MarginTop + geom.MarginBottom,
	}

	for i, chrom := range order {
		length, ok := sum.Lengths[chrom]
		if !ok || length <= 0 {
			return Layout{}, errors.New(errors.ErrCodeEmptyDataset,
				"no length recorded for chromosome %s", chrom)
		}
		l.Tracks = append(l.Tracks, Track{
			Chrom:  chrom,
			Index:  i,
			Y:      geom.MarginTop + float64(i)*(geom.TrackHeight+geom.TrackSpacing),
			Width:  geom.DrawableWidth() * float64(length) / float64(sum.MaxLength),
			Length: length,
		})
	}

	return l, nil
}
