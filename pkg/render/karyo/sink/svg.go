// Package sink assembles the final SVG document from a computed layout and
// the loaded datasets.
//
// The document is built by writing elements into buffers in a fixed order,
// so identical inputs always produce identical bytes. Clip paths are
// collected into a single <defs> block, one uniquely named clipPath per
// chromosome, so heatmap rectangles never paint outside the capsule outline.
package sink

import (
	"bytes"
	"fmt"

	"github.com/karyoplot/karyoplot/pkg/errors"
	"github.com/karyoplot/karyoplot/pkg/genome"
	"github.com/karyoplot/karyoplot/pkg/render/karyo/heat"
	"github.com/karyoplot/karyoplot/pkg/render/karyo/layout"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

	// snpBandHeight is the vertical span of the SNP value band above each
	// track's baseline.
	snpBandHeight = 100.0

	// Distance ruler and legend dimensions.
	rulerTicks   = 6
	legendWidth  = 100.0
	legendHeight = 20.0

	fontSize = 20
)

// RenderSVG renders the complete visualization. Tracks are drawn in layout
// order (ascending numeric suffix); intervals and SNP points are drawn in
// file order.
//
// Every chromosome in the layout must have SNP records; a missing polyline
// would leave the track's axis unanchored, so the whole render fails instead
// of emitting partial output.
func RenderSVG(l layout.Layout, genes, snps *genome.Dataset, scale heat.Scale, maxSNPValue float64) ([]byte, error) {
	if maxSNPValue <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateScale,
			"max snp value must be positive, got %g", maxSNPValue)
	}

	var defs, body bytes.Buffer
	for _, track := range l.Tracks {
		if err := renderTrack(&defs, &body, l, track, genes, snps, scale, maxSNPValue); err != nil {
			return nil, err
		}
	}
	renderRuler(&body, l)
	renderLegend(&body, l)

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		ff(l.Width), ff(l.Height), ff(l.Width), ff(l.Height))
	buf.WriteString(`  <rect x="0" y="0" width="100%" height="100%" fill="white"/>` + "\n")
	buf.WriteString("  <defs>\n")
	buf.Write(defs.Bytes())
	buf.WriteString("  </defs>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// renderTrack draws one chromosome: capsule outline, clipped heatmap, SNP
// polyline, axis lines, and the name label.
func renderTrack(defs, body *bytes.Buffer, l layout.Layout, t layout.Track,
	genes, snps *genome.Dataset, scale heat.Scale, maxSNPValue float64) error {

	geneIvs := genes.Intervals(t.Chrom)
	if len(geneIvs) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "no gene records for chromosome %s", t.Chrom)
	}
	snpIvs := snps.Intervals(t.Chrom)
	if len(snpIvs) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "no snp records for chromosome %s", t.Chrom)
	}

	capsule := capsulePath(l.MarginSide, t.Y, t.Width, l.TrackHeight)

	// Backbone outline and its clip region.
	fmt.Fprintf(defs, `    <clipPath id="clip-%s"><path d="%s"/></clipPath>`+"\n", t.Chrom, capsule)
	fmt.Fprintf(body, `  <path d="%s" fill="none" stroke="black" stroke-width="1"/>`+"\n", capsule)

	// Heatmap rectangles, clipped to the capsule, painted in file order.
	fmt.Fprintf(body, `  <g clip-path="url(#clip-%s)">`+"\n", t.Chrom)
	for _, iv := range geneIvs {
		x := l.MarginSide + posOffset(iv.Start, t)
		w := float64(iv.End-iv.Start+1) / float64(t.Length) * t.Width
		if w < 1 {
			w = 1
		}
		fmt.Fprintf(body, `    <rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="none"/>`+"\n",
			ff(x), ff(t.Y), ff(w), ff(l.TrackHeight), scale.Color(iv.Value))
	}
	body.WriteString("  </g>\n")

	// SNP polyline in file order, scaled into the band above the backbone.
	baseline := t.Baseline()
	var topY float64
	var points bytes.Buffer
	for i, iv := range snpIvs {
		x := l.MarginSide + posOffset(iv.Start, t)
		y := baseline - iv.Value/maxSNPValue*snpBandHeight
		if i == 0 || y < topY {
			topY = y
		}
		if i > 0 {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%s,%s", ff(x), ff(y))
	}
	fmt.Fprintf(body, `  <polyline points="%s" fill="none" stroke="red" stroke-width="1.5"/>`+"\n", points.String())

	// Value axis from the topmost SNP point down to the baseline, then the
	// baseline itself across the chromosome.
	axisX := l.MarginSide - 10
	fmt.Fprintf(body, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="1"/>`+"\n",
		ff(axisX), ff(topY), ff(axisX), ff(baseline))
	fmt.Fprintf(body, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="1"/>`+"\n",
		ff(l.MarginSide), ff(baseline), ff(l.MarginSide+t.Width), ff(baseline))

	// Right-aligned name label, vertically centered on the backbone.
	fmt.Fprintf(body, `  <text x="%s" y="%s" font-size="%d" fill="black" text-anchor="end">%s</text>`+"\n",
		ff(l.MarginSide-20), ff(t.Y+l.TrackHeight/2+5), fontSize, t.Chrom)

	return nil
}

// renderRuler draws the megabase distance scale across the drawable width,
// near the bottom edge.
func renderRuler(body *bytes.Buffer, l layout.Layout) {
	scaleY := l.Height - l.MarginBottom/2
	for i := 0; i < rulerTicks; i++ {
		x := l.MarginSide + float64(i)*l.DrawableWidth()/float64(rulerTicks-1)
		mb := float64(i) * float64(l.MaxLength) / float64(rulerTicks-1) / 1e6
		fmt.Fprintf(body, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="1"/>`+"\n",
			ff(x), ff(scaleY), ff(x), ff(scaleY+5))
		fmt.Fprintf(body, `  <text x="%s" y="%s" font-size="%d" text-anchor="middle">%.1f Mb</text>`+"\n",
			ff(x), ff(scaleY+20), fontSize, mb)
	}
}

// renderLegend draws the five palette swatches with Min/Max labels near the
// top-right corner.
func renderLegend(body *bytes.Buffer, l layout.Layout) {
	left := l.Width - l.MarginSide - legendWidth
	y := l.MarginTop / 2
	segment := legendWidth / float64(heat.Bins)

	for i, color := range heat.Palette {
		fmt.Fprintf(body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="none"/>`+"\n",
			ff(left+float64(i)*segment), ff(y), ff(segment), ff(legendHeight), color)
	}

	labelY := y + legendHeight + 15
	fmt.Fprintf(body, `  <text x="%s" y="%s" font-size="%d" text-anchor="start">Min</text>`+"\n",
		ff(left), ff(labelY), fontSize)
	fmt.Fprintf(body, `  <text x="%s" y="%s" font-size="%d" text-anchor="end">Max</text>`+"\n",
		ff(l.Width-l.MarginSide), ff(labelY), fontSize)
}

// capsulePath builds the rounded backbone outline: a rectangle whose ends
// are semicircular caps of radius height/2.
func capsulePath(x, y, width, height float64) string {
	r := height / 2
	return fmt.Sprintf("M %s,%s L %s,%s A %s,%s 0 0 1 %s,%s L %s,%s A %s,%s 0 0 1 %s,%s Z",
		ff(x+r), ff(y),
		ff(x+width-r), ff(y),
		ff(r), ff(r), ff(x+width-r), ff(y+height),
		ff(x+r), ff(y+height),
		ff(r), ff(r), ff(x+r), ff(y))
}

// posOffset converts a 1-based genomic position to a horizontal offset
// within the track.
func posOffset(pos int, t layout.Track) float64 {
	return float64(pos-1) / float64(t.Length) * t.Width
}

// ff formats a coordinate with two decimals, keeping output byte-stable
// across runs and platforms.
func ff(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
