// Package pipeline provides the core rendering pipeline for karyoplot.
//
// This package implements the complete load → layout → render flow behind
// the CLI. By centralizing this logic, the command surface stays thin and
// the pipeline is testable without touching flags or terminal output.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the gene and SNP interval tables and derive the global
//     statistics (mean/stdev of gene values, max SNP value, chromosome
//     lengths).
//  2. Layout: Compute the per-chromosome track geometry and canvas size.
//  3. Render: Assemble the SVG document.
//
// Stages never recover from failure: any malformed record, empty dataset,
// or degenerate denominator aborts the run with a coded error and no
// partial output is written.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    GenesPath: "AllChrGenes2.cir",
//	    SNPsPath:  "CoverageCa2.cir",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.svg", result.SVG, 0o644)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/karyoplot/karyoplot/pkg/errors"
	"github.com/karyoplot/karyoplot/pkg/genome"
	"github.com/karyoplot/karyoplot/pkg/render/karyo/layout"
)

// Default input and output names. These reproduce the filenames the tool
// has historically been run against; the CLI exposes them as flag defaults.
const (
	DefaultGenesPath  = "AllChrGenes2.cir"
	DefaultSNPsPath   = "CoverageCa2.cir"
	DefaultOutputPath = "GenesCoverage_visualization.svg"
)

// Options contains all configuration for the rendering pipeline.
type Options struct {
	// Input tables: whitespace-delimited <chrom> <start> <end> <value> rows.
	GenesPath string
	SNPsPath  string

	// Canvas geometry. Zero values are replaced by the defaults from the
	// layout package.
	Width        float64
	TrackHeight  float64
	TrackSpacing float64
	MarginTop    float64
	MarginBottom float64
	MarginSide   float64

	// Runtime options (not part of the render contract).
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the rendered document.
	SVG []byte

	// Layout is the computed track geometry, kept for reporting.
	Layout layout.Layout

	// Summary holds the global dataset statistics the render was scaled by.
	Summary genome.Summary

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Chromosomes int
	GeneRecords int
	SNPRecords  int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.GenesPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "genes path is required")
	}
	if o.SNPsPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "snps path is required")
	}

	if o.Width == 0 {
		o.Width = layout.DefaultWidth
	}
	if o.TrackHeight == 0 {
		o.TrackHeight = layout.DefaultTrackHeight
	}
	if o.TrackSpacing == 0 {
		o.TrackSpacing = layout.DefaultTrackSpacing
	}
	if o.MarginTop == 0 {
		o.MarginTop = layout.DefaultMarginTop
	}
	if o.MarginBottom == 0 {
		o.MarginBottom = layout.DefaultMarginBottom
	}
	if o.MarginSide == 0 {
		o.MarginSide = layout.DefaultMarginSide
	}
	if err := o.Geometry().Validate(); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Geometry assembles the layout geometry from the options.
func (o *Options) Geometry() layout.Geometry {
	return layout.Geometry{
		Width:        o.Width,
		TrackHeight:  o.TrackHeight,
		TrackSpacing: o.TrackSpacing,
		MarginTop:    o.MarginTop,
		MarginBottom: o.MarginBottom,
		MarginSide:   o.MarginSide,
	}
}
