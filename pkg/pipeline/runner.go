package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/karyoplot/karyoplot/pkg/genome"
	"github.com/karyoplot/karyoplot/pkg/render/karyo/heat"
	"github.com/karyoplot/karyoplot/pkg/render/karyo/layout"
	"github.com/karyoplot/karyoplot/pkg/render/karyo/sink"
)

// Runner executes the rendering pipeline. It is stateless apart from the
// logger; multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline. The context is
// checked between stages; the stages themselves have no suspension points.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	genes, snps, sum, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Chromosomes = genes.Len()
	result.Stats.GeneRecords = genes.Records()
	result.Stats.SNPRecords = snps.Records()

	r.Logger.Info("loaded datasets",
		"chromosomes", genes.Len(),
		"genes", genes.Records(),
		"snps", snps.Records(),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := layout.Build(genes, sum, opts.Geometry())
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Summary = sum
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed layout",
		"tracks", len(l.Tracks),
		"canvas", fmt.Sprintf("%.0fx%.0f", l.Width, l.Height),
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	scale, err := heat.NewScale(sum.GeneMean, sum.GeneStdev)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	svg, err := sink.RenderSVG(l, genes, snps, scale, sum.MaxSNPValue)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.SVG = svg
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered svg",
		"bytes", len(svg),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads both input tables and derives the global statistics.
func (r *Runner) Load(opts Options) (genes, snps *genome.Dataset, sum genome.Summary, err error) {
	genes, err = genome.ReadFile(opts.GenesPath)
	if err != nil {
		return nil, nil, genome.Summary{}, err
	}
	snps, err = genome.ReadFile(opts.SNPsPath)
	if err != nil {
		return nil, nil, genome.Summary{}, err
	}
	sum, err = genome.Summarize(genes, snps)
	if err != nil {
		return nil, nil, genome.Summary{}, err
	}
	return genes, snps, sum, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
