package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/karyoplot/karyoplot/pkg/errors"
	"github.com/karyoplot/karyoplot/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	genes  string // gene interval table path
	snps   string // SNP value table path
	output string // destination SVG path
	config string // optional TOML geometry config
}

// newRenderCmd creates the render command for generating the genome SVG.
//
// Default settings match the classic input filenames, so running the
// command without flags in a directory holding the two tables is enough.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		genes:  pipeline.DefaultGenesPath,
		snps:   pipeline.DefaultSNPsPath,
		output: pipeline.DefaultOutputPath,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render gene density and SNP coverage to a single SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.genes, "genes", "g", opts.genes, "gene table (<chrom> <start> <end> <value> per line)")
	cmd.Flags().StringVarP(&opts.snps, "snps", "s", opts.snps, "SNP table (<chrom> <start> <end> <value> per line)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output SVG file")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file overriding canvas geometry")

	return cmd
}

// runRender executes the full pipeline and writes the SVG document.
func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts := pipeline.Options{
		GenesPath: opts.genes,
		SNPsPath:  opts.snps,
		Logger:    logger,
	}
	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg.apply(&popts)
		logger.Debugf("Applied config %s", opts.config)
	}

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, result.SVG, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", opts.output)
	}
	prog.done(fmt.Sprintf("Rendered %d chromosomes", result.Stats.Chromosomes))

	printSuccess("Generated genome visualization")
	printFile(opts.output)
	printStats(result.Stats.Chromosomes, result.Stats.GeneRecords, result.Stats.SNPRecords)
	printDetail("canvas %.0fx%.0f in %s",
		result.Layout.Width, result.Layout.Height, time.Since(prog.start).Round(time.Millisecond))

	return nil
}
