// Package cli implements the karyoplot command-line interface.
//
// The CLI is a thin layer over pkg/pipeline: it parses flags and the
// optional TOML geometry config, runs the render pipeline, and writes the
// resulting SVG. It is built using cobra with verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
//   - render: Load the gene and SNP tables and generate the SVG document
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/karyoplot/karyoplot/pkg/buildinfo"
)

// Execute runs the karyoplot CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "karyoplot",
		Short:        "Karyoplot renders genome-wide gene-density heatmaps with SNP overlays",
		Long:         `Karyoplot draws each chromosome as a length-proportional capsule, fills it with a gene-density heatmap, and overlays a SNP-value line plot, producing a single SVG document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
