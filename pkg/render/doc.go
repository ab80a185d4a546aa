// Package render hosts the genome visualization renderers.
//
// The [karyo] subpackage draws the karyotype-style view: one capsule-shaped
// track per chromosome, a gene-density heatmap clipped to the capsule, and a
// SNP-value line plot above each track.
//
// Key karyo subpackages:
//   - [karyo/heat]: Heatmap color scale and binning
//   - [karyo/layout]: Canvas geometry and track placement
//   - [karyo/sink]: SVG document assembly
//
// [karyo]: github.com/karyoplot/karyoplot/pkg/render/karyo
// [karyo/heat]: github.com/karyoplot/karyoplot/pkg/render/karyo/heat
// [karyo/layout]: github.com/karyoplot/karyoplot/pkg/render/karyo/layout
// [karyo/sink]: github.com/karyoplot/karyoplot/pkg/render/karyo/sink
package render
