package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/karyoplot/karyoplot/pkg/errors"
	"github.com/karyoplot/karyoplot/pkg/pipeline"
)

// renderConfig mirrors the optional TOML geometry file:
//
//	[canvas]
//	width = 1200
//
//	[track]
//	height = 14
//	spacing = 120
//
//	[margin]
//	top = 160
//	bottom = 100
//	side = 100
//
// Every key is optional; omitted keys keep their defaults.
type renderConfig struct {
	Canvas struct {
		Width float64 `toml:"width"`
	} `toml:"canvas"`
	Track struct {
		Height  float64 `toml:"height"`
		Spacing float64 `toml:"spacing"`
	} `toml:"track"`
	Margin struct {
		Top    float64 `toml:"top"`
		Bottom float64 `toml:"bottom"`
		Side   float64 `toml:"side"`
	} `toml:"margin"`
}

// loadConfig parses and validates a geometry config file.
func loadConfig(path string) (*renderConfig, error) {
	var cfg renderConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in %s: %v", path, undecoded)
	}

	for _, v := range []float64{
		cfg.Canvas.Width,
		cfg.Track.Height, cfg.Track.Spacing,
		cfg.Margin.Top, cfg.Margin.Bottom, cfg.Margin.Side,
	} {
		if v < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"negative dimension in %s", path)
		}
	}

	return &cfg, nil
}

// apply copies the set (non-zero) values onto the pipeline options.
func (c *renderConfig) apply(opts *pipeline.Options) {
	if c.Canvas.Width > 0 {
		opts.Width = c.Canvas.Width
	}
	if c.Track.Height > 0 {
		opts.TrackHeight = c.Track.Height
	}
	if c.Track.Spacing > 0 {
		opts.TrackSpacing = c.Track.Spacing
	}
	if c.Margin.Top > 0 {
		opts.MarginTop = c.Margin.Top
	}
	if c.Margin.Bottom > 0 {
		opts.MarginBottom = c.Margin.Bottom
	}
	if c.Margin.Side > 0 {
		opts.MarginSide = c.Margin.Side
	}
}
