package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/karyoplot/karyoplot/pkg/errors"
	"github.com/karyoplot/karyoplot/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "karyoplot.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 1600

[track]
height = 20
spacing = 140

[margin]
top = 180
bottom = 120
side = 90
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	var opts pipeline.Options
	cfg.apply(&opts)

	if opts.Width != 1600 {
		t.Errorf("Width = %v, want 1600", opts.Width)
	}
	if opts.TrackHeight != 20 || opts.TrackSpacing != 140 {
		t.Errorf("track = %v/%v, want 20/140", opts.TrackHeight, opts.TrackSpacing)
	}
	if opts.MarginTop != 180 || opts.MarginBottom != 120 || opts.MarginSide != 90 {
		t.Errorf("margins = %v/%v/%v, want 180/120/90",
			opts.MarginTop, opts.MarginBottom, opts.MarginSide)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "[canvas]\nwidth = 900\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	var opts pipeline.Options
	cfg.apply(&opts)

	if opts.Width != 900 {
		t.Errorf("Width = %v, want 900", opts.Width)
	}
	// Unset keys must stay zero so pipeline defaults apply.
	if opts.TrackHeight != 0 || opts.MarginTop != 0 {
		t.Errorf("unset keys should stay zero, got height=%v top=%v",
			opts.TrackHeight, opts.MarginTop)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid toml", "[canvas\nwidth = ???"},
		{"unknown key", "[canvas]\nwidht = 1200\n"},
		{"unknown section", "[paper]\nsize = 4\n"},
		{"negative dimension", "[margin]\ntop = -10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := loadConfig(path)
			if err == nil {
				t.Fatal("loadConfig() expected error, got nil")
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
				t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("loadConfig() expected error for missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}
