package config

import (
	"path/filepath"

	"github.com/spf13/pflag"

	"baguette/pkg/utils"
)

// Flags holds the command-line overrides every front end shares.
type Flags struct {
	fs              *pflag.FlagSet
	path            string
	scale           int
	strict          bool
	paintBackground bool
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.path, "config", "c", "", "YAML settings file")
	fs.IntVarP(&f.scale, "scale", "s", 1, "integer upscale factor (1-8)")
	fs.BoolVar(&f.strict, "strict", false, "treat malformed color components as errors")
	fs.BoolVar(&f.paintBackground, "paint-background", false, "allow pixels in the current background color")
	return f
}

// Load reads the settings file named by --config and applies any flag the
// user set explicitly on top of it.
func (f *Flags) Load() (Config, error) {
	cfg, err := Load(f.path)
	if err != nil {
		return cfg, err
	}
	if f.fs.Changed("scale") {
		cfg.Scale = f.scale
	}
	if f.fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if f.fs.Changed("paint-background") {
		cfg.PaintBackground = f.paintBackground
	}
	return cfg, cfg.Validate()
}

// OutputPath is where the PNG for recipePath goes.
func (c Config) OutputPath(recipePath string) string {
	out := utils.ReplaceExt(recipePath, ".png")
	if c.OutputDir == "" {
		return out
	}
	return filepath.Join(c.OutputDir, filepath.Base(out))
}
