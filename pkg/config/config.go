// Package config reads the optional shieldicon.toml file.
//
// Every key is optional and command-line flags take precedence over the
// file. Geometry, palettes and search constants are not configurable; the
// file only says where things are read from and written to.
//
//	background = "public/ai_background.png"
//	font = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
//	seed = 42
//
//	[[outputs]]
//	path = "public/icon-512.png"
//	size = 512
//
//	[[outputs]]
//	path = "public/icon-192.png"
//	size = 192
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shieldicon/pkg/errors"
	"github.com/matzehuels/shieldicon/pkg/pipeline"
)

// DefaultFile is read when no --config flag is given and it exists.
const DefaultFile = "shieldicon.toml"

// File mirrors the TOML document.
type File struct {
	Background string            `toml:"background"`
	Font       string            `toml:"font"`
	Seed       uint64            `toml:"seed"`
	Outputs    []pipeline.Output `toml:"outputs"`
}

// Load decodes path. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	for _, out := range f.Outputs {
		if err := errors.ValidateOutputPath(out.Path); err != nil {
			return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
		}
		if err := errors.ValidateSize(out.Size); err != nil {
			return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
		}
	}
	return f, nil
}

// Discover loads path if set, otherwise DefaultFile when present. It returns
// the path actually read ("" when none).
func Discover(path string) (File, string, error) {
	if path != "" {
		f, err := Load(path)
		return f, path, err
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		return File{}, "", nil
	}
	f, err := Load(DefaultFile)
	return f, DefaultFile, err
}

// Apply copies the set values of f into opts, leaving fields that are
// already set untouched.
func (f File) Apply(opts *pipeline.Options) {
	if opts.Background == "" {
		opts.Background = f.Background
	}
	if opts.FontPath == "" {
		opts.FontPath = f.Font
	}
	if opts.Seed == 0 {
		opts.Seed = f.Seed
	}
	if len(opts.Outputs) == 0 && len(f.Outputs) > 0 {
		opts.Outputs = append([]pipeline.Output(nil), f.Outputs...)
	}
}
