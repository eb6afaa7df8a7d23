package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/rocket/pkg/errors"
)

// fileConfig is the on-disk configuration. Every field is optional; flags
// given on the command line take precedence.
//
//	height = 16
//	palette = "america"
//	seed = 42
//	format = "text"
//	fill = false
//	parts = "/path/to/parts.toml"
type fileConfig struct {
	Height  *int    `toml:"height"`
	Palette *string `toml:"palette"`
	Seed    *uint64 `toml:"seed"`
	Format  *string `toml:"format"`
	Fill    *bool   `toml:"fill"`
	Parts   *string `toml:"parts"`
}

// loadConfig reads the config at path. When path is empty the default
// location is used and a missing file yields an empty config.
func loadConfig(path string) (fileConfig, string, error) {
	var cfg fileConfig
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, "", nil
		}
		path = filepath.Join(dir, configFileName)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, path, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
			}
			return cfg, "", nil
		}
		return cfg, path, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, path, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, path, nil
}

// apply copies config values into opts for every value the user did not set
// on the command line. A height counts as set when opts.heightSet is true,
// whether it came from the argument or the flag. It returns the seed to use,
// nil when neither source sets one.
func (cfg fileConfig) apply(opts *buildOpts, changed func(name string) bool) *uint64 {
	if cfg.Height != nil && !opts.heightSet {
		opts.height = *cfg.Height
		opts.heightSet = true
	}
	if cfg.Palette != nil && !changed("palette") {
		opts.palette = *cfg.Palette
	}
	if cfg.Format != nil && !changed("format") {
		opts.format = *cfg.Format
	}
	if cfg.Fill != nil && !changed("fill") {
		opts.fill = *cfg.Fill
	}
	if cfg.Parts != nil && !changed("parts") {
		opts.parts = *cfg.Parts
	}
	if changed("seed") {
		seed := opts.seed
		return &seed
	}
	return cfg.Seed
}
