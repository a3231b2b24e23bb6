// Package config loads the .reparse.yaml configuration file.
package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up by Discover.
const FileName = ".reparse.yaml"

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Check CheckConfig `yaml:"check"`
	LSP   LSPConfig   `yaml:"lsp"`
}

type LogConfig struct {
	// Verbosity follows commonlog: 0 logs notices, 1 info, 2 and above
	// debug. Negative values silence warnings and then errors.
	Verbosity int `yaml:"verbosity"`
	// File receives log output instead of stderr when set.
	File string `yaml:"file"`
}

// CheckConfig drives the randomized equivalence check of `reparse check`.
type CheckConfig struct {
	// Include holds doublestar patterns selecting the files to check.
	Include   []string `yaml:"include"`
	Edits     int      `yaml:"edits"`
	Seed      uint64   `yaml:"seed"`
	MaxInsert int      `yaml:"maxInsert"`
	MaxDelete int      `yaml:"maxDelete"`
}

type LSPConfig struct {
	// Verify compares every incremental parse against a full parse and logs
	// differences. Slow; meant for debugging the server.
	Verify bool `yaml:"verify"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{Verbosity: 0},
		Check: CheckConfig{
			Include:   []string{"**/*.java"},
			Edits:     100,
			Seed:      1,
			MaxInsert: 16,
			MaxDelete: 16,
		},
	}
}

// Load reads the configuration at path on top of the defaults. A missing file
// or an empty path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", path)
	}
	return cfg, nil
}

// Discover returns the path of the nearest configuration file in dir or one
// of its parents, or "" if there is none.
func Discover(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (c *Config) Validate() error {
	if c.Check.Edits < 0 {
		return errors.Newf("check.edits must not be negative, got %d", c.Check.Edits)
	}
	if c.Check.MaxInsert < 0 || c.Check.MaxDelete < 0 {
		return errors.New("check.maxInsert and check.maxDelete must not be negative")
	}
	for _, pattern := range c.Check.Include {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Newf("check.include: invalid pattern %q", pattern)
		}
	}
	return nil
}

// Matches reports whether path, relative to the directory being checked, is
// selected by the check.include patterns.
func (c *CheckConfig) Matches(path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range c.Include {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
