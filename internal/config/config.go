// Package config loads ashconfig.toml, the project-level settings file a
// directory of Ash source files may carry. Parsing follows a
// decode-then-validate pattern: decode into a private struct, then reject
// missing required keys by checking toml.MetaData.IsDefined rather than
// trusting zero values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrEntryMissing indicates ashconfig.toml has no [package].entry.
var ErrEntryMissing = errors.New("missing [package].entry")

// Config is a project's parsed ashconfig.toml.
type Config struct {
	// Entry is the path, relative to the manifest, to the file containing
	// 'main'.
	Entry string
	// EmitCpp, when true, makes `ash check` also run the emitter and write
	// the generated C++ next to Entry.
	EmitCpp bool
	// ManagedThresholdWarn holds [managed].threshold_warn as read from the
	// file. Nothing in the checker or the CLI reads it, so it produces no
	// warning.
	ManagedThresholdWarn int
	// Color overrides terminal auto-detection: "auto", "on", or "off".
	Color string
}

type fileConfig struct {
	Package struct {
		Entry string `toml:"entry"`
	} `toml:"package"`
	Emit struct {
		Cpp bool `toml:"cpp"`
	} `toml:"emit"`
	Managed struct {
		ThresholdWarn int `toml:"threshold_warn"`
	} `toml:"managed"`
	Output struct {
		Color string `toml:"color"`
	} `toml:"output"`
}

// Default returns the configuration used when no ashconfig.toml is found.
func Default() Config {
	return Config{Color: "auto"}
}

// Load parses path as an ashconfig.toml file.
func Load(path string) (Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "entry") || fc.Package.Entry == "" {
		return Config{}, fmt.Errorf("%s: %w", path, ErrEntryMissing)
	}

	cfg := Config{
		Entry:                fc.Package.Entry,
		EmitCpp:              fc.Emit.Cpp,
		ManagedThresholdWarn: fc.Managed.ThresholdWarn,
		Color:                fc.Output.Color,
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}

// Find walks upward from startDir looking for ashconfig.toml, the way the
// pack's project manifests locate their own config file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ashconfig.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
