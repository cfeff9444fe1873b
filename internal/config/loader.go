package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are the config names looked up in each directory, in order.
var FileNames = []string{"glyphwatch.toml", "glyphwatch.yaml", "glyphwatch.yml"}

// Find walks from startDir up to the filesystem root and returns the
// first config file found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFile reads path over the defaults. The format is chosen by
// extension: .yaml/.yml is YAML, anything else TOML. Unknown keys are
// rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// пустой файл: io.EOF, остаются значения по умолчанию
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	cfg.Path = path
	return cfg, nil
}

// Load resolves the effective configuration. An explicit path must
// exist; otherwise the config is discovered from startDir, falling back
// to the defaults. Environment overrides are applied last and the result
// is validated.
func Load(explicit, startDir string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch {
	case explicit != "":
		cfg, err = LoadFile(explicit)
	default:
		path, ok, ferr := Find(startDir)
		if ferr != nil {
			return nil, ferr
		}
		if ok {
			cfg, err = LoadFile(path)
		} else {
			cfg = Default()
		}
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
