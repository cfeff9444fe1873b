// Package config loads glyphwatch settings from glyphwatch.toml (or a
// YAML equivalent) and turns them into detector and renderer options.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/render"
	"glyphwatch/internal/script"
)

// Environment variables that override file settings.
const (
	EnvCacheCapacity = "GLYPHWATCH_CACHE_CAPACITY"
	EnvTieBreak      = "GLYPHWATCH_TIE_BREAK"
)

// Config is the on-disk configuration.
type Config struct {
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Script ScriptConfig `toml:"script" yaml:"script"`
	Render RenderConfig `toml:"render" yaml:"render"`

	// Path is the file the config was read from, "" for defaults.
	Path string `toml:"-" yaml:"-"`
}

type CacheConfig struct {
	Capacity int `toml:"capacity" yaml:"capacity"`
}

type ScriptConfig struct {
	TieBreak string `toml:"tie_break" yaml:"tie_break"`
	// ExtendedLatin folds the Latin Extended blocks into Basic Latin.
	ExtendedLatin bool `toml:"extended_latin" yaml:"extended_latin"`
	// Fold maps block names to block names, merged over the default table.
	Fold map[string]string `toml:"fold" yaml:"fold"`
}

type RenderConfig struct {
	Color       string `toml:"color" yaml:"color"`
	MarkerOpen  string `toml:"marker_open" yaml:"marker_open"`
	MarkerClose string `toml:"marker_close" yaml:"marker_close"`
}

// Default returns the built-in configuration.
func Default() *Config {
	ro := render.DefaultOptions()
	return &Config{
		Cache:  CacheConfig{Capacity: detect.DefaultCapacity},
		Script: ScriptConfig{TieBreak: detect.TieBreakLatin.String()},
		Render: RenderConfig{
			Color:       ro.Color,
			MarkerOpen:  ro.MarkerOpen,
			MarkerClose: ro.MarkerClose,
		},
	}
}

// ApplyEnvOverrides replaces file values with the GLYPHWATCH_* variables
// that are set.
func (c *Config) ApplyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvCacheCapacity); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheCapacity, err)
		}
		c.Cache.Capacity = n
	}
	if v, ok := os.LookupEnv(EnvTieBreak); ok && strings.TrimSpace(v) != "" {
		c.Script.TieBreak = v
	}
	return nil
}

// Folding builds the folding table: the default one, optionally the
// extended Latin table, then the Fold entries on top.
func (c *Config) Folding() (script.Folding, error) {
	f := script.DefaultFolding()
	if c.Script.ExtendedLatin {
		f = f.Merge(script.ExtendedLatinFolding())
	}
	if len(c.Script.Fold) == 0 {
		return f, nil
	}
	extra := make(script.Folding, len(c.Script.Fold))
	for from, to := range c.Script.Fold {
		src, ok := script.Lookup(from)
		if !ok {
			return nil, fmt.Errorf("unknown block %q", from)
		}
		dst, ok := script.Lookup(to)
		if !ok {
			return nil, fmt.Errorf("unknown block %q", to)
		}
		extra[src] = dst
	}
	f = f.Merge(extra)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// DetectOptions converts the config to detector options. Tracer and
// Observer are left for the caller.
func (c *Config) DetectOptions() (detect.Options, error) {
	opts := detect.DefaultOptions()
	f, err := c.Folding()
	if err != nil {
		return opts, err
	}
	tb, err := detect.ParseTieBreak(c.Script.TieBreak)
	if err != nil {
		return opts, err
	}
	opts.Capacity = c.Cache.Capacity
	opts.Folding = f
	opts.TieBreak = tb
	return opts, nil
}

// RenderOptions returns highlighter options for mode.
func (c *Config) RenderOptions(mode render.Mode) render.Options {
	return render.Options{
		Mode:        mode,
		Color:       c.Render.Color,
		MarkerOpen:  c.Render.MarkerOpen,
		MarkerClose: c.Render.MarkerClose,
	}
}
