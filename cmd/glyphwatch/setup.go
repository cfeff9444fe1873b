package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"glyphwatch/internal/config"
	"glyphwatch/internal/detect"
	"glyphwatch/internal/render"
	"glyphwatch/internal/trace"
)

// colorEnabled resolves the global --color flag for output written to f.
func colorEnabled(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(colorFlag)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}

func setColor(on bool) {
	color.NoColor = !on
}

// loadConfig reads --config, or discovers glyphwatch.toml from the
// working directory upwards.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	end := timer.Begin("config")
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}
	cfg, err := config.Load(explicit, wd)
	if err != nil {
		end("failed")
		return nil, fmt.Errorf("config: %w", err)
	}
	end(configSource(cfg))
	trace.Point(trace.FromContext(cmd.Context()), trace.ScopeDriver, "config", configSource(cfg))
	return cfg, nil
}

func configSource(cfg *config.Config) string {
	if cfg.Path == "" {
		return "defaults"
	}
	return cfg.Path
}

// newDetector builds the shared detector from cfg. The tracer comes from
// the command context.
func newDetector(cmd *cobra.Command, cfg *config.Config, obs detect.Observer) (*detect.Detector, error) {
	opts, err := cfg.DetectOptions()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts.Tracer = trace.FromContext(cmd.Context())
	opts.Observer = obs
	return detect.New(opts)
}

// newHighlighter picks ANSI colour when colour is enabled and bracket
// markup otherwise, so marks stay visible in a pipe.
func newHighlighter(cmd *cobra.Command, cfg *config.Config, forceMarkup bool) (*render.Highlighter, error) {
	useColor, err := colorEnabled(cmd, os.Stdout)
	if err != nil {
		return nil, err
	}
	mode := render.ModeMarkup
	if useColor && !forceMarkup {
		mode = render.ModeANSI
	}
	return render.NewHighlighter(cfg.RenderOptions(mode))
}
