package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"glyphwatch/internal/metrics"
	"glyphwatch/internal/scan"
	"glyphwatch/internal/trace"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [FILE...]",
	Short: "Scan files of identifiers, one per line",
	Long: `Scan reads identifiers line by line from each FILE ("-" or no arguments
for standard input) and reports the mixed-script ones. Blank lines and lines
starting with '#' are skipped. Files are scanned in parallel and share one
matcher cache.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntP("jobs", "j", runtime.GOMAXPROCS(0), "number of files scanned in parallel")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	scanCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	scanCmd.Flags().String("metrics-out", "", "write Prometheus text metrics to this file after each run")
	scanCmd.Flags().Bool("only-flagged", false, "keep only flagged and unparsable entries in the report")
	scanCmd.Flags().BoolP("verbose", "v", false, "list clean identifiers in the pretty report")
	scanCmd.Flags().Bool("watch", false, "rescan whenever one of the files changes")
	scanCmd.Flags().Bool("strict", false, "reject identifiers that fail PRECIS profiles")
}

type scanFlags struct {
	jobs        int
	format      scan.Format
	ui          uiMode
	metricsOut  string
	onlyFlagged bool
	verbose     bool
	watch       bool
	strict      bool
}

func readScanFlags(cmd *cobra.Command) (scanFlags, error) {
	var (
		f   scanFlags
		err error
	)
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.format, err = scan.ParseFormat(formatStr); err != nil {
		return f, err
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiStr); err != nil {
		return f, err
	}
	if f.metricsOut, err = cmd.Flags().GetString("metrics-out"); err != nil {
		return f, fmt.Errorf("failed to get metrics-out flag: %w", err)
	}
	if f.onlyFlagged, err = cmd.Flags().GetBool("only-flagged"); err != nil {
		return f, fmt.Errorf("failed to get only-flagged flag: %w", err)
	}
	if f.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return f, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if f.watch, err = cmd.Flags().GetBool("watch"); err != nil {
		return f, fmt.Errorf("failed to get watch flag: %w", err)
	}
	if f.strict, err = cmd.Flags().GetBool("strict"); err != nil {
		return f, fmt.Errorf("failed to get strict flag: %w", err)
	}
	return f, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	flags, err := readScanFlags(cmd)
	if err != nil {
		return err
	}
	paths := args
	if len(paths) == 0 {
		paths = []string{scan.StdinName}
	}
	if flags.watch {
		for _, p := range paths {
			if p == scan.StdinName {
				return errors.New("--watch needs file arguments, not standard input")
			}
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m := metrics.New()
	det, err := newDetector(cmd, cfg, m)
	if err != nil {
		return err
	}
	h, err := newHighlighter(cmd, cfg, false)
	if err != nil {
		return err
	}

	sources := make([]scan.Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, scan.FileSource(p))
	}
	opts := scan.Options{
		Jobs:        flags.jobs,
		Strict:      flags.strict,
		OnlyFlagged: flags.onlyFlagged,
		Recorder:    m,
	}
	useTUI := shouldUseTUI(flags.ui, flags.format == scan.FormatPretty)
	out := cmd.OutOrStdout()

	once := func(ctx context.Context) error {
		var (
			res *scan.Result
			err error
		)
		endScan := timer.Begin("scan")
		if useTUI {
			res, err = runScanWithUI(ctx, "scan "+strings.Join(paths, " "), det, sources, opts)
		} else {
			res, err = scan.Run(ctx, det, sources, opts)
		}
		if err != nil {
			endScan("failed")
			return err
		}
		endScan(fmt.Sprintf("%d files, %d identifiers", res.Totals.Files, res.Totals.Scanned))
		if err := timer.Measure("report", func() error {
			return scan.Write(out, res, flags.format, scan.PrettyOpts{Highlighter: h, Verbose: flags.verbose})
		}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if flags.metricsOut != "" {
			if err := m.WriteFile(flags.metricsOut); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
		}
		return nil
	}

	ctx := cmd.Context()
	if !flags.watch {
		return once(ctx)
	}
	trace.Point(trace.FromContext(ctx), trace.ScopeDriver, "watch", strings.Join(paths, ","))
	err = scan.Watch(ctx, paths, scan.DefaultDebounce, once)
	// Ctrl-C in watch mode is the normal way out
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
