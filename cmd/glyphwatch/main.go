package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"glyphwatch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "glyphwatch",
	Short: "Mixed-script identifier detector",
	Long: `glyphwatch flags code points in the local part of an identifier that come
from a different Unicode block than the rest of it, the usual trick behind
homograph spoofing (pаypal@example.com with a Cyrillic 'а').`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: rootPreRun,
}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.String()

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "config file (default: glyphwatch.toml found upwards from the working directory)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in ring mode")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 disables)")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime execution trace to this file")
}

// main executes the root command. A *MixedError exits with status 2
// without printing anything else; any other error exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeTracing()
	printTimings(rootCmd)
	if err != nil {
		var mixed *MixedError
		if errors.As(err, &mixed) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var (
	traceCleanup   func()
	profileCleanup func()
)

func rootPreRun(cmd *cobra.Command, _ []string) error {
	useColor, err := colorEnabled(cmd, os.Stdout)
	if err != nil {
		return err
	}
	setColor(useColor)

	if err := setupTimings(cmd); err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup

	if profileCleanup, err = setupProfiling(cmd); err != nil {
		return err
	}
	return nil
}

// closeTracing stops profilers and flushes the tracer even when the
// command failed.
func closeTracing() {
	if profileCleanup != nil {
		profileCleanup()
		profileCleanup = nil
	}
	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
