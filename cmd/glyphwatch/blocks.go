package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"glyphwatch/internal/script"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [flags] [FILTER]",
	Short: "List the Unicode blocks glyphwatch classifies by",
	Long: `Blocks prints every known block with its code point range. FILTER keeps
blocks whose name contains it (case-insensitive). With --folded only the
effective folding table is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBlocks,
}

func init() {
	blocksCmd.Flags().Bool("folded", false, "print the folding table instead")
}

func runBlocks(cmd *cobra.Command, args []string) error {
	folded, err := cmd.Flags().GetBool("folded")
	if err != nil {
		return fmt.Errorf("failed to get folded flag: %w", err)
	}
	filter := ""
	if len(args) == 1 {
		filter = args[0]
	}
	if !folded {
		return writeBlocks(cmd.OutOrStdout(), filter)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := cfg.Folding()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return writeFolding(cmd.OutOrStdout(), f, filter)
}

func writeBlocks(w io.Writer, filter string) error {
	var b strings.Builder
	for _, c := range script.All() {
		if !matchesFilter(c.String(), filter) {
			continue
		}
		lo, hi, _ := c.Range()
		fmt.Fprintf(&b, "U+%04X..U+%04X  %s\n", lo, hi, c)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeFolding(w io.Writer, f script.Folding, filter string) error {
	var b strings.Builder
	width := 0
	pairs := f.Pairs()
	for _, p := range pairs {
		width = max(width, len(p.From.String()))
	}
	for _, p := range pairs {
		if !matchesFilter(p.From.String(), filter) && !matchesFilter(p.To.String(), filter) {
			continue
		}
		fmt.Fprintf(&b, "%-*s -> %s\n", width, p.From, p.To)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func matchesFilter(name, filter string) bool {
	return filter == "" || strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}
