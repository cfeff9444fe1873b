package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/script"
	"glyphwatch/internal/source"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] ID",
	Short: "Show how each code point of the local part was classified",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().Bool("strict", false, "reject identifiers that fail PRECIS profiles")
}

func runExplain(cmd *cobra.Command, args []string) error {
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	id, err := parseID(args[0], strict)
	if err != nil {
		return fmt.Errorf("%q: %w", args[0], err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	det, err := newDetector(cmd, cfg, nil)
	if err != nil {
		return err
	}
	return writeExplain(cmd.OutOrStdout(), det.Analyze(id), det.Folding())
}

type explainRow struct {
	offset, glyph, code, block, folded string
	flagged                            bool
}

func explainRows(rep detect.Report, folding script.Folding) []explainRow {
	local := rep.ID.Local()
	var rows []explainRow
	for i := 0; i < len(local); {
		r, size := utf8.DecodeRuneInString(local[i:])
		cp := local[i : i+size]
		row := explainRow{
			offset:  strconv.Itoa(i),
			glyph:   displayGlyph(r, size),
			code:    codePointLabel(cp),
			flagged: covered(rep.Spans, i),
		}
		if r == utf8.RuneError && size == 1 {
			row.block, row.folded = script.Unknown.String(), script.Unknown.String()
		} else {
			cls := script.Of(r)
			row.block = cls.String()
			row.folded = folding.Normalize(cls).String()
		}
		rows = append(rows, row)
		i += size
	}
	return rows
}

func writeExplain(w io.Writer, rep detect.Report, folding script.Folding) error {
	rows := explainRows(rep, folding)
	header := explainRow{offset: "OFF", glyph: "CP", code: "CODE", block: "BLOCK", folded: "FOLDED"}
	all := append([]explainRow{header}, rows...)

	var wOff, wGlyph, wCode, wBlock, wFolded int
	for _, r := range all {
		wOff = max(wOff, len(r.offset))
		wGlyph = max(wGlyph, runewidth.StringWidth(r.glyph))
		wCode = max(wCode, len(r.code))
		wBlock = max(wBlock, len(r.block))
		wFolded = max(wFolded, len(r.folded))
	}

	flag := color.New(color.FgRed, color.Bold)
	var b strings.Builder
	fmt.Fprintf(&b, "%s  majority %s\n", rep.ID, rep.Majority)
	for i, r := range all {
		fmt.Fprintf(&b, "%*s  ", wOff, r.offset)
		b.WriteString(r.glyph)
		b.WriteString(strings.Repeat(" ", wGlyph-runewidth.StringWidth(r.glyph)))
		fmt.Fprintf(&b, "  %-*s  %-*s  %-*s", wCode, r.code, wBlock, r.block, wFolded, r.folded)
		switch {
		case i == 0:
			b.WriteString("  FLAG")
		case r.flagged:
			b.WriteString("  ")
			b.WriteString(flag.Sprint("mixed"))
		}
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString("(empty local part)\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func covered(spans []source.Span, off int) bool {
	for _, sp := range spans {
		if off >= int(sp.Start) && off < int(sp.End) {
			return true
		}
	}
	return false
}

// codePointLabel formats cp as U+XXXX, or as the raw byte when cp is not
// valid UTF-8.
func codePointLabel(cp string) string {
	r, size := utf8.DecodeRuneInString(cp)
	if r == utf8.RuneError && size == 1 {
		return fmt.Sprintf("byte 0x%02X", cp[0])
	}
	return fmt.Sprintf("U+%04X", r)
}

// displayGlyph keeps the table readable: combining marks get a dotted
// circle base, invisible runes are shown as "·".
func displayGlyph(r rune, size int) string {
	switch {
	case r == utf8.RuneError && size == 1:
		return "�"
	case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r):
		return "◌" + string(r)
	case !unicode.IsGraphic(r) || unicode.IsSpace(r):
		return "·"
	default:
		return string(r)
	}
}
