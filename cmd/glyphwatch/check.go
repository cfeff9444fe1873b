package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/jid"
	"glyphwatch/internal/render"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] ID...",
	Short: "Check identifiers for mixed scripts",
	Long: `Check parses each argument as local@domain[/resource] and marks the code
points of the local part that fall outside its majority block.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|markup|json|msgpack)")
	checkCmd.Flags().Bool("fail-on-mixed", false, "exit with status 2 when any identifier is flagged")
	checkCmd.Flags().Bool("strict", false, "reject identifiers that fail PRECIS profiles")
}

// MixedError is returned by check --fail-on-mixed when at least one
// identifier was flagged.
type MixedError struct {
	Count int
}

func (e *MixedError) Error() string {
	return fmt.Sprintf("%d mixed-script identifier(s)", e.Count)
}

func parseID(s string, strict bool) (jid.JID, error) {
	if strict {
		return jid.ParseStrict(s)
	}
	return jid.Parse(s)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	failOnMixed, err := cmd.Flags().GetBool("fail-on-mixed")
	if err != nil {
		return fmt.Errorf("failed to get fail-on-mixed flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "pretty", "markup", "json", "msgpack":
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|markup|json|msgpack)", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	det, err := newDetector(cmd, cfg, nil)
	if err != nil {
		return err
	}

	endAnalyze := timer.Begin("analyze")
	reports := make([]detect.Report, 0, len(args))
	mixed := 0
	for _, arg := range args {
		id, err := parseID(arg, strict)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		rep := det.Analyze(id)
		if rep.Mixed() {
			mixed++
		}
		reports = append(reports, rep)
	}
	endAnalyze(fmt.Sprintf("%d identifiers, %d mixed", len(reports), mixed))

	out := cmd.OutOrStdout()
	switch format {
	case "json", "msgpack":
		docs := make([]render.Document, 0, len(reports))
		for _, rep := range reports {
			docs = append(docs, render.NewDocument(rep))
		}
		if format == "json" {
			err = render.WriteJSON(out, docs)
		} else {
			err = render.WriteMsgpack(out, docs)
		}
	default:
		var h *render.Highlighter
		h, err = newHighlighter(cmd, cfg, format == "markup")
		if err != nil {
			return err
		}
		err = writeCheckPretty(out, reports, h)
	}
	if err != nil {
		return err
	}

	if failOnMixed && mixed > 0 {
		return &MixedError{Count: mixed}
	}
	return nil
}

func writeCheckPretty(w io.Writer, reports []detect.Report, h *render.Highlighter) error {
	type line struct {
		plain, text, note string
	}
	lines := make([]line, 0, len(reports))
	width := 0
	for _, rep := range reports {
		r := render.Compose(rep.ID, rep.Spans)
		l := line{plain: r.Text, text: h.String(r), note: "ok"}
		if rep.Mixed() {
			l.note = fmt.Sprintf("mixed: %s majority, flagged %s", rep.Majority, describeSet(rep.Minority))
		}
		width = max(width, runewidth.StringWidth(l.plain))
		lines = append(lines, l)
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.text)
		b.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(l.plain)+2))
		b.WriteString(l.note)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// describeSet lists code points as "а U+0430, о U+043E".
func describeSet(set detect.MinoritySet) string {
	parts := make([]string, 0, len(set))
	for _, cp := range set {
		parts = append(parts, fmt.Sprintf("%s %s", cp, codePointLabel(cp)))
	}
	return strings.Join(parts, ", ")
}
