package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"glyphwatch/internal/render"
	"glyphwatch/internal/source"
)

// Format selects the report encoding.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatJSON, FormatMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json|msgpack)", s)
	}
}

// PrettyOpts configures WritePretty.
type PrettyOpts struct {
	Highlighter *render.Highlighter
	// Verbose lists clean entries too.
	Verbose bool
}

// Write encodes res in format f.
func Write(w io.Writer, res *Result, f Format, opts PrettyOpts) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(res)
	default:
		return WritePretty(w, res, opts)
	}
}

// ReadMsgpack decodes a report written with FormatMsgpack.
func ReadMsgpack(r io.Reader) (*Result, error) {
	var res Result
	if err := msgpack.NewDecoder(r).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

type row struct {
	line   string
	status string
	id     string
	plain  string
	notes  string
}

// WritePretty prints one aligned table per input followed by a summary.
// Column widths are measured in terminal cells, so wide and combining
// characters line up; highlight escapes are not counted.
func WritePretty(w io.Writer, res *Result, opts PrettyOpts) error {
	h := opts.Highlighter
	if h == nil {
		h, _ = render.NewHighlighter(render.Options{Mode: render.ModePlain})
	}
	var b strings.Builder
	for _, fr := range res.Files {
		fmt.Fprintf(&b, "== %s (%d scanned, %d flagged, %d errors)\n", fr.Path, fr.Scanned, fr.Flagged, fr.Errors)
		if fr.Err != "" {
			fmt.Fprintf(&b, "   error: %s\n", fr.Err)
			continue
		}
		rows := make([]row, 0, len(fr.Entries))
		for _, e := range fr.Entries {
			r, ok := entryRow(e, h, opts.Verbose)
			if ok {
				rows = append(rows, r)
			}
		}
		writeRows(&b, rows)
	}
	t := res.Totals
	fmt.Fprintf(&b, "total: %d files, %d scanned, %d flagged, %d errors", t.Files, t.Scanned, t.Flagged, t.Errors)
	if t.Failed > 0 {
		fmt.Fprintf(&b, ", %d unreadable", t.Failed)
	}
	fmt.Fprintf(&b, " (run %s)\n", res.RunID)
	_, err := io.WriteString(w, b.String())
	return err
}

func entryRow(e Entry, h *render.Highlighter, verbose bool) (row, bool) {
	r := row{line: strconv.Itoa(e.Line)}
	switch {
	case e.Err != "":
		r.status, r.id, r.plain, r.notes = "ERROR", e.Input, e.Input, e.Err
	case e.Report != nil && e.Report.Mixed:
		doc := e.Report
		rendered := render.ComposeParts(doc.Local, doc.Domain, doc.Resource, docSpans(doc))
		r.status = "MIXED"
		r.id, r.plain = h.String(rendered), rendered.Text
		r.notes = fmt.Sprintf("%s; flagged %s", doc.Majority, codePoints(doc.Minority))
	case verbose && e.Report != nil:
		r.status, r.id, r.plain, r.notes = "ok", e.Report.ID, e.Report.ID, e.Report.Majority
	default:
		return row{}, false
	}
	return r, true
}

func writeRows(b *strings.Builder, rows []row) {
	var wLine, wStatus, wID int
	for _, r := range rows {
		wLine = max(wLine, len(r.line))
		wStatus = max(wStatus, len(r.status))
		wID = max(wID, runewidth.StringWidth(r.plain))
	}
	for _, r := range rows {
		fmt.Fprintf(b, "   %*s  %-*s  ", wLine, r.line, wStatus, r.status)
		b.WriteString(r.id)
		// дополняем по ширине видимого текста, без escape-последовательностей
		b.WriteString(strings.Repeat(" ", wID-runewidth.StringWidth(r.plain)))
		b.WriteString("  ")
		b.WriteString(r.notes)
		b.WriteString("\n")
	}
}

func docSpans(doc *render.Document) []source.Span {
	out := make([]source.Span, 0, len(doc.Spans))
	for _, sp := range doc.Spans {
		out = append(out, source.Span{Start: sp.Start, End: sp.End})
	}
	return out
}

func codePoints(set []string) string {
	parts := make([]string, 0, len(set))
	for _, cp := range set {
		r, _ := utf8.DecodeRuneInString(cp)
		parts = append(parts, fmt.Sprintf("%s U+%04X", cp, r))
	}
	return strings.Join(parts, ", ")
}
