// Package render composes identifiers for display and marks the
// flagged ranges of their local part.
//
// Compose knows nothing about colours or terminals; it returns the text
// together with the spans to highlight. Highlighter turns the result into
// ANSI or bracket markup, and Document is the machine-readable form used
// by the json and msgpack outputs.
package render

import (
	"cmp"
	"slices"
	"strings"

	"glyphwatch/internal/jid"
	"glyphwatch/internal/source"
)

// Rendered is a display string with highlight ranges. Marks are byte
// spans over Text, ascending and non-overlapping.
type Rendered struct {
	Text  string
	Marks []source.Span
}

// Marked reports whether anything is highlighted.
func (r Rendered) Marked() bool { return len(r.Marks) > 0 }

// Compose renders id as local@domain/resource with spans (over the local
// part) kept as marks. It never fails.
func Compose(id jid.JID, spans []source.Span) Rendered {
	return ComposeParts(id.Local(), id.Domain(), id.Resource(), spans)
}

// ComposeParts is Compose over raw parts:
//   - an empty local part is dropped together with its '@';
//   - an empty domain is dropped;
//   - the resource is appended only when something precedes it.
//
// Spans that fall outside the local part are discarded and touching
// spans are merged into one mark.
func ComposeParts(local, domain, resource string, spans []source.Span) Rendered {
	var sb strings.Builder
	sb.Grow(len(local) + len(domain) + len(resource) + 2)
	if local != "" {
		sb.WriteString(local)
		sb.WriteByte('@')
	}
	sb.WriteString(domain)
	if sb.Len() != 0 && resource != "" {
		sb.WriteByte('/')
		sb.WriteString(resource)
	}
	// local всегда префикс, смещения совпадают
	return Rendered{Text: sb.String(), Marks: clip(spans, len(local))}
}

func clip(spans []source.Span, limit int) []source.Span {
	if len(spans) == 0 || limit == 0 {
		return nil
	}
	out := make([]source.Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Empty() || int(sp.End) > limit {
			continue
		}
		out = append(out, sp)
	}
	if len(out) == 0 {
		return nil
	}
	slices.SortFunc(out, func(a, b source.Span) int { return cmp.Compare(a.Start, b.Start) })
	return source.Merge(out)
}

// Segments calls fn for each maximal run of Text, alternating between
// unmarked and marked runs. Empty runs are skipped.
func (r Rendered) Segments(fn func(text string, marked bool)) {
	pos := 0
	for _, m := range r.Marks {
		start, end := int(m.Start), int(m.End)
		if start > pos {
			fn(r.Text[pos:start], false)
		}
		fn(r.Text[start:end], true)
		pos = end
	}
	if pos < len(r.Text) {
		fn(r.Text[pos:], false)
	}
}
