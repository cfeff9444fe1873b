package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range [Start, End) inside one string.
// Spans produced by the detector always fall on rune boundaries.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// SpanOf converts int offsets, as returned by the regexp and strings
// packages, into a Span.
func SpanOf(start, end int) Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	return Span{Start: s, End: e}
}

func (s Span) Empty() bool {
	return s.Start >= s.End
}

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether the byte offset off lies inside s.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Touches reports whether s and other overlap or are adjacent.
func (s Span) Touches(other Span) bool {
	return s.Start <= other.End && other.Start <= s.End
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{
		Start: s.Start + n,
		End:   s.End + n,
	}
}

// Slice returns the text covered by s, clamped to text.
func (s Span) Slice(text string) string {
	n := len(text)
	start, end := int(s.Start), int(s.End)
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}

// Merge collapses touching spans of an ascending, non-overlapping list.
// The input is not modified.
func Merge(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	out := make([]Span, 0, len(spans))
	cur := spans[0]
	for _, sp := range spans[1:] {
		if cur.Touches(sp) {
			cur = cur.Cover(sp)
			continue
		}
		out = append(out, cur)
		cur = sp
	}
	return append(out, cur)
}
