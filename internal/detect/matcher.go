package detect

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"glyphwatch/internal/script"
	"glyphwatch/internal/source"
)

// Matcher finds occurrences of any code point of a MinoritySet.
// A Matcher compiled from an empty set never matches.
type Matcher struct {
	re       *regexp.Regexp
	set      MinoritySet
	majority script.Class
}

// Compile builds a literal alternation over set. Code points are quoted,
// so regexp metacharacters match themselves.
func Compile(set MinoritySet) (*Matcher, error) {
	if len(set) == 0 {
		// пустая альтернатива совпала бы с пустой строкой в каждой позиции
		return &Matcher{}, nil
	}
	var sb strings.Builder
	for i, cp := range set {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(quote(cp))
	}
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("compile minority pattern: %w", err)
	}
	return &Matcher{re: re, set: set}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(set MinoritySet) *Matcher {
	m, err := Compile(set)
	if err != nil {
		panic(err)
	}
	return m
}

// quote escapes one code point for the pattern. regexp rejects invalid
// UTF-8 in patterns and decodes invalid input bytes as U+FFFD, so a raw
// malformed byte is matched through the replacement character.
func quote(cp string) string {
	if !utf8.ValidString(cp) {
		return `\x{FFFD}`
	}
	return regexp.QuoteMeta(cp)
}

// Empty reports whether the matcher can never match.
func (m *Matcher) Empty() bool {
	return m == nil || m.re == nil
}

// Pattern returns the compiled pattern text, "" for an empty matcher.
func (m *Matcher) Pattern() string {
	if m.Empty() {
		return ""
	}
	return m.re.String()
}

// Set returns the code points the matcher was compiled from.
func (m *Matcher) Set() MinoritySet {
	if m == nil {
		return nil
	}
	return m.set
}

// Majority returns the class that was removed when the set was built.
// Only meaningful for matchers produced by a Detector.
func (m *Matcher) Majority() script.Class {
	if m == nil {
		return script.BasicLatin
	}
	return m.majority
}

// FindAll scans s left to right and returns every non-empty match as a
// byte span. Spans are ascending, non-overlapping and rune-aligned.
func (m *Matcher) FindAll(s string) []source.Span {
	if m.Empty() || s == "" {
		return nil
	}
	locs := m.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]source.Span, 0, len(locs))
	for _, loc := range locs {
		if loc[0] >= loc[1] {
			continue
		}
		spans = append(spans, source.SpanOf(loc[0], loc[1]))
	}
	return spans
}
