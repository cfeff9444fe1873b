package script

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Class identifies the Unicode block a code point belongs to.
// The zero value is Unknown.
type Class uint16

type block struct {
	lo, hi rune
	name   string
}

// String returns the Unicode block name, e.g. "Basic Latin".
func (c Class) String() string {
	if c >= numClasses {
		return blocks[Unknown].name
	}
	return blocks[c].name
}

// Range returns the inclusive code point range of the block.
// ok is false for Unknown.
func (c Class) Range() (lo, hi rune, ok bool) {
	if c == Unknown || c >= numClasses {
		return 0, 0, false
	}
	b := blocks[c]
	return b.lo, b.hi, true
}

// Valid reports whether c names a known block.
func (c Class) Valid() bool {
	return c > Unknown && c < numClasses
}

// Of returns the block containing r. Runes outside every block,
// negative values and values above utf8.MaxRune classify as Unknown.
func Of(r rune) Class {
	if r < 0 || r > utf8.MaxRune {
		return Unknown
	}
	// ASCII fast-path
	if r < utf8.RuneSelf {
		return BasicLatin
	}
	n := int(numClasses) - 1
	i := sort.Search(n, func(i int) bool {
		return blocks[i+1].hi >= r
	})
	if i == n {
		return Unknown
	}
	c := Class(i + 1)
	if r < blocks[c].lo {
		// дыра между блоками
		return Unknown
	}
	return c
}

// All returns every known class in block order, Unknown excluded.
func All() []Class {
	out := make([]Class, 0, numClasses-1)
	for c := Unknown + 1; c < numClasses; c++ {
		out = append(out, c)
	}
	return out
}

var byName = func() map[string]Class {
	m := make(map[string]Class, numClasses)
	for c := Unknown; c < numClasses; c++ {
		m[nameKey(blocks[c].name)] = c
	}
	return m
}()

// Lookup resolves a block name. Matching ignores case, spaces,
// underscores and hyphens, so "latin_1_supplement" and
// "Latin-1 Supplement" both resolve.
func Lookup(name string) (Class, bool) {
	c, ok := byName[nameKey(name)]
	return c, ok
}

func nameKey(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
