package detect

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"glyphwatch/internal/script"
)

// TieBreak selects the majority class when several classes share the
// largest group size.
type TieBreak uint8

const (
	// TieBreakLatin prefers Basic Latin when it attains the maximum,
	// otherwise the class whose first code point occurs earliest.
	TieBreakLatin TieBreak = iota
	// TieBreakFirstSeen always prefers the class whose first code point
	// occurs earliest in the local part.
	TieBreakFirstSeen
)

func (tb TieBreak) String() string {
	switch tb {
	case TieBreakLatin:
		return "latin"
	case TieBreakFirstSeen:
		return "first"
	default:
		return "unknown"
	}
}

// ParseTieBreak converts a config/flag value to TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "latin":
		return TieBreakLatin, nil
	case "first", "first-seen", "firstseen":
		return TieBreakFirstSeen, nil
	default:
		return TieBreakLatin, fmt.Errorf("invalid tie-break %q (expected latin|first)", s)
	}
}

// Group is every code point of one normalized class, in input order.
// Duplicates are kept: frequency decides the majority.
type Group struct {
	Class      script.Class
	CodePoints []string
}

// Groups is the per-identifier grouping, ordered by the first occurrence
// of each class in the local part.
type Groups []Group

// GroupCodePoints walks local rune by rune and buckets each code point by
// its folded block. Malformed bytes classify as script.Unknown and keep
// their raw one-byte form.
func GroupCodePoints(local string, folding script.Folding) Groups {
	var groups Groups
	index := make(map[script.Class]int, 4)
	for i := 0; i < len(local); {
		r, size := utf8.DecodeRuneInString(local[i:])
		cls := script.Unknown
		if r != utf8.RuneError || size > 1 {
			cls = folding.Normalize(script.Of(r))
		}
		cp := local[i : i+size]
		if gi, ok := index[cls]; ok {
			groups[gi].CodePoints = append(groups[gi].CodePoints, cp)
		} else {
			index[cls] = len(groups)
			groups = append(groups, Group{Class: cls, CodePoints: []string{cp}})
		}
		i += size
	}
	return groups
}

// Majority returns the class with the strictly largest group. The
// initial candidate is Basic Latin with a count of zero, so a local part
// without any Latin still elects one of its own classes. Ties resolve
// per tb. An empty grouping yields Basic Latin.
func (g Groups) Majority(tb TieBreak) script.Class {
	best, size := script.BasicLatin, 0
	for _, grp := range g {
		n := len(grp.CodePoints)
		switch {
		case n > size:
			best, size = grp.Class, n
		case n == size && tb == TieBreakLatin && grp.Class == script.BasicLatin:
			best = grp.Class
		}
	}
	return best
}

// Minority returns the distinct code points of every group except the
// one of class majority.
func (g Groups) Minority(majority script.Class) MinoritySet {
	seen := make(map[string]struct{})
	for _, grp := range g {
		if grp.Class == majority {
			continue
		}
		for _, cp := range grp.CodePoints {
			seen[cp] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make(MinoritySet, 0, len(seen))
	for cp := range seen {
		out = append(out, cp)
	}
	sort.Strings(out)
	return out
}

// MinoritySet is the sorted, de-duplicated set of code points to flag.
type MinoritySet []string

// Contains reports whether cp is in the set.
func (m MinoritySet) Contains(cp string) bool {
	i := sort.SearchStrings(m, cp)
	return i < len(m) && m[i] == cp
}

// Partition groups the local part by folded block, elects the majority
// class and returns everything else. Pure; safe for concurrent use.
func Partition(local string, folding script.Folding, tb TieBreak) (MinoritySet, script.Class) {
	groups := GroupCodePoints(local, folding)
	majority := groups.Majority(tb)
	return groups.Minority(majority), majority
}
