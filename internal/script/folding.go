package script

import (
	"fmt"
	"sort"
)

// Folding collapses related blocks into a canonical one before any
// grouping or comparison. Classes missing from the map fold to
// themselves. Folding is applied once; targets are not folded again.
type Folding map[Class]Class

// DefaultFolding returns a fresh copy of the built-in table:
// Latin-1 Supplement folds into Basic Latin, so accented Latin text
// is not treated as a second script.
func DefaultFolding() Folding {
	return Folding{
		Latin1Supplement: BasicLatin,
	}
}

// ExtendedLatinFolding additionally folds the Latin extension blocks
// into Basic Latin. Useful for deployments with many Central European
// or Vietnamese names; it also hides spoofs built from those blocks.
func ExtendedLatinFolding() Folding {
	f := DefaultFolding()
	for _, c := range []Class{
		LatinExtendedA,
		LatinExtendedB,
		LatinExtendedAdditional,
		LatinExtendedC,
		LatinExtendedD,
		LatinExtendedE,
	} {
		f[c] = BasicLatin
	}
	return f
}

// Normalize maps c to its canonical class.
func (f Folding) Normalize(c Class) Class {
	if to, ok := f[c]; ok {
		return to
	}
	return c
}

// Clone returns an independent copy of f.
func (f Folding) Clone() Folding {
	out := make(Folding, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge returns a copy of f with the entries of other added on top.
func (f Folding) Merge(other Folding) Folding {
	out := f.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Validate rejects entries referring to Unknown or out-of-range classes.
func (f Folding) Validate() error {
	for from, to := range f {
		if !from.Valid() {
			return fmt.Errorf("folding: invalid source class %d", from)
		}
		if !to.Valid() {
			return fmt.Errorf("folding: invalid target class %d for %s", to, from)
		}
	}
	return nil
}

// Pair is one folding entry.
type Pair struct {
	From Class
	To   Class
}

// Pairs returns the entries of f ordered by source block.
func (f Folding) Pairs() []Pair {
	out := make([]Pair, 0, len(f))
	for from, to := range f {
		out = append(out, Pair{From: from, To: to})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}
