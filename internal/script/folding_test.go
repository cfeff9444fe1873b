package script

import "testing"

func TestFoldingNormalize(t *testing.T) {
	f := DefaultFolding()
	tests := []struct {
		in, want Class
	}{
		{Latin1Supplement, BasicLatin},
		{BasicLatin, BasicLatin},
		{Cyrillic, Cyrillic},
		{LatinExtendedA, LatinExtendedA},
		{Unknown, Unknown},
	}
	for _, tt := range tests {
		if got := f.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNilFoldingIsIdentity(t *testing.T) {
	var f Folding
	if got := f.Normalize(Latin1Supplement); got != Latin1Supplement {
		t.Errorf("nil folding Normalize = %v", got)
	}
}

func TestDefaultFoldingIsFreshCopy(t *testing.T) {
	a := DefaultFolding()
	a[Cyrillic] = BasicLatin
	b := DefaultFolding()
	if _, ok := b[Cyrillic]; ok {
		t.Fatal("DefaultFolding shares state between calls")
	}
}

func TestFoldingMerge(t *testing.T) {
	base := DefaultFolding()
	merged := base.Merge(Folding{LatinExtendedA: BasicLatin})
	if merged.Normalize(LatinExtendedA) != BasicLatin {
		t.Error("merge lost new entry")
	}
	if merged.Normalize(Latin1Supplement) != BasicLatin {
		t.Error("merge lost base entry")
	}
	if _, ok := base[LatinExtendedA]; ok {
		t.Error("merge mutated receiver")
	}
}

func TestExtendedLatinFolding(t *testing.T) {
	f := ExtendedLatinFolding()
	for _, r := range []rune{'é', 'ł', 'ơ', 'ạ'} {
		if got := f.Normalize(Of(r)); got != BasicLatin {
			t.Errorf("%q folds to %v", r, got)
		}
	}
	if got := f.Normalize(Of('а')); got != Cyrillic {
		t.Errorf("cyrillic folds to %v", got)
	}
}

func TestFoldingValidate(t *testing.T) {
	if err := DefaultFolding().Validate(); err != nil {
		t.Fatalf("default folding invalid: %v", err)
	}
	if err := (Folding{Unknown: BasicLatin}).Validate(); err == nil {
		t.Error("expected error for Unknown source")
	}
	if err := (Folding{Cyrillic: Class(9999)}).Validate(); err == nil {
		t.Error("expected error for out-of-range target")
	}
}

func TestFoldingPairsSorted(t *testing.T) {
	f := Folding{Cyrillic: BasicLatin, Latin1Supplement: BasicLatin, LatinExtendedA: BasicLatin}
	pairs := f.Pairs()
	if len(pairs) != 3 {
		t.Fatalf("len = %d", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i-1].From >= pairs[i].From {
			t.Fatalf("pairs not sorted: %v", pairs)
		}
	}
}
