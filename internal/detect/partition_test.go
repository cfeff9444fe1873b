package detect

import (
	"slices"
	"testing"

	"glyphwatch/internal/script"
)

func TestGroupCodePoints(t *testing.T) {
	groups := GroupCodePoints("pаypаl1", script.DefaultFolding())
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2: %+v", len(groups), groups)
	}
	if groups[0].Class != script.BasicLatin || groups[1].Class != script.Cyrillic {
		t.Fatalf("group order = %v, %v", groups[0].Class, groups[1].Class)
	}
	if got := groups[0].CodePoints; !slices.Equal(got, []string{"p", "y", "p", "l", "1"}) {
		t.Errorf("latin code points = %q", got)
	}
	// дубликаты сохраняются
	if got := groups[1].CodePoints; !slices.Equal(got, []string{"а", "а"}) {
		t.Errorf("cyrillic code points = %q", got)
	}
}

func TestGroupCodePointsAstral(t *testing.T) {
	groups := GroupCodePoints("a😀b", script.DefaultFolding())
	if len(groups) != 2 || groups[1].Class != script.Emoticons {
		t.Fatalf("groups = %+v", groups)
	}
	if cp := groups[1].CodePoints[0]; cp != "😀" || len(cp) != 4 {
		t.Errorf("astral code point stored as %q (%d bytes)", cp, len(cp))
	}
}

func TestGroupCodePointsMalformed(t *testing.T) {
	groups := GroupCodePoints("ab\xffc", script.DefaultFolding())
	if len(groups) != 2 || groups[1].Class != script.Unknown {
		t.Fatalf("groups = %+v", groups)
	}
	if cp := groups[1].CodePoints[0]; cp != "\xff" {
		t.Errorf("malformed byte stored as %q", cp)
	}
}

func TestGroupCodePointsFoldsLatin1(t *testing.T) {
	groups := GroupCodePoints("josé", script.DefaultFolding())
	if len(groups) != 1 || groups[0].Class != script.BasicLatin {
		t.Fatalf("accented latin split into %+v", groups)
	}
	groups = GroupCodePoints("josé", nil)
	if len(groups) != 2 {
		t.Fatalf("without folding want 2 groups, got %+v", groups)
	}
}

func TestMajority(t *testing.T) {
	tests := []struct {
		name  string
		local string
		tb    TieBreak
		want  script.Class
	}{
		{"empty defaults to latin", "", TieBreakLatin, script.BasicLatin},
		{"latin wins by count", "pаypal", TieBreakLatin, script.BasicLatin},
		{"all cyrillic elects cyrillic", "аррle", TieBreakLatin, script.Cyrillic},
		{"cyrillic majority", "аррlе", TieBreakLatin, script.Cyrillic},
		{"tie prefers latin even when second", "ааbb", TieBreakLatin, script.BasicLatin},
		{"tie first seen", "ааbb", TieBreakFirstSeen, script.Cyrillic},
		{"tie latin first", "bbаа", TieBreakFirstSeen, script.BasicLatin},
		{"tie without latin takes earliest", "ααаа", TieBreakLatin, script.GreekAndCoptic},
		{"later class overtakes", "аbbb", TieBreakFirstSeen, script.BasicLatin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupCodePoints(tt.local, script.DefaultFolding()).Majority(tt.tb)
			if got != tt.want {
				t.Errorf("Majority(%q) = %v, want %v", tt.local, got, tt.want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		want     MinoritySet
		majority script.Class
	}{
		{"empty", "", nil, script.BasicLatin},
		{"pure latin", "paypal", nil, script.BasicLatin},
		{"one cyrillic a", "pаypal", MinoritySet{"а"}, script.BasicLatin},
		{"all cyrillic look-alikes", "аррle", MinoritySet{"l", "e"}, script.Cyrillic},
		{"single foreign script", "аррӏе", nil, script.Cyrillic},
		{"repeated minority deduplicated", "gооgle", MinoritySet{"о"}, script.BasicLatin},
		{"two minority scripts", "paypalаο", MinoritySet{"а", "ο"}, script.BasicLatin},
		{"accented latin not flagged", "françois", nil, script.BasicLatin},
		{"digits and dots are latin", "john.doe42", nil, script.BasicLatin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, majority := Partition(tt.local, script.DefaultFolding(), TieBreakLatin)
			want := slices.Clone(tt.want)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("Partition(%q) = %q, want %q", tt.local, got, want)
			}
			if majority != tt.majority {
				t.Errorf("majority = %v, want %v", majority, tt.majority)
			}
		})
	}
}

func TestPartitionDoesNotMutateFolding(t *testing.T) {
	f := script.DefaultFolding()
	before := len(f)
	Partition("pаypal", f, TieBreakLatin)
	if len(f) != before {
		t.Fatal("Partition mutated folding")
	}
}

func TestMinoritySetContains(t *testing.T) {
	set := MinoritySet{"а", "о", "р"}
	slices.Sort(set)
	if !set.Contains("о") || set.Contains("o") {
		t.Errorf("Contains misbehaves on %q", set)
	}
}

func TestParseTieBreak(t *testing.T) {
	for in, want := range map[string]TieBreak{"": TieBreakLatin, "latin": TieBreakLatin, "FIRST": TieBreakFirstSeen, "first-seen": TieBreakFirstSeen} {
		got, err := ParseTieBreak(in)
		if err != nil || got != want {
			t.Errorf("ParseTieBreak(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTieBreak("random"); err == nil {
		t.Error("expected error")
	}
}
