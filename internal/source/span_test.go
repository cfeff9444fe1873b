package source

import (
	"slices"
	"testing"
)

func TestSpan_ShiftRight(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{
			name:     "shift normal span right by 5",
			span:     Span{Start: 10, End: 20},
			shift:    5,
			expected: Span{Start: 15, End: 25},
		},
		{
			name:     "shift by 0",
			span:     Span{Start: 10, End: 20},
			shift:    0,
			expected: Span{Start: 10, End: 20},
		},
		{
			name:     "shift zero-length span",
			span:     Span{Start: 3, End: 3},
			shift:    2,
			expected: Span{Start: 5, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.ShiftRight(tt.shift)
			if result != tt.expected {
				t.Errorf("ShiftRight() = %+v, want %+v", result, tt.expected)
			}
			if result.Len() != tt.span.Len() {
				t.Errorf("length changed: got %d, want %d", result.Len(), tt.span.Len())
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		empty bool
		len   uint32
	}{
		{"zero", Span{}, true, 0},
		{"point", Span{Start: 4, End: 4}, true, 0},
		{"inverted", Span{Start: 5, End: 2}, true, 0},
		{"two bytes", Span{Start: 1, End: 3}, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.span.Len(); got != tt.len {
				t.Errorf("Len() = %d, want %d", got, tt.len)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	sp := Span{Start: 1, End: 3}
	for off, want := range map[uint32]bool{0: false, 1: true, 2: true, 3: false} {
		if got := sp.Contains(off); got != want {
			t.Errorf("Contains(%d) = %v, want %v", off, got, want)
		}
	}
}

func TestSpan_Slice(t *testing.T) {
	text := "pаypal" // U+0430 занимает 2 байта
	if got := (Span{Start: 1, End: 3}).Slice(text); got != "а" {
		t.Errorf("Slice = %q, want cyrillic a", got)
	}
	if got := (Span{Start: 5, End: 99}).Slice(text); got != "al" {
		t.Errorf("clamped Slice = %q", got)
	}
	if got := (Span{Start: 99, End: 100}).Slice(text); got != "" {
		t.Errorf("out of range Slice = %q", got)
	}
}

func TestSpanOf(t *testing.T) {
	if got := SpanOf(2, 7); got != (Span{Start: 2, End: 7}) {
		t.Errorf("SpanOf = %+v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("SpanOf(-1, 0) did not panic")
		}
	}()
	_ = SpanOf(-1, 0)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Span
		want []Span
	}{
		{"nil", nil, nil},
		{"single", []Span{{1, 3}}, []Span{{1, 3}}},
		{"adjacent", []Span{{1, 3}, {3, 5}}, []Span{{1, 5}}},
		{"gap", []Span{{1, 3}, {4, 6}}, []Span{{1, 3}, {4, 6}}},
		{"run of three", []Span{{0, 2}, {2, 4}, {4, 6}, {9, 10}}, []Span{{0, 6}, {9, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Merge(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
