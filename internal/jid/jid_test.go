package jid

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		local    string
		domain   string
		resource string
	}{
		{"full", "alice@example.com/phone", "alice", "example.com", "phone"},
		{"bare", "alice@example.com", "alice", "example.com", ""},
		{"domain only", "example.com", "", "example.com", ""},
		{"domain with resource", "example.com/phone", "", "example.com", "phone"},
		{"resource keeps at and slash", "bob@example.com/a@b/c", "bob", "example.com", "a@b/c"},
		{"domain case folded", "Bob@EXAMPLE.Com", "Bob", "example.com", ""},
		{"trailing dot stripped", "bob@example.com.", "bob", "example.com", ""},
		{"surrounding space trimmed", "  bob@example.com \n", "bob", "example.com", ""},
		{"cyrillic local kept", "pаypal@example.com", "pаypal", "example.com", ""},
		{"decomposed accent composed", "jose\u0301@example.com", "jos\u00e9", "example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if j.Local() != tt.local || j.Domain() != tt.domain || j.Resource() != tt.resource {
				t.Errorf("Parse(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.in, j.Local(), j.Domain(), j.Resource(), tt.local, tt.domain, tt.resource)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"blank", "   ", ErrEmpty},
		{"no domain", "alice@", ErrNoDomain},
		{"no domain with resource", "alice@/phone", ErrNoDomain},
		{"empty local", "@example.com", ErrInvalidLocal},
		{"empty resource", "alice@example.com/", ErrInvalidResource},
		{"space in local", "al ice@example.com", ErrInvalidLocal},
		{"second at in domain", "a@b@example.com", ErrInvalidDomain},
		{"control in resource", "a@example.com/x\x01y", ErrInvalidResource},
		{"tab in resource", "a@example.com/x\ty", ErrInvalidResource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestParseTooLong(t *testing.T) {
	long := make([]byte, MaxPartLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := Parse(string(long) + "@example.com"); !errors.Is(err, ErrTooLong) {
		t.Fatalf("error = %v, want ErrTooLong", err)
	}
}

func TestParseStrict(t *testing.T) {
	j, err := ParseStrict("Alice@example.com/Home Phone")
	if err != nil {
		t.Fatalf("ParseStrict: %v", err)
	}
	if j.Local() != "Alice" || j.Resource() != "Home Phone" {
		t.Errorf("got %q / %q", j.Local(), j.Resource())
	}
	if _, err := ParseStrict("aאb@example.com"); !errors.Is(err, ErrInvalidLocal) {
		t.Errorf("mixed-direction local: error = %v, want ErrInvalidLocal", err)
	}
}

func TestEqualityIsByNormalizedValue(t *testing.T) {
	a := MustNew("jose\u0301", "Example.COM", "phone")
	b, err := Parse("jos\u00e9@example.com/phone")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("%v != %v", a, b)
	}
	m := map[JID]int{a: 1}
	if m[b] != 1 {
		t.Fatal("value-equal JIDs must hash identically")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		j    JID
		want string
	}{
		{MustNew("alice", "example.com", "phone"), "alice@example.com/phone"},
		{MustNew("alice", "example.com", ""), "alice@example.com"},
		{MustNew("", "example.com", "phone"), "example.com/phone"},
		{MustNew("", "example.com", ""), "example.com"},
	}
	for _, tt := range tests {
		if got := tt.j.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBare(t *testing.T) {
	j := MustNew("alice", "example.com", "phone")
	b := j.Bare()
	if !b.IsBare() || b.Resource() != "" || b.Local() != "alice" {
		t.Errorf("Bare() = %v", b)
	}
	if j.IsBare() {
		t.Error("Bare mutated receiver")
	}
}

func TestNewInvalidUTF8Replaced(t *testing.T) {
	j, err := New("a\xffb", "example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	if j.Local() != "a\uFFFDb" {
		t.Errorf("Local() = %q", j.Local())
	}
}

func TestZero(t *testing.T) {
	var j JID
	if !j.IsZero() {
		t.Error("zero JID not IsZero")
	}
	if MustNew("", "example.com", "").IsZero() {
		t.Error("domain JID reported zero")
	}
}
