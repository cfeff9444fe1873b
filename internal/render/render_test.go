package render

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/jid"
	"glyphwatch/internal/source"
)

func TestComposeParts(t *testing.T) {
	tests := []struct {
		name                    string
		local, domain, resource string
		spans                   []source.Span
		want                    string
		marks                   []source.Span
	}{
		{"full", "alice", "example.com", "phone", nil, "alice@example.com/phone", nil},
		{"bare", "alice", "example.com", "", nil, "alice@example.com", nil},
		{"no local", "", "example.com", "phone", nil, "example.com/phone", nil},
		{"domain only", "", "example.com", "", nil, "example.com", nil},
		{"no domain keeps separator", "alice", "", "", nil, "alice@", nil},
		{"resource alone is dropped", "", "", "phone", nil, "", nil},
		{"marks kept", "pаypal", "example.com", "", []source.Span{{Start: 1, End: 3}}, "pаypal@example.com", []source.Span{{Start: 1, End: 3}}},
		{"adjacent marks merged", "gооgle", "example.com", "", []source.Span{{Start: 1, End: 3}, {Start: 3, End: 5}}, "gооgle@example.com", []source.Span{{Start: 1, End: 5}}},
		{"marks past local dropped", "ab", "example.com", "", []source.Span{{Start: 0, End: 1}, {Start: 2, End: 4}}, "ab@example.com", []source.Span{{Start: 0, End: 1}}},
		{"marks ignored without local", "", "example.com", "", []source.Span{{Start: 0, End: 1}}, "example.com", nil},
		{"unsorted marks", "abcd", "x", "", []source.Span{{Start: 3, End: 4}, {Start: 0, End: 1}}, "abcd@x", []source.Span{{Start: 0, End: 1}, {Start: 3, End: 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeParts(tt.local, tt.domain, tt.resource, tt.spans)
			if got.Text != tt.want {
				t.Errorf("Text = %q, want %q", got.Text, tt.want)
			}
			if !slices.Equal(got.Marks, tt.marks) {
				t.Errorf("Marks = %v, want %v", got.Marks, tt.marks)
			}
		})
	}
}

func TestComposeDoesNotMutateSpans(t *testing.T) {
	spans := []source.Span{{Start: 3, End: 4}, {Start: 0, End: 1}}
	ComposeParts("abcd", "x", "", spans)
	if spans[0].Start != 3 {
		t.Fatal("input spans reordered")
	}
}

func TestComposeFromDetector(t *testing.T) {
	d := detect.MustNew(detect.DefaultOptions())
	id := jid.MustNew("", "example.com", "phone")
	r := Compose(id, d.Match(id))
	if r.Text != "example.com/phone" || r.Marked() {
		t.Errorf("got %+v", r)
	}
}

func TestSegments(t *testing.T) {
	r := Rendered{Text: "pаypal@x", Marks: []source.Span{{Start: 1, End: 3}}}
	var parts []string
	r.Segments(func(text string, marked bool) {
		if marked {
			text = "<" + text + ">"
		}
		parts = append(parts, text)
	})
	if got := strings.Join(parts, ""); got != "p<а>ypal@x" {
		t.Errorf("segments = %q", got)
	}
	r = Rendered{Text: "ab", Marks: []source.Span{{Start: 0, End: 2}}}
	parts = parts[:0]
	r.Segments(func(text string, _ bool) { parts = append(parts, text) })
	if len(parts) != 1 {
		t.Errorf("full mark produced %q", parts)
	}
}

func TestHighlighter(t *testing.T) {
	r := Rendered{Text: "pаypal@example.com", Marks: []source.Span{{Start: 1, End: 3}}}
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"plain", Options{Mode: ModePlain}, "pаypal@example.com"},
		{"markup", Options{Mode: ModeMarkup, MarkerOpen: "[", MarkerClose: "]"}, "p[а]ypal@example.com"},
		{"markup custom", Options{Mode: ModeMarkup, MarkerOpen: "<<", MarkerClose: ">>"}, "p<<а>>ypal@example.com"},
		{"ansi", Options{Mode: ModeANSI, Color: "red"}, "p\x1b[31mа\x1b[0mypal@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHighlighter(tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := h.String(r); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHighlighterModifiers(t *testing.T) {
	h, err := NewHighlighter(Options{Mode: ModeANSI, Color: "hi-yellow+bold"})
	if err != nil {
		t.Fatal(err)
	}
	got := h.String(Rendered{Text: "aб", Marks: []source.Span{{Start: 1, End: 3}}})
	if !strings.HasPrefix(got, "a\x1b[93;1mб\x1b[") || !strings.HasSuffix(got, "m") {
		t.Errorf("String() = %q", got)
	}
}

func TestHighlighterUnmarked(t *testing.T) {
	h, _ := NewHighlighter(Options{Mode: ModeANSI})
	if got := h.String(Rendered{Text: "paypal@x"}); got != "paypal@x" {
		t.Errorf("got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    []color.Attribute
		wantErr bool
	}{
		{"", []color.Attribute{color.FgRed}, false},
		{"Red", []color.Attribute{color.FgRed}, false},
		{"hi-cyan", []color.Attribute{color.FgHiCyan}, false},
		{"magenta+underline+bold", []color.Attribute{color.FgMagenta, color.Underline, color.Bold}, false},
		{"orange", nil, true},
		{"red+blink", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	d := detect.MustNew(detect.DefaultOptions())
	rep := d.Analyze(jid.MustNew("gооgle", "example.com", "web"))
	doc := NewDocument(rep)
	if !doc.Mixed || doc.Majority != "Basic Latin" || doc.ID != "gооgle@example.com/web" {
		t.Fatalf("doc = %+v", doc)
	}
	if len(doc.Spans) != 2 || doc.Spans[0].Text != "о" || doc.Spans[1].Start != 3 {
		t.Errorf("spans = %+v", doc.Spans)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, []Document{doc}); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded[0]["mixed"] != true || decoded[0]["resource"] != "web" {
		t.Errorf("json = %s", buf.String())
	}

	buf.Reset()
	if err := WriteMsgpack(&buf, []Document{doc}); err != nil {
		t.Fatal(err)
	}
	back, err := ReadMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || back[0].ID != doc.ID || len(back[0].Spans) != 2 {
		t.Errorf("msgpack = %+v", back)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("got %q", buf.String())
	}
}
