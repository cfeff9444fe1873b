package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"glyphwatch/internal/scan"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.txt", 20, "short.txt"},
		{"a/very/long/path/ids.txt", 10, "a/very/..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
		{"пример.txt", 6, "при..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTruncateFitsWidth(t *testing.T) {
	for _, in := range []string{"a/very/long/path/ids.txt", "пример/очень/длинный.txt", "日本語のファイル名.txt"} {
		for width := 4; width < runewidth.StringWidth(in); width++ {
			got := truncate(in, width)
			if w := runewidth.StringWidth(got); w > width || w < width-1 {
				t.Errorf("truncate(%q, %d) = %q, width %d", in, width, got, w)
			}
			if !strings.HasSuffix(got, "...") {
				t.Errorf("truncate(%q, %d) = %q, missing ellipsis", in, width, got)
			}
		}
	}
}

func TestProgressModelApplyEvents(t *testing.T) {
	m := NewProgressModel("scan", []string{"a.txt", "b.txt"}, nil).(*progressModel)

	m.applyEvent(scan.Event{File: "a.txt", Status: scan.StatusWorking})
	m.applyEvent(scan.Event{File: "a.txt", Status: scan.StatusDone, Scanned: 10, Flagged: 2})
	m.applyEvent(scan.Event{File: "b.txt", Status: scan.StatusError})
	m.applyEvent(scan.Event{File: "unknown.txt", Status: scan.StatusDone, Flagged: 99})

	if m.items[0].status != scan.StatusDone || m.items[0].flagged != 2 {
		t.Errorf("a.txt = %+v", m.items[0])
	}
	if m.items[1].status != scan.StatusError {
		t.Errorf("b.txt = %+v", m.items[1])
	}
	if got := m.totalFlagged(); got != 2 {
		t.Errorf("totalFlagged = %d", got)
	}

	view := m.View()
	for _, want := range []string{"scan (2 flagged)", "a.txt", "2/10 flagged", "b.txt"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModelQuitsOnClose(t *testing.T) {
	ch := make(chan scan.Event)
	close(ch)
	m := NewProgressModel("scan", []string{"a"}, ch).(*progressModel)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel should produce doneMsg")
	}
	_, cmd := m.Update(doneMsg{})
	if cmd == nil || !m.done {
		t.Fatal("model did not finish")
	}
}

func TestProgressModelQuitsOnCtrlC(t *testing.T) {
	m := NewProgressModel("scan", []string{"a"}, nil).(*progressModel)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.done {
		t.Fatal("ctrl+c did not quit")
	}
	m2 := NewProgressModel("scan", []string{"a"}, nil).(*progressModel)
	if _, cmd := m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd != nil || m2.done {
		t.Error("other keys are ignored")
	}
}

func TestProgressFromStatus(t *testing.T) {
	if progressFromStatus(scan.StatusQueued) != 0 || progressFromStatus(scan.StatusError) != 1 {
		t.Error("unexpected progress weights")
	}
}
