package observ

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	endLoad := tm.Begin("config")
	endLoad("")
	err := tm.Measure("scan", func() error { return errors.New("boom") })
	if err == nil {
		t.Fatal("Measure must return fn's error")
	}

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].Name != "config" || r.Phases[0].DurationMS != 1 {
		t.Errorf("phase 0 = %+v", r.Phases[0])
	}
	if r.Phases[1].Note != "failed" {
		t.Errorf("phase 1 = %+v", r.Phases[1])
	}
	if r.TotalMS != 2 {
		t.Errorf("TotalMS = %v", r.TotalMS)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)
	tm.Begin("detector")("cap 100")

	got := tm.Summary()
	want := "timings:\n  detector      2.00 ms  // cap 100\n  total         2.00 ms\n"
	if got != want {
		t.Errorf("Summary() =\n%q\nwant\n%q", got, want)
	}
}

func TestEmptyAndNilTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Errorf("empty report = %+v", r)
	}
	var tm *Timer
	tm.Begin("x")("ignored")
	if !strings.HasPrefix(NewTimer().Summary(), "timings:") {
		t.Error("summary header")
	}
}
