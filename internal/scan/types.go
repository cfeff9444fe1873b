package scan

import (
	"time"

	"github.com/google/uuid"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/render"
)

// Status captures progress state of one input.
type Status string

const (
	// StatusQueued indicates the input is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the input is being read.
	StatusWorking Status = "scanning"
	// StatusDone indicates the input was read to the end.
	StatusDone Status = "done"
	// StatusError indicates the input could not be read.
	StatusError Status = "error"
)

// Event reports progress for an input (or for the whole run when File
// is empty).
type Event struct {
	File    string
	Status  Status
	Scanned int
	Flagged int
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. OnEvent is called from worker
// goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Recorder receives per-entry and per-file measurements.
type Recorder interface {
	ObserveEntry(flagged bool)
	ObserveParseError()
	ObserveFile(d time.Duration)
}

// Entry is one non-blank, non-comment input line.
type Entry struct {
	Line   int              `json:"line" msgpack:"line"`
	Input  string           `json:"input" msgpack:"input"`
	Err    string           `json:"error,omitempty" msgpack:"error,omitempty"`
	Report *render.Document `json:"report,omitempty" msgpack:"report,omitempty"`
}

// Flagged reports whether the entry parsed and had mixed scripts.
func (e Entry) Flagged() bool { return e.Report != nil && e.Report.Mixed }

// FileResult is the outcome for one input.
type FileResult struct {
	Path    string        `json:"path" msgpack:"path"`
	Scanned int           `json:"scanned" msgpack:"scanned"`
	Flagged int           `json:"flagged" msgpack:"flagged"`
	Errors  int           `json:"errors" msgpack:"errors"`
	Elapsed time.Duration `json:"elapsed_ns" msgpack:"elapsed_ns"`
	Err     string        `json:"error,omitempty" msgpack:"error,omitempty"`
	Entries []Entry       `json:"entries,omitempty" msgpack:"entries,omitempty"`
}

// Totals sums the per-file counters.
type Totals struct {
	Files   int `json:"files" msgpack:"files"`
	Scanned int `json:"scanned" msgpack:"scanned"`
	Flagged int `json:"flagged" msgpack:"flagged"`
	Errors  int `json:"errors" msgpack:"errors"`
	// Failed counts inputs that could not be read at all.
	Failed int `json:"failed" msgpack:"failed"`
}

// Result is the outcome of one Run.
type Result struct {
	RunID   uuid.UUID         `json:"run_id" msgpack:"run_id"`
	Started time.Time         `json:"started" msgpack:"started"`
	Elapsed time.Duration     `json:"elapsed_ns" msgpack:"elapsed_ns"`
	Files   []FileResult      `json:"files" msgpack:"files"`
	Totals  Totals            `json:"totals" msgpack:"totals"`
	Cache   detect.CacheStats `json:"cache" msgpack:"cache"`
}
