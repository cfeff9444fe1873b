// Package scan runs the detector over files of identifiers, one per
// line, in parallel.
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/jid"
	"glyphwatch/internal/render"
	"glyphwatch/internal/trace"
)

// StdinName is the source name that reads standard input.
const StdinName = "-"

// maxLine bounds one input line; three maximal parts plus separators.
const maxLine = 4 * jid.MaxPartLen

// Source is one named input.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource reads path, or standard input when path is "-".
func FileSource(path string) Source {
	if path == StdinName {
		return Source{Name: StdinName, Open: func() (io.ReadCloser, error) {
			return io.NopCloser(os.Stdin), nil
		}}
	}
	return Source{Name: path, Open: func() (io.ReadCloser, error) {
		return os.Open(path)
	}}
}

// ReaderSource wraps an in-memory reader; used by tests and by callers
// that already hold the data.
func ReaderSource(name string, r io.Reader) Source {
	return Source{Name: name, Open: func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}}
}

// Options configures Run.
type Options struct {
	// Jobs limits concurrent inputs; <= 0 means GOMAXPROCS.
	Jobs int
	// Strict parses with PRECIS enforcement.
	Strict bool
	// OnlyFlagged keeps only flagged and failed entries in the result.
	// Counters still cover every line.
	OnlyFlagged bool
	Progress    ProgressSink
	Recorder    Recorder
}

// Run scans every source with det. Unreadable inputs and unparsable
// lines are recorded in the result; the returned error is non-nil only
// when ctx is cancelled.
func Run(ctx context.Context, det *detect.Detector, sources []Source, opts Options) (*Result, error) {
	res := &Result{
		RunID:   uuid.New(),
		Started: time.Now(),
		Files:   make([]FileResult, len(sources)),
	}
	tracer := trace.FromContext(ctx)
	runSpan := trace.Begin(tracer, trace.ScopeBatch, "scan", 0).WithExtra("run_id", res.RunID.String())

	for i, src := range sources {
		res.Files[i].Path = src.Name
		emit(opts.Progress, Event{File: src.Name, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(sources))))
	for i, src := range sources {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fr, err := scanSource(gctx, det, src, opts, runSpan.ID())
			// индекс уникален для горутины, мьютекс не нужен
			res.Files[i] = fr
			return err
		})
	}
	err := g.Wait()

	for _, fr := range res.Files {
		res.Totals.Files++
		res.Totals.Scanned += fr.Scanned
		res.Totals.Flagged += fr.Flagged
		res.Totals.Errors += fr.Errors
		if fr.Err != "" {
			res.Totals.Failed++
		}
	}
	res.Cache = det.Cache().Stats()
	res.Elapsed = time.Since(res.Started)
	runSpan.WithExtra("scanned", strconv.Itoa(res.Totals.Scanned)).
		WithExtra("flagged", strconv.Itoa(res.Totals.Flagged)).
		End("")
	return res, err
}

func scanSource(ctx context.Context, det *detect.Detector, src Source, opts Options, parent uint64) (FileResult, error) {
	fr := FileResult{Path: src.Name}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file", parent).WithExtra("path", src.Name)
	start := time.Now()
	emit(opts.Progress, Event{File: src.Name, Status: StatusWorking})

	finish := func(err error) (FileResult, error) {
		fr.Elapsed = time.Since(start)
		if opts.Recorder != nil {
			opts.Recorder.ObserveFile(fr.Elapsed)
		}
		status := StatusDone
		if fr.Err != "" {
			status = StatusError
			trace.Errorf(tracer, trace.ScopeFile, "file.error", "%s: %s", src.Name, fr.Err)
		}
		span.WithExtra("scanned", strconv.Itoa(fr.Scanned)).End(string(status))
		emit(opts.Progress, Event{
			File:    src.Name,
			Status:  status,
			Scanned: fr.Scanned,
			Flagged: fr.Flagged,
			Err:     errorOf(fr.Err),
			Elapsed: fr.Elapsed,
		})
		return fr, err
	}

	rc, err := src.Open()
	if err != nil {
		fr.Err = err.Error()
		return finish(nil)
	}
	defer rc.Close()

	parse := jid.Parse
	if opts.Strict {
		parse = jid.ParseStrict
	}

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entry := Entry{Line: line, Input: text}
		id, perr := parse(text)
		if perr != nil {
			entry.Err = perr.Error()
			fr.Errors++
			if opts.Recorder != nil {
				opts.Recorder.ObserveParseError()
			}
			fr.Entries = append(fr.Entries, entry)
			continue
		}
		rep := det.Analyze(id)
		doc := render.NewDocument(rep)
		entry.Report = &doc
		fr.Scanned++
		if rep.Mixed() {
			fr.Flagged++
		}
		if opts.Recorder != nil {
			opts.Recorder.ObserveEntry(rep.Mixed())
		}
		if !opts.OnlyFlagged || rep.Mixed() {
			fr.Entries = append(fr.Entries, entry)
		}
	}
	if err := sc.Err(); err != nil {
		fr.Err = fmt.Sprintf("line %d: %v", line+1, err)
	}
	return finish(nil)
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

func errorOf(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}
