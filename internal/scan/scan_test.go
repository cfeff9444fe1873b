package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glyphwatch/internal/detect"
	"glyphwatch/internal/render"
	"glyphwatch/internal/trace"
)

const sample = `# staff accounts
paypal@example.com
pаypal@example.com

аррӏе@example.com
not an id
gооgle@example.com/web
`

type sinkRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (s *sinkRecorder) OnEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

type countRecorder struct {
	entries, flagged, parseErrors, files atomic.Int32
}

func (c *countRecorder) ObserveEntry(flagged bool) {
	c.entries.Add(1)
	if flagged {
		c.flagged.Add(1)
	}
}
func (c *countRecorder) ObserveParseError()        { c.parseErrors.Add(1) }
func (c *countRecorder) ObserveFile(time.Duration) { c.files.Add(1) }

func newDet(t *testing.T) *detect.Detector {
	t.Helper()
	d, err := detect.New(detect.DefaultOptions())
	require.NoError(t, err)
	return d
}

func TestRunSingleSource(t *testing.T) {
	rec := &countRecorder{}
	res, err := Run(context.Background(), newDet(t), []Source{ReaderSource("ids.txt", strings.NewReader(sample))}, Options{Recorder: rec})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.NotEqual(t, uuid.Nil, res.RunID)

	fr := res.Files[0]
	assert.Equal(t, "ids.txt", fr.Path)
	assert.Equal(t, 4, fr.Scanned)
	assert.Equal(t, 2, fr.Flagged)
	assert.Equal(t, 1, fr.Errors)
	require.Len(t, fr.Entries, 5)

	// номера строк считаются с учётом комментариев и пустых строк
	assert.Equal(t, 2, fr.Entries[0].Line)
	assert.False(t, fr.Entries[0].Flagged())
	assert.Equal(t, 3, fr.Entries[1].Line)
	assert.True(t, fr.Entries[1].Flagged())
	assert.Equal(t, 5, fr.Entries[2].Line)
	assert.False(t, fr.Entries[2].Flagged(), "single-script identifiers are never flagged")
	assert.Equal(t, 6, fr.Entries[3].Line)
	assert.NotEmpty(t, fr.Entries[3].Err)
	assert.Nil(t, fr.Entries[3].Report)
	assert.Equal(t, "web", fr.Entries[4].Report.Resource)

	assert.Equal(t, Totals{Files: 1, Scanned: 4, Flagged: 2, Errors: 1}, res.Totals)
	assert.Equal(t, uint64(4), res.Cache.Misses)

	assert.EqualValues(t, 4, rec.entries.Load())
	assert.EqualValues(t, 2, rec.flagged.Load())
	assert.EqualValues(t, 1, rec.parseErrors.Load())
	assert.EqualValues(t, 1, rec.files.Load())
}

func TestRunOnlyFlagged(t *testing.T) {
	res, err := Run(context.Background(), newDet(t), []Source{ReaderSource("ids", strings.NewReader(sample))}, Options{OnlyFlagged: true})
	require.NoError(t, err)
	fr := res.Files[0]
	assert.Equal(t, 4, fr.Scanned)
	for _, e := range fr.Entries {
		assert.True(t, e.Flagged() || e.Err != "", "unexpected clean entry %+v", e)
	}
	assert.Len(t, fr.Entries, 3)
}

func TestRunStrict(t *testing.T) {
	// смешение направлений письма отвергает только PRECIS
	in := "aאb@example.com\n"
	lenient, err := Run(context.Background(), newDet(t), []Source{ReaderSource("a", strings.NewReader(in))}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, lenient.Totals.Flagged)

	strict, err := Run(context.Background(), newDet(t), []Source{ReaderSource("a", strings.NewReader(in))}, Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, 1, strict.Totals.Errors)
	assert.Zero(t, strict.Totals.Scanned)
}

func TestRunManyFilesShareCache(t *testing.T) {
	dir := t.TempDir()
	var sources []Source
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
		sources = append(sources, FileSource(path))
	}
	sink := &sinkRecorder{}
	det := newDet(t)
	res, err := Run(context.Background(), det, sources, Options{Jobs: 2, Progress: sink})
	require.NoError(t, err)

	assert.Equal(t, 16, res.Totals.Scanned)
	assert.Equal(t, 8, res.Totals.Flagged)
	// одинаковые идентификаторы во всех файлах: компиляция по одному разу
	assert.Equal(t, uint64(4), res.Cache.Misses)
	assert.Equal(t, uint64(12), res.Cache.Hits)
	for i, fr := range res.Files {
		assert.Equal(t, sources[i].Name, fr.Path, "results keep input order")
	}

	var queued, done int
	for _, ev := range sink.events {
		switch ev.Status {
		case StatusQueued:
			queued++
		case StatusDone:
			done++
			assert.Equal(t, 4, ev.Scanned)
		}
	}
	assert.Equal(t, 4, queued)
	assert.Equal(t, 4, done)
}

func TestRunUnreadableFile(t *testing.T) {
	sink := &sinkRecorder{}
	missing := filepath.Join(t.TempDir(), "missing.txt")
	res, err := Run(context.Background(), newDet(t), []Source{
		FileSource(missing),
		ReaderSource("ok", strings.NewReader("a@b\n")),
	}, Options{Progress: sink})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Files[0].Err)
	assert.Equal(t, 1, res.Totals.Failed)
	assert.Equal(t, 1, res.Totals.Scanned)

	var sawError bool
	for _, ev := range sink.events {
		if ev.File == missing && ev.Status == StatusError {
			sawError = true
			assert.Error(t, ev.Err)
		}
	}
	assert.True(t, sawError)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRunReadError(t *testing.T) {
	res, err := Run(context.Background(), newDet(t), []Source{ReaderSource("bad", failingReader{})}, Options{})
	require.NoError(t, err)
	assert.Contains(t, res.Files[0].Err, "disk on fire")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, newDet(t), []Source{ReaderSource("a", strings.NewReader(sample))}, Options{})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, "a", res.Files[0].Path)
}

func TestRunNoSources(t *testing.T) {
	res, err := Run(context.Background(), newDet(t), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Zero(t, res.Totals.Files)
}

func TestRunTrace(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	_, err := Run(ctx, newDet(t), []Source{ReaderSource("ids.txt", strings.NewReader(sample))}, Options{})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "scan")
	assert.Contains(t, out, "path=ids.txt")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatPretty, "PRETTY": FormatPretty, "json": FormatJSON, "msgpack": FormatMsgpack} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func runSample(t *testing.T) *Result {
	t.Helper()
	res, err := Run(context.Background(), newDet(t), []Source{ReaderSource("ids.txt", strings.NewReader(sample))}, Options{})
	require.NoError(t, err)
	return res
}

func TestWritePretty(t *testing.T) {
	res := runSample(t)
	h, err := render.NewHighlighter(render.Options{Mode: render.ModeMarkup, MarkerOpen: "[", MarkerClose: "]"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatPretty, PrettyOpts{Highlighter: h}))
	out := buf.String()

	assert.Contains(t, out, "== ids.txt (4 scanned, 2 flagged, 1 errors)")
	assert.Contains(t, out, "p[а]ypal@example.com")
	assert.Contains(t, out, "g[оо]gle@example.com/web")
	assert.Contains(t, out, "U+0430")
	assert.Contains(t, out, "ERROR")
	assert.NotContains(t, out, "paypal@example.com  ", "clean entries hidden unless verbose")
	assert.True(t, strings.HasSuffix(out, "(run "+res.RunID.String()+")\n"))

	buf.Reset()
	require.NoError(t, WritePretty(&buf, res, PrettyOpts{Verbose: true}))
	assert.Contains(t, buf.String(), " ok ")
}

func TestWriteJSONAndMsgpack(t *testing.T) {
	res := runSample(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, FormatJSON, PrettyOpts{}))
	var decoded struct {
		RunID  string `json:"run_id"`
		Totals Totals `json:"totals"`
		Files  []struct {
			Entries []json.RawMessage `json:"entries"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.RunID.String(), decoded.RunID)
	assert.Equal(t, res.Totals, decoded.Totals)
	assert.Len(t, decoded.Files[0].Entries, 5)

	buf.Reset()
	require.NoError(t, Write(&buf, res, FormatMsgpack, PrettyOpts{}))
	back, err := ReadMsgpack(&buf)
	require.NoError(t, err)
	assert.Equal(t, res.RunID, back.RunID)
	assert.Equal(t, res.Totals, back.Totals)
	require.Len(t, back.Files[0].Entries, 5)
	assert.Equal(t, res.Files[0].Entries[1].Report.Spans, back.Files[0].Entries[1].Report.Spans)
}

func TestWatchRescansOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ids.txt")
	require.NoError(t, os.WriteFile(path, []byte("a@b\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runs := make(chan int, 8)
	var n atomic.Int32
	errc := make(chan error, 1)
	go func() {
		errc <- Watch(ctx, []string{path, StdinName}, 20*time.Millisecond, func(context.Context) error {
			runs <- int(n.Add(1))
			return nil
		})
	}()

	require.Equal(t, 1, <-runs, "initial run")
	require.NoError(t, os.WriteFile(path, []byte("a@b\nc@d\n"), 0o644))

	select {
	case got := <-runs:
		assert.Equal(t, 2, got)
	case <-ctx.Done():
		t.Fatal("no rescan after write")
	}
	cancel()
	assert.NoError(t, <-errc)
}

func TestWatchStopsOnCallbackError(t *testing.T) {
	boom := errors.New("boom")
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "x")}, 0, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}
