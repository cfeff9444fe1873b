package detect

import (
	"fmt"

	"glyphwatch/internal/jid"
	"glyphwatch/internal/script"
	"glyphwatch/internal/source"
	"glyphwatch/internal/trace"
)

// Observer receives cache activity. Implementations must be safe for
// concurrent use. CacheMiss and CacheEvict run while the cache lock is
// held, so a miss is always reported before the eviction it causes;
// they must not call back into the Detector.
type Observer interface {
	CacheHit(id jid.JID)
	CacheMiss(id jid.JID)
	CacheEvict(id jid.JID)
}

// Options configures a Detector. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Capacity int
	Folding  script.Folding
	TieBreak TieBreak
	Tracer   trace.Tracer
	Observer Observer
}

// DefaultOptions returns capacity 100, the default folding table and the
// Latin-preferring tie-break.
func DefaultOptions() Options {
	return Options{
		Capacity: DefaultCapacity,
		Folding:  script.DefaultFolding(),
		TieBreak: TieBreakLatin,
		Tracer:   trace.Nop,
	}
}

// Detector flags mixed-script local parts. It owns its cache; construct
// one per process (or per test) and share it between goroutines.
type Detector struct {
	cache    *Cache
	folding  script.Folding
	tieBreak TieBreak
	tracer   trace.Tracer
	observer Observer
}

// New creates a Detector.
func New(opts Options) (*Detector, error) {
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	if err := opts.Folding.Validate(); err != nil {
		return nil, err
	}
	d := &Detector{
		folding:  opts.Folding.Clone(),
		tieBreak: opts.TieBreak,
		tracer:   opts.Tracer,
		observer: opts.Observer,
	}
	cache, err := NewCache(opts.Capacity, d.evicted)
	if err != nil {
		return nil, err
	}
	d.cache = cache
	return d, nil
}

// MustNew is New that panics on error.
func MustNew(opts Options) *Detector {
	d, err := New(opts)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Detector) evicted(id jid.JID) {
	trace.Point(d.tracer, trace.ScopeEntry, "cache.evict", id.String())
	if d.observer != nil {
		d.observer.CacheEvict(id)
	}
}

// Cache exposes the underlying cache for inspection.
func (d *Detector) Cache() *Cache { return d.cache }

// Folding returns a copy of the folding table in use.
func (d *Detector) Folding() script.Folding { return d.folding.Clone() }

// TieBreak returns the tie-break policy in use.
func (d *Detector) TieBreak() TieBreak { return d.tieBreak }

// Match returns the spans of id.Local() that belong to minority classes.
// An empty result means nothing suspicious was found.
func (d *Detector) Match(id jid.JID) []source.Span {
	return d.matcher(id).FindAll(id.Local())
}

func (d *Detector) matcher(id jid.JID) *Matcher {
	m, hit, err := d.cache.GetOrCompile(id, func() (*Matcher, error) {
		set, majority := Partition(id.Local(), d.folding, d.tieBreak)
		m, err := Compile(set)
		if err != nil {
			return nil, err
		}
		m.majority = majority
		// под замком кэша, до вытеснения: Miss всегда раньше парного Evict
		trace.Point(d.tracer, trace.ScopeEntry, "cache.miss", id.String())
		if d.observer != nil {
			d.observer.CacheMiss(id)
		}
		return m, nil
	})
	if err != nil {
		// quoted single code points always compile
		panic(fmt.Errorf("detect: %s: %w", id, err))
	}
	if hit {
		trace.Point(d.tracer, trace.ScopeEntry, "cache.hit", id.String())
		if d.observer != nil {
			d.observer.CacheHit(id)
		}
	}
	return m
}

// Report is the full outcome for one identifier.
type Report struct {
	ID       jid.JID
	Spans    []source.Span
	Majority script.Class
	Minority MinoritySet
	Pattern  string
}

// Mixed reports whether any code point was flagged.
func (r Report) Mixed() bool { return len(r.Spans) > 0 }

// Analyze is Match plus the data behind the decision.
func (d *Detector) Analyze(id jid.JID) Report {
	m := d.matcher(id)
	return Report{
		ID:       id,
		Spans:    m.FindAll(id.Local()),
		Majority: m.majority,
		Minority: m.Set(),
		Pattern:  m.Pattern(),
	}
}
