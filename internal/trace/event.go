package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1 // span start
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd // span end
	// KindPoint represents an instant event.
	KindPoint     // instant event
	KindHeartbeat // periodic liveness signal
	KindError     // failure, emitted at any level above off
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeDriver represents CLI command boundaries.
	ScopeDriver Scope = iota + 1
	// ScopeBatch represents one scan run over many inputs.
	ScopeBatch
	// ScopeFile represents one input file of a scan.
	ScopeFile
	// ScopeEntry represents a single identifier (cache lookups).
	ScopeEntry
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopeBatch:
		return "batch"
	case ScopeFile:
		return "file"
	case ScopeEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier
	ParentID uint64            // parent span (0 if root)
	GID      uint64            // goroutine ID (for concurrent spans)
	Name     string            // e.g. "scan", "file:ids.txt", "cache.miss"
	Detail   string            // optional detail message
	Extra    map[string]string // extensible key-value pairs
}

// accepts reports whether a tracer at level l keeps ev.
func (l Level) accepts(ev *Event) bool {
	switch ev.Kind {
	case KindHeartbeat, KindError:
		return l > LevelOff
	}
	return l.ShouldEmit(ev.Scope)
}
