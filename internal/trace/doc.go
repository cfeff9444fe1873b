// Package trace provides the tracing subsystem used in place of a logger.
//
// The detector reports cache activity (hit, miss, evict) as point events,
// the batch scanner wraps each run and each input file in spans. Nothing
// is emitted unless a tracer is configured.
//
// # Usage
//
//	glyphwatch scan --trace=- --trace-level=debug ids.txt
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to a file or stderr
//   - RingTracer: last N events in memory, dumped on demand
//   - MultiTracer: fan-out to several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failures
//   - LevelPhase: driver and batch boundaries
//   - LevelDetail: per input file
//   - LevelDebug: everything, including per-identifier cache events
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeBatch, "scan", 0)
//	defer span.End("")
package trace
