package dotenv

import (
	"context"
	"log/slog"
)

// Status classifies how a record's final value was produced.
type Status int

const (
	// StatusCopied marks a value carried over without substitution.
	StatusCopied Status = iota

	// StatusInterpolated marks a value with at least one reference
	// substituted.
	StatusInterpolated

	// StatusCircular marks a value containing a reference that could not
	// be substituted because doing so would recurse. Circular status
	// dominates: a value that substituted some references but hit a
	// cycle on another is circular.
	StatusCircular
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusInterpolated:
		return "interpolated"
	case StatusCircular:
		return "circular"
	}

	return "invalid"
}

// finalizer rewrites record values in place, substituting references in
// dependency order regardless of declaration order.
type finalizer struct {
	index    map[string]*Record
	cfg      config
	maxDepth int
}

// Finalize resolves every interpolation span across records and returns
// the resulting environment. Records are consumed: their value buffers
// are handed to the environment and their Raw content is emptied.
//
// Duplicate keys keep their first position but take the value and status
// of the last occurrence. References always resolve against the last
// occurrence of a name.
func Finalize(ctx context.Context, records []*Record, opts ...Option) *Env {
	f := &finalizer{
		index: make(map[string]*Record, len(records)),
		cfg:   makeConfig(opts...),

		// No acyclic chain can be longer than the record count; any
		// deeper recursion indicates a cycle the resolving flag has
		// already caught.
		maxDepth: len(records) + 1,
	}

	for _, rec := range records {
		if rec.Key != "" {
			f.index[rec.Key] = rec
		}
	}

	for _, rec := range records {
		f.resolve(ctx, rec, 0)
	}

	env := newEnv(len(records))
	for _, rec := range records {
		env.set(rec.Key, string(rec.value.buf.take()), rec.status)
	}

	f.cfg.logger.TraceContext(ctx, "finalized records",
		slog.Int("records", len(records)),
		slog.Int("keys", env.Len()),
	)

	return env
}

// resolve substitutes the record's spans and returns its status. Spans
// splice in reverse appearance order so earlier span indices stay valid
// as the buffer is rewritten.
func (f *finalizer) resolve(ctx context.Context, rec *Record, depth int) Status {
	if rec.resolved {
		return rec.status
	}

	if rec.resolving || depth > f.maxDepth {
		return StatusCircular
	}

	rec.resolving = true
	status := StatusCopied

	v := &rec.value
	for i := len(v.spans) - 1; i >= 0; i-- {
		sp := v.spans[i]
		if !sp.closed || sp.name == "" {
			continue
		}

		ref, ok := f.index[sp.name]
		if !ok {
			// Unknown reference: the literal text stands.
			continue
		}

		if f.resolve(ctx, ref, depth+1) == StatusCircular {
			status = StatusCircular

			f.cfg.logger.DebugContext(ctx, "circular reference",
				slog.String("key", rec.Key),
				slog.String("ref", sp.name),
			)

			continue
		}

		v.buf.splice(sp.dollar, sp.last(), ref.value.buf.bytes())

		if status != StatusCircular {
			status = StatusInterpolated
		}
	}

	rec.resolving = false
	rec.resolved = true
	rec.status = status

	return status
}
