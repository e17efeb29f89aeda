package dotenv

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/denv/pkg"
)

// Parse scans data and returns its records in appearance order with
// interpolation spans recorded but not yet substituted. Parsing never
// fails; see the package documentation for the fallback rules.
func Parse(ctx context.Context, data []byte, opts ...Option) []*Record {
	cfg := makeConfig(opts...)

	var records []*Record

	p := newParser(data, cfg)
	for {
		rec, ok := p.next(ctx)
		if !ok {
			break
		}

		cfg.logger.TraceContext(ctx, "parsed record",
			slog.String("key", rec.Key),
			slog.String("mode", rec.Mode().String()),
			slog.Int("refs", len(rec.Refs())),
		)

		records = append(records, rec)
	}

	return records
}

// ParseString scans s; see [Parse].
func ParseString(ctx context.Context, s string, opts ...Option) []*Record {
	return Parse(ctx, []byte(s), opts...)
}

// ParseReader reads r to completion and scans its content. The only error
// condition is a failure reading r.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) ([]*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.MakeError(err, pkg.ErrReadInput)
	}

	return Parse(ctx, data, opts...), nil
}

// Load parses and finalizes in one step.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Env, error) {
	records, err := ParseReader(ctx, r, opts...)
	if err != nil {
		return nil, err
	}

	return Finalize(ctx, records, opts...), nil
}

// LoadString parses and finalizes s in one step.
func LoadString(ctx context.Context, s string, opts ...Option) *Env {
	return Finalize(ctx, ParseString(ctx, s, opts...), opts...)
}
