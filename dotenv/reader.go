package dotenv

import (
	"context"
	"log/slog"
	"strings"
)

// parser consumes an in-memory byte sequence and produces raw records.
// It never fails: lines that do not form a record are discarded with a
// diagnostic, and scanning resumes at the next line.
type parser struct {
	input []byte
	pos   int
	cfg   config
}

func newParser(input []byte, cfg config) *parser {
	return &parser{input: input, cfg: cfg}
}

// next returns the next record, or false when input is exhausted.
func (p *parser) next(ctx context.Context) (*Record, bool) {
	for p.pos < len(p.input) {
		key, ok := p.readKey(ctx)
		if !ok {
			continue
		}

		rec := &Record{Key: key}
		p.readValue(rec)

		return rec, true
	}

	return nil, false
}

// readKey scans up to and through the separator, returning the trimmed
// key. Comment lines, blank lines, and lines with no separator report
// false, with input advanced past them.
func (p *parser) readKey(ctx context.Context) (string, bool) {
	start := p.pos

	for p.pos < len(p.input) {
		b := p.input[p.pos]

		switch b {
		case '=':
			key := p.key(p.input[start:p.pos])
			p.pos++

			return key, true

		case ':':
			if p.cfg.colonSeparator && p.pos+1 < len(p.input) && p.input[p.pos+1] == ' ' {
				key := p.key(p.input[start:p.pos])
				p.pos++

				return key, true
			}

		case '#':
			// Comment line: nothing before the '#' can have formed
			// a key, since '#' may not appear in one.
			p.skipLine()

			return "", false

		case '\n':
			p.discardLine(ctx, p.input[start:p.pos])
			p.pos++

			return "", false
		}

		p.pos++
	}

	p.discardLine(ctx, p.input[start:])

	return "", false
}

// key normalizes the raw bytes before the separator.
func (p *parser) key(raw []byte) string {
	k := strings.Trim(string(raw), " \t\r")

	if p.cfg.exportPrefix {
		if rest, ok := strings.CutPrefix(k, "export "); ok {
			k = strings.TrimLeft(rest, " ")
		}
	}

	return k
}

// readValue runs the value state machine from the current position. When
// the value terminates before its line does, the remainder of the line is
// discarded.
func (p *parser) readValue(rec *Record) {
	sc := newValueScanner(p.cfg.braceless)

	for p.pos < len(p.input) {
		b := p.input[p.pos]
		p.pos++

		if sc.feed(b) {
			if b != '\n' {
				p.skipLine()
			}

			rec.value = sc.value

			return
		}
	}

	sc.finish()
	rec.value = sc.value
}

// skipLine advances past the next newline, inclusive.
func (p *parser) skipLine() {
	for p.pos < len(p.input) {
		b := p.input[p.pos]
		p.pos++

		if b == '\n' {
			return
		}
	}
}

// discardLine logs a line dropped for having no separator. Blank lines
// are dropped silently.
func (p *parser) discardLine(ctx context.Context, line []byte) {
	if len(strings.Trim(string(line), " \t\r")) == 0 {
		return
	}

	p.cfg.logger.DebugContext(ctx, "discarding malformed line",
		slog.String("line", strings.TrimRight(string(line), "\r")),
	)
}
