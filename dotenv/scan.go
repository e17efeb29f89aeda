package dotenv

// valueScanner drives one value through the quoting state machine a single
// byte at a time. The zero value is not ready; use newValueScanner.
type valueScanner struct {
	value     rawValue
	braceless bool
}

func newValueScanner(braceless bool) valueScanner {
	return valueScanner{
		value:     rawValue{active: -1},
		braceless: braceless,
	}
}

// feed processes one input byte and reports whether the value terminated
// on this byte. Bytes following a terminator on the same line belong to
// the caller to discard.
func (s *valueScanner) feed(b byte) bool {
	v := &s.value

	// A pending backslash run resolves as soon as a different byte
	// arrives. An odd run may consume that byte as an escape sequence.
	if v.backslashes > 0 && b != '\\' && s.resolveBackslashes(b) {
		return false
	}

	// A pending quote run resolves the same way, and may terminate the
	// value when it matches the active delimiter.
	if v.singles > 0 && b != '\'' && s.resolveSingles() {
		s.terminate(b)

		return true
	}

	if v.doubles > 0 && b != '"' && s.resolveDoubles() {
		s.terminate(b)

		return true
	}

	if v.mode == ModeUnset && s.first(b) {
		return v.done
	}

	// A braceless reference ends at its first non-identifier byte.
	if s.braceless && v.active >= 0 && !v.spans[v.active].braced && !isIdentByte(b) {
		s.closeBraceless()
	}

	switch b {
	case '\'':
		switch v.mode {
		case ModeDouble, ModeTripleDouble, ModeBacktick, ModeImplicit:
			v.buf.writeByte(b)
		default:
			v.singles++
		}
	case '"':
		switch v.mode {
		case ModeSingle, ModeTripleSingle, ModeBacktick, ModeImplicit:
			v.buf.writeByte(b)
		default:
			v.doubles++
		}
	case '\\':
		if v.mode.literal() {
			v.buf.writeByte(b)
		} else {
			v.backslashes++
		}
	case '`':
		if v.mode == ModeBacktick {
			s.terminate(b)

			return true
		}

		v.buf.writeByte(b)
	case '\n':
		if v.mode.multiline() {
			v.buf.writeByte(b)

			return false
		}

		s.terminate(b)

		return true
	case '#':
		if v.mode == ModeImplicit {
			s.terminate(b)

			return true
		}

		v.buf.writeByte(b)
	case '{':
		v.buf.writeByte(b)
		s.openBraced()
	case '}':
		v.buf.writeByte(b)
		s.closeBraced()
	default:
		v.buf.writeByte(b)

		if s.braceless && v.active < 0 && isIdentByte(b) {
			s.openBraceless()
		}
	}

	return false
}

// first handles the byte that establishes the value's quoting mode.
// It reports whether the byte was fully handled here; when false, the
// byte falls through to ordinary handling (with the mode now set, unless
// the byte begins a quote run). A true return with done set means the
// value terminated without content.
func (s *valueScanner) first(b byte) bool {
	v := &s.value

	switch b {
	case ' ':
		// Leading spaces are trimmed in every mode.
		return true
	case '`':
		v.mode = ModeBacktick

		return true
	case '#', '\n':
		s.terminate(b)

		return true
	case '\'', '"':
		// Run length decides between quote, empty value, and heredoc.
		return false
	default:
		v.mode = ModeImplicit

		return false
	}
}

// resolveBackslashes collapses a pending backslash run now that byte b
// follows it. Each pair becomes one literal backslash; a trailing odd
// backslash combines with b as an escape sequence, consuming b. Unknown
// escapes keep both bytes verbatim. Reports whether b was consumed.
func (s *valueScanner) resolveBackslashes(b byte) bool {
	v := &s.value

	pairs, odd := v.backslashes/2, v.backslashes%2 == 1
	v.backslashes = 0

	for range pairs {
		v.buf.writeByte('\\')
	}

	if !odd {
		return false
	}

	if esc, ok := escapeCode(b); ok {
		v.buf.writeByte(esc)

		return true
	}

	v.buf.writeByte('\\')
	v.buf.writeByte(b)

	return true
}

// escapeCode maps an escape-sequence designator to its replacement byte.
func escapeCode(b byte) (byte, bool) {
	switch b {
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	case 'a':
		return '\a', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '\\':
		return '\\', true
	}

	return 0, false
}

// resolveSingles collapses a pending run of single quotes and reports
// whether the run terminated the value.
func (s *valueScanner) resolveSingles() bool {
	v := &s.value

	n := v.singles
	v.singles = 0

	return s.resolveQuotes(n, '\'', ModeSingle, ModeTripleSingle)
}

// resolveDoubles collapses a pending run of double quotes and reports
// whether the run terminated the value.
func (s *valueScanner) resolveDoubles() bool {
	v := &s.value

	n := v.doubles
	v.doubles = 0

	return s.resolveQuotes(n, '"', ModeDouble, ModeTripleDouble)
}

func (s *valueScanner) resolveQuotes(n int, q byte, single, triple Mode) bool {
	v := &s.value

	if v.mode == ModeUnset {
		switch {
		case n == 1:
			v.mode = single
		case n == 2:
			// Opening and closing quote with nothing between.
			v.mode = single

			return true
		default:
			v.mode = triple
			for range n - 3 {
				v.buf.writeByte(q)
			}
		}

		return false
	}

	switch v.mode {
	case single:
		return true
	case triple:
		if n >= 3 {
			for range n - 3 {
				v.buf.writeByte(q)
			}

			return true
		}

		fallthrough
	default:
		for range n {
			v.buf.writeByte(q)
		}
	}

	return false
}

// terminate seals the value: pending state is flushed, line endings and
// implicit-mode padding are trimmed, and unclosed spans are discarded.
// The byte b is the terminator (0 at end of input).
func (s *valueScanner) terminate(b byte) {
	v := &s.value
	if v.done {
		return
	}

	if b == '\n' {
		if n := v.buf.size(); n > 0 && v.buf.bytes()[n-1] == '\r' {
			v.buf.truncate(n - 1)
		}
	}

	s.dropOpenSpans()

	if v.mode == ModeImplicit || v.mode == ModeUnset {
		s.trimRight()
	}

	v.done = true
}

// trimRight removes trailing spaces from an implicit value, dropping any
// span that pointed entirely into the trimmed region.
func (s *valueScanner) trimRight() {
	v := &s.value

	n := v.buf.size()
	for n > 0 && v.buf.bytes()[n-1] == ' ' {
		n--
	}

	v.buf.truncate(n)

	for len(v.spans) > 0 && v.spans[len(v.spans)-1].last() >= n {
		v.spans = v.spans[:len(v.spans)-1]
	}
}

// finish terminates the value at end of input. Unbalanced delimiters are
// resolved leniently: pending backslashes become literal, and a pending
// quote run either closes the value or is kept as content.
func (s *valueScanner) finish() {
	v := &s.value
	if v.done {
		return
	}

	if v.backslashes > 0 {
		n := v.backslashes
		v.backslashes = 0

		for range n {
			v.buf.writeByte('\\')
		}
	}

	if v.singles > 0 && s.resolveSingles() {
		s.terminate(0)

		return
	}

	if v.doubles > 0 && s.resolveDoubles() {
		s.terminate(0)

		return
	}

	s.terminate(0)
}
