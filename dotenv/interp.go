package dotenv

// span records one interpolation site within a value buffer. All indices
// refer to positions in the buffer at scan time; finalization splices the
// inclusive range [dollar, last] where last is closeDelim for braced spans
// and nameEnd for braceless ones.
type span struct {
	dollar     int // '$'
	open       int // '{', or dollar for braceless spans
	nameStart  int
	nameEnd    int // inclusive, -1 until closed
	closeDelim int // '}', or nameEnd for braceless spans
	name       string
	braced     bool
	closed     bool
}

// last returns the final buffer index replaced when the span is spliced.
func (s span) last() int {
	if s.braced {
		return s.closeDelim
	}

	return s.nameEnd
}

// isIdentByte reports whether b may appear in a braceless reference name.
func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// dollarAt scans backward from index i for a '$' introducing a reference,
// skipping spaces only. It returns the dollar's index, or -1 if the
// nearest non-space byte is not a '$' or the '$' is escaped.
func dollarAt(buf []byte, i int) int {
	for i >= 0 && buf[i] == ' ' {
		i--
	}

	if i < 0 || buf[i] != '$' {
		return -1
	}

	if i > 0 && buf[i-1] == '\\' {
		return -1
	}

	return i
}

// openBraced starts a braced span for the '{' just appended to the buffer.
// Nothing opens inside literal modes, while another span is open, or when
// no unescaped '$' precedes the brace.
func (s *valueScanner) openBraced() {
	v := &s.value
	if v.mode.literal() || v.active >= 0 {
		return
	}

	buf := v.buf.bytes()
	brace := len(buf) - 1

	dollar := dollarAt(buf, brace-1)
	if dollar < 0 {
		return
	}

	v.spans = append(v.spans, span{
		dollar:    dollar,
		open:      brace,
		nameStart: brace + 1,
		nameEnd:   -1,
		braced:    true,
	})
	v.active = len(v.spans) - 1
}

// closeBraced completes the open braced span at the '}' just appended.
// The name is the interior with surrounding spaces removed; it may be
// empty, in which case finalization skips the span.
func (s *valueScanner) closeBraced() {
	v := &s.value
	if v.active < 0 || !v.spans[v.active].braced {
		return
	}

	sp := &v.spans[v.active]
	buf := v.buf.bytes()
	sp.closeDelim = len(buf) - 1

	start, end := sp.nameStart, sp.closeDelim-1
	for start <= end && buf[start] == ' ' {
		start++
	}

	for end >= start && buf[end] == ' ' {
		end--
	}

	sp.nameStart, sp.nameEnd = start, end
	if start <= end {
		sp.name = string(buf[start : end+1])
	}

	sp.closed = true
	v.active = -1
}

// openBraceless starts a bare $name span for the identifier byte just
// appended, when the preceding byte is an unescaped '$'.
func (s *valueScanner) openBraceless() {
	v := &s.value
	if v.mode.literal() || v.active >= 0 {
		return
	}

	buf := v.buf.bytes()
	first := len(buf) - 1

	dollar := first - 1
	if dollar < 0 || buf[dollar] != '$' {
		return
	}

	if dollar > 0 && buf[dollar-1] == '\\' {
		return
	}

	v.spans = append(v.spans, span{
		dollar:     dollar,
		open:       dollar,
		nameStart:  first,
		nameEnd:    -1,
		closeDelim: -1,
	})
	v.active = len(v.spans) - 1
}

// closeBraceless completes the open braceless span at the byte before the
// current buffer end, either because a non-identifier byte follows or the
// value ended.
func (s *valueScanner) closeBraceless() {
	v := &s.value
	if v.active < 0 || v.spans[v.active].braced {
		return
	}

	sp := &v.spans[v.active]
	sp.nameEnd = v.buf.size() - 1
	sp.closeDelim = sp.nameEnd
	sp.name = string(v.buf.bytes()[sp.nameStart : sp.nameEnd+1])
	sp.closed = true
	v.active = -1
}

// dropOpenSpans discards any span left unclosed at end of value. Its text
// remains in the buffer as ordinary content.
func (s *valueScanner) dropOpenSpans() {
	v := &s.value
	if v.active < 0 {
		return
	}

	if !v.spans[v.active].braced {
		s.closeBraceless()

		return
	}

	v.spans = v.spans[:v.active]
	v.active = -1
}
