package dotenv

// Mode identifies the quoting discipline governing a value.
// It is established by the first content byte after the separator and is
// fixed for the remainder of the value.
type Mode int

// Quoting modes in order of discovery during scanning.
const (
	ModeUnset        Mode = iota // no content byte seen yet
	ModeImplicit                 // unquoted, behaves like double quotes
	ModeSingle                   // '...'
	ModeDouble                   // "..."
	ModeBacktick                 // `...`
	ModeTripleSingle             // '''...'''
	ModeTripleDouble             // """..."""
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return "unset"
	case ModeImplicit:
		return "implicit"
	case ModeSingle:
		return "single"
	case ModeDouble:
		return "double"
	case ModeBacktick:
		return "backtick"
	case ModeTripleSingle:
		return "triple-single"
	case ModeTripleDouble:
		return "triple-double"
	}

	return "invalid"
}

// literal reports whether the mode disables escape sequences and
// interpolation entirely.
func (m Mode) literal() bool {
	return m == ModeSingle || m == ModeTripleSingle
}

// multiline reports whether a newline is stored as content instead of
// terminating the value.
func (m Mode) multiline() bool {
	switch m {
	case ModeDouble, ModeBacktick, ModeTripleSingle, ModeTripleDouble:
		return true
	}

	return false
}

// rawValue holds the scanning state and accumulated content of one value.
// Interpolation spans index into buf and remain valid until finalization
// rewrites the buffer.
type rawValue struct {
	buf  buffer
	mode Mode

	// Pending delimiter runs whose meaning depends on the next byte.
	backslashes int
	singles     int
	doubles     int

	spans  []span
	active int // index into spans of the unclosed span, or -1
	done   bool
}

// Record is one parsed key/value line (or heredoc block) in appearance
// order, before interpolation has been applied.
type Record struct {
	// Key is the record's name with surrounding whitespace (and any
	// recognized "export " prefix) removed.
	Key string

	value rawValue

	resolving bool
	resolved  bool
	status    Status
}

// Mode returns the quoting mode the value was scanned under.
func (r *Record) Mode() Mode { return r.value.mode }

// Raw returns the value's content before interpolation. After the record
// has been consumed by [Finalize], Raw returns the empty string.
func (r *Record) Raw() string { return string(r.value.buf.bytes()) }

// Refs returns the names referenced by the value's interpolation spans,
// in order of appearance.
func (r *Record) Refs() []string {
	if len(r.value.spans) == 0 {
		return nil
	}

	refs := make([]string, 0, len(r.value.spans))
	for _, sp := range r.value.spans {
		if sp.name != "" {
			refs = append(refs, sp.name)
		}
	}

	return refs
}
