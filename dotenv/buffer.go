package dotenv

// buffer is an owned, reusable byte accumulator with amortized growth.
// Unlike bytes.Buffer, it exposes ownership transfer of its backing array
// and in-place range replacement for interpolation splicing.
// Not safe for concurrent use.
type buffer struct {
	data []byte
}

// bufferMinCap is the smallest capacity allocated on first growth.
const bufferMinCap = 64

// grow ensures capacity for n more bytes, reallocating by a factor of
// roughly 1.3 to bound the number of reallocations for typical file sizes.
func (b *buffer) grow(n int) {
	need := len(b.data) + n
	if need <= cap(b.data) {
		return
	}

	newCap := max(cap(b.data), bufferMinCap)
	for newCap < need {
		newCap = newCap*13/10 + 1
	}

	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// writeByte appends a single byte.
func (b *buffer) writeByte(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

// write appends a byte slice.
func (b *buffer) write(p []byte) {
	b.grow(len(p))
	b.data = append(b.data, p...)
}

// size returns the number of accumulated bytes.
func (b *buffer) size() int { return len(b.data) }

// bytes returns the accumulated bytes without copying.
// The slice is invalidated by any subsequent mutation.
func (b *buffer) bytes() []byte { return b.data }

// truncate discards all but the first n bytes, retaining capacity.
func (b *buffer) truncate(n int) {
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// reset discards all accumulated bytes, retaining capacity for reuse.
func (b *buffer) reset() { b.data = b.data[:0] }

// take hands the accumulated bytes to the caller without copying,
// leaving the buffer empty and reusable.
func (b *buffer) take() []byte {
	out := b.data
	b.data = nil

	return out
}

// splice replaces the inclusive byte range [start, end] with repl,
// reallocating storage for the new length.
func (b *buffer) splice(start, end int, repl []byte) {
	tail := b.data[end+1:]

	out := make([]byte, 0, start+len(repl)+len(tail))
	out = append(out, b.data[:start]...)
	out = append(out, repl...)
	out = append(out, tail...)

	b.data = out
}
