package buffer

import "math"

// Words is an append-only writer of 32-bit words.
//
// A Words without a backing slice (the zero value, or NewCounter) stores nothing
// and only counts, which is how the serializer measures an encoding before
// writing it.
type Words struct {
	buf []uint32
	n   int
}

// NewWords wraps buf as an empty word writer with capacity len(buf) words.
func NewWords(buf []uint32) *Words {
	return &Words{buf: buf}
}

// NewCounter returns a writer that only counts words.
func NewCounter() *Words {
	return &Words{}
}

// Counting reports whether w only counts words.
func (w *Words) Counting() bool {
	return w.buf == nil
}

// Len returns the number of words written (or counted).
func (w *Words) Len() int {
	return w.n
}

// Size returns the number of bytes written (or counted).
func (w *Words) Size() int {
	return w.n * 4
}

// Remaining returns how many more bytes fit. A counting writer never runs out.
func (w *Words) Remaining() int {
	if w.Counting() {
		return math.MaxInt
	}

	return (len(w.buf) - w.n) * 4
}

// Words returns the written words. It is empty for a counting writer.
func (w *Words) Words() []uint32 {
	if w.Counting() {
		return nil
	}

	return w.buf[:w.n]
}

// Put appends one word.
func (w *Words) Put(v uint32) bool {
	if w.Counting() {
		w.n++
		return true
	}
	if w.n >= len(w.buf) {
		return false
	}
	w.buf[w.n] = v
	w.n++

	return true
}

// PutPair appends two words, or neither if only one fits.
func (w *Words) PutPair(a, b uint32) bool {
	if w.Counting() {
		w.n += 2
		return true
	}
	if len(w.buf)-w.n < 2 {
		return false
	}
	w.buf[w.n] = a
	w.buf[w.n+1] = b
	w.n += 2

	return true
}

// PutUint64 appends v as two words, low 32 bits first.
func (w *Words) PutUint64(v uint64) bool {
	return w.PutPair(uint32(v), uint32(v>>32)) //nolint: gosec
}
