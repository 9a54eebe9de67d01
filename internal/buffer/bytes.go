// Package buffer provides the bounded, append-only writers used by the gcda
// serializer and the container framing.
//
// Both writers wrap memory handed in by the caller and never grow it: an append
// that does not fit is refused as a whole and leaves the writer untouched. The
// cursor only moves forward.
package buffer

import (
	"github.com/arloliu/gcovblob/endian"
)

// Bytes is an append-only writer over a fixed-capacity byte region.
//
// The capacity is the length of the slice passed to NewBytes.
type Bytes struct {
	// B is the written prefix of the region; cap(B) is the region's capacity.
	B []byte
}

// NewBytes wraps buf as an empty writer with capacity len(buf).
func NewBytes(buf []byte) *Bytes {
	return &Bytes{B: buf[:0:len(buf)]}
}

// Bytes returns the written prefix.
func (bb *Bytes) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written.
func (bb *Bytes) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the region.
func (bb *Bytes) Cap() int {
	return cap(bb.B)
}

// Remaining returns how many more bytes fit.
func (bb *Bytes) Remaining() int {
	return cap(bb.B) - len(bb.B)
}

// Extend advances the cursor by n bytes and returns the newly claimed region for
// in-place writes. It returns false, claiming nothing, if n bytes do not fit.
func (bb *Bytes) Extend(n int) ([]byte, bool) {
	curLen := len(bb.B)
	if n < 0 || bb.Remaining() < n {
		return nil, false
	}

	bb.B = bb.B[:curLen+n]

	return bb.B[curLen:], true
}

// Append copies data to the end of the written prefix.
func (bb *Bytes) Append(data []byte) bool {
	dst, ok := bb.Extend(len(data))
	if !ok {
		return false
	}
	copy(dst, data)

	return true
}

// AppendString copies s to the end of the written prefix.
func (bb *Bytes) AppendString(s string) bool {
	dst, ok := bb.Extend(len(s))
	if !ok {
		return false
	}
	copy(dst, s)

	return true
}

// AppendByte appends a single byte.
func (bb *Bytes) AppendByte(c byte) bool {
	dst, ok := bb.Extend(1)
	if !ok {
		return false
	}
	dst[0] = c

	return true
}

// AppendUint32 appends v as four bytes in the given byte order.
func (bb *Bytes) AppendUint32(v uint32, engine endian.EndianEngine) bool {
	dst, ok := bb.Extend(4)
	if !ok {
		return false
	}
	engine.PutUint32(dst, v)

	return true
}

// AppendWords appends every word of words, each laid out in the given byte order.
func (bb *Bytes) AppendWords(words []uint32, engine endian.EndianEngine) bool {
	dst, ok := bb.Extend(len(words) * 4)
	if !ok {
		return false
	}
	for i, w := range words {
		engine.PutUint32(dst[i*4:], w)
	}

	return true
}
