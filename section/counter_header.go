package section

import (
	"fmt"

	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
)

// TagLength is the tag/length word pair that prefixes every gcda record after
// the file header.
type TagLength struct {
	Tag    uint32
	Length uint32 // body length in bytes
}

// CounterHeader returns the tag pair of a counter record of kind k with n values.
func CounterHeader(k format.CounterKind, n int) TagLength {
	return TagLength{Tag: format.TagForCounter(k), Length: format.CounterLength(n)}
}

// Words returns the pair as gcda words.
func (t TagLength) Words() [CounterHeaderWords]uint32 {
	return [CounterHeaderWords]uint32{t.Tag, t.Length}
}

// Parse parses the pair from the first 8 bytes of data.
func (t *TagLength) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < CounterHeaderSize {
		return fmt.Errorf("tag: %w", errs.ErrTruncatedRecord)
	}

	t.Tag = engine.Uint32(data[0:4])
	t.Length = engine.Uint32(data[4:8])

	return nil
}

// JoinCounter rebuilds a counter value from the low and high words gcda stores
// it as.
func JoinCounter(lo, hi uint32) int64 {
	return int64(uint64(hi)<<32 | uint64(lo)) //nolint: gosec
}
