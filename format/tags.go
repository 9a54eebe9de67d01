// Package format holds the enumerations and wire constants shared by the gcda
// serializer, the container framing and the host-side tooling.
//
// The tag values are a compatibility contract with gcov and must match the
// producing toolchain (GCC 14, nine counter kinds).
package format

const (
	// WordSize is the size in bytes of one gcda word.
	WordSize = 4

	// DataMagic is the gcda file magic, "gcda" read as a big-endian word.
	DataMagic uint32 = 0x67636461
	// TagFunction marks the start of a function record.
	TagFunction uint32 = 0x01000000
	// TagCounterBase is the tag of counter kind 0; kind k uses TagCounterBase + k<<17.
	TagCounterBase uint32 = 0x01a10000

	// FunctionLength is the byte length of a function record body: ident and two checksums.
	FunctionLength uint32 = 3 * WordSize
)

// TagForCounter returns the record tag of counter kind k.
func TagForCounter(k CounterKind) uint32 {
	return TagCounterBase + uint32(k)<<17
}

// CounterKindForTag is the inverse of TagForCounter. The second result is false
// when tag is not a counter tag of a known kind.
func CounterKindForTag(tag uint32) (CounterKind, bool) {
	if tag < TagCounterBase || (tag-TagCounterBase)&(1<<17-1) != 0 {
		return 0, false
	}
	k := (tag - TagCounterBase) >> 17
	if k >= NumCounterKinds {
		return 0, false
	}

	return CounterKind(k), true
}

// CounterLength returns the byte length of a counter record holding n values.
func CounterLength(n int) uint32 {
	return uint32(n) * 2 * WordSize //nolint: gosec
}
