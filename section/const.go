package section

import "github.com/arloliu/gcovblob/format"

// Word counts and byte sizes of the fixed-size gcda sections.
const (
	FileHeaderWords     = 4 // magic, version, stamp, checksum
	FunctionHeaderWords = 5 // tag, length, ident, lineno checksum, cfg checksum
	CounterHeaderWords  = 2 // tag, length
	CounterValueWords   = 2 // low half, high half

	FileHeaderSize     = FileHeaderWords * format.WordSize     // 16 bytes
	FunctionHeaderSize = FunctionHeaderWords * format.WordSize // 20 bytes
	CounterHeaderSize  = CounterHeaderWords * format.WordSize  // 8 bytes
	CounterValueSize   = CounterValueWords * format.WordSize   // 8 bytes
)
