package section

import (
	"fmt"

	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
)

// FileHeader is the fixed 16-byte header that opens every gcda payload.
//
// The version travels in the length slot of the magic tag pair.
type FileHeader struct {
	Version  uint32 // word 1
	Stamp    uint32 // word 2
	Checksum uint32 // word 3
}

// Words returns the header as gcda words.
func (h FileHeader) Words() [FileHeaderWords]uint32 {
	return [FileHeaderWords]uint32{format.DataMagic, h.Version, h.Stamp, h.Checksum}
}

// Parse parses the header from data using the given byte order.
//
// Returns:
//   - error: ErrTruncatedRecord if data is shorter than 16 bytes, ErrInvalidMagic on a bad magic word
func (h *FileHeader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < FileHeaderSize {
		return fmt.Errorf("file header: %w", errs.ErrTruncatedRecord)
	}
	if magic := engine.Uint32(data[0:4]); magic != format.DataMagic {
		return fmt.Errorf("%w: %#08x", errs.ErrInvalidMagic, magic)
	}

	h.Version = engine.Uint32(data[4:8])
	h.Stamp = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint32(data[12:16])

	return nil
}

// DetectEngine returns the byte order a gcda payload was written in, judged by
// its magic word.
func DetectEngine(data []byte) (endian.EndianEngine, error) {
	if len(data) < format.WordSize {
		return nil, fmt.Errorf("magic: %w", errs.ErrTruncatedRecord)
	}

	le := endian.GetLittleEndianEngine()
	if le.Uint32(data) == format.DataMagic {
		return le, nil
	}
	be := endian.GetBigEndianEngine()
	if be.Uint32(data) == format.DataMagic {
		return be, nil
	}

	return nil, fmt.Errorf("%w: % x", errs.ErrInvalidMagic, data[:format.WordSize])
}
