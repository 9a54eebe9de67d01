package section

import (
	"fmt"

	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
)

// FunctionHeader is the fixed 20-byte record announcing one function.
type FunctionHeader struct {
	Ident          uint32
	LinenoChecksum uint32
	CfgChecksum    uint32
}

// Words returns the record as gcda words.
func (h FunctionHeader) Words() [FunctionHeaderWords]uint32 {
	return [FunctionHeaderWords]uint32{
		format.TagFunction,
		format.FunctionLength,
		h.Ident,
		h.LinenoChecksum,
		h.CfgChecksum,
	}
}

// ParseBody parses the three body words that follow a function tag pair.
func (h *FunctionHeader) ParseBody(body []byte, engine endian.EndianEngine) error {
	if len(body) != int(format.FunctionLength) {
		return fmt.Errorf("function: %w: %d bytes", errs.ErrInvalidRecordLength, len(body))
	}

	h.Ident = engine.Uint32(body[0:4])
	h.LinenoChecksum = engine.Uint32(body[4:8])
	h.CfgChecksum = engine.Uint32(body[8:12])

	return nil
}
