// Package gcda converts a record.File into the gcda word format read by gcov.
//
// Measure and Encode share one walk over the record tree. Measure runs it
// against a counting writer and returns the byte length a full encoding takes;
// Encode runs it against the caller's word slice. Neither allocates.
//
//	n, err := gcda.Measure(file)
//	if err != nil {
//	    return err
//	}
//	scratch := make([]uint32, n/4)
//	_, err = gcda.Encode(scratch, file)
//
// The words are plain uint32 values: byte order is applied when they are copied
// out (see container.AppendRecord).
package gcda

import (
	"fmt"

	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/internal/buffer"
	"github.com/arloliu/gcovblob/record"
	"github.com/arloliu/gcovblob/section"
)

// Measure returns the number of bytes Encode would write for f.
//
// Measuring the same unmodified File always returns the same length.
func Measure(f *record.File) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	w := buffer.NewCounter()
	encode(w, f)

	return w.Size(), nil
}

// Encode writes the gcda encoding of f into dst and returns the number of bytes
// written, which equals Measure(f).
//
// Returns:
//   - int: Bytes written (always a multiple of 4)
//   - error: ErrScratchBufferTooSmall if dst cannot hold the encoding, in which case
//     nothing is written; validation errors from record.File.Validate
func Encode(dst []uint32, f *record.File) (int, error) {
	size, err := Measure(f)
	if err != nil {
		return 0, err
	}
	if size > len(dst)*4 {
		return 0, fmt.Errorf("%s: %w: need %d bytes, have %d",
			f.Filename, errs.ErrScratchBufferTooSmall, size, len(dst)*4)
	}

	w := buffer.NewWords(dst[:size/4])
	if !encode(w, f) || w.Size() != size {
		return 0, fmt.Errorf("%s: %w: encoding changed size", f.Filename, errs.ErrScratchBufferTooSmall)
	}

	return size, nil
}

// encode walks f and writes its words to w. It reports false if w ran out of room.
// f must have passed Validate.
func encode(w *buffer.Words, f *record.File) bool {
	hdr := section.FileHeader{Version: f.Version, Stamp: f.Stamp, Checksum: f.Checksum}.Words()
	if !putWords(w, hdr[:]) {
		return false
	}

	for _, fn := range f.Functions {
		fh := section.FunctionHeader{
			Ident:          fn.Ident,
			LinenoChecksum: fn.LinenoChecksum,
			CfgChecksum:    fn.CfgChecksum,
		}.Words()
		if !putWords(w, fh[:]) {
			return false
		}

		// Validate guarantees fn.Counters lines up with f.Kinds.
		for i := range f.Kinds.Len() {
			ctr := fn.Counters[i]
			ch := section.CounterHeader(ctr.Kind, len(ctr.Values)).Words()
			if !putWords(w, ch[:]) {
				return false
			}
			for _, v := range ctr.Values {
				if !w.PutUint64(uint64(v)) { //nolint: gosec
					return false
				}
			}
		}
	}

	return true
}

func putWords(w *buffer.Words, words []uint32) bool {
	for _, v := range words {
		if !w.Put(v) {
			return false
		}
	}

	return true
}
