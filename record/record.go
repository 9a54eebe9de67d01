// Package record is the in-memory coverage tree of compiled translation units.
//
// The tree is produced by the instrumentation side. The serializer only reads it:
// a File and its functions are expected not to change once registered.
package record

import (
	"fmt"

	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
)

// Counters is the value array of one counter kind for one function.
type Counters struct {
	Kind   format.CounterKind
	Values []int64
}

// Function is the coverage data of a single function.
type Function struct {
	// Key identifies which of several same-named comdat candidates was selected.
	// It is an opaque discriminator and is never dereferenced.
	Key *File

	Ident          uint32
	LinenoChecksum uint32
	CfgChecksum    uint32

	// Counters holds one entry per active kind of the owning File, ascending by kind.
	Counters []Counters
}

// File is the coverage tree of one translation unit.
type File struct {
	Version  uint32
	Stamp    uint32
	Checksum uint32
	// Filename is the gcda path gcov will write the record to.
	Filename string
	// Kinds marks the counter kinds active in this file.
	Kinds     KindSet
	Functions []*Function
}

// NewFile creates a File and validates it.
func NewFile(filename string, version, stamp, checksum uint32, kinds KindSet, fns ...*Function) (*File, error) {
	f := &File{
		Version:   version,
		Stamp:     stamp,
		Checksum:  checksum,
		Filename:  filename,
		Kinds:     kinds,
		Functions: fns,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate checks that every function carries exactly one counter array per
// active kind, in ascending kind order.
func (f *File) Validate() error {
	if f == nil {
		return errs.ErrNilRecord
	}
	if f.Kinds&^allKindsMask != 0 {
		return fmt.Errorf("%s: %w: kind set %#x", f.Filename, errs.ErrInvalidCounterKind, uint16(f.Kinds))
	}

	want := f.Kinds.Len()
	for i, fn := range f.Functions {
		if fn == nil {
			return fmt.Errorf("%s: function %d: %w", f.Filename, i, errs.ErrNilFunction)
		}
		if len(fn.Counters) != want {
			return fmt.Errorf("%s: function %d: %w: have %d arrays, want %d",
				f.Filename, fn.Ident, errs.ErrCounterKindMismatch, len(fn.Counters), want)
		}

		j := 0
		for k := range f.Kinds.All() {
			if fn.Counters[j].Kind != k {
				return fmt.Errorf("%s: function %d: %w: array %d is %s, want %s",
					f.Filename, fn.Ident, errs.ErrCounterKindMismatch, j, fn.Counters[j].Kind, k)
			}
			j++
		}
	}

	return nil
}

// NumValues returns the total number of counter values across all functions.
func (f *File) NumValues() int {
	n := 0
	for _, fn := range f.Functions {
		for _, c := range fn.Counters {
			n += len(c.Values)
		}
	}

	return n
}
