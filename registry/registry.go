// Package registry holds the files registered for coverage export.
//
// Registration runs during single-threaded process start-up, so a Registry does
// no locking and must not be shared across goroutines.
package registry

import (
	"fmt"
	"iter"

	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/record"
)

// DefaultCapacity is the number of translation units a Registry holds by default.
const DefaultCapacity = 100

// Registry is a bounded, append-only collection of file records.
//
// Entries are drained newest-first: the last file registered is the first one
// exported. Nothing is ever reordered or removed.
type Registry struct {
	entries []*record.File
	frozen  bool
}

// New creates an empty registry holding at most capacity files.
func New(capacity int) (*Registry, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidRegistryCapacity, capacity)
	}

	return &Registry{entries: make([]*record.File, 0, capacity)}, nil
}

// Register adds f to the registry.
//
// Returns:
//   - error: ErrNilRecord for a nil f, ErrRegistryFrozen after Freeze, ErrRegistryFull
//     when the registry is at capacity. The registry is unchanged on error.
func (r *Registry) Register(f *record.File) error {
	if f == nil {
		return errs.ErrNilRecord
	}
	if r.frozen {
		return fmt.Errorf("%s: %w", f.Filename, errs.ErrRegistryFrozen)
	}
	if len(r.entries) == cap(r.entries) {
		return fmt.Errorf("%s: %w: capacity %d", f.Filename, errs.ErrRegistryFull, cap(r.entries))
	}

	r.entries = append(r.entries, f)

	return nil
}

// Freeze stops further registration.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered files.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Cap returns the maximum number of files the registry holds.
func (r *Registry) Cap() int {
	return cap(r.entries)
}

// All yields the registered files, most recently registered first.
func (r *Registry) All() iter.Seq[*record.File] {
	return func(yield func(*record.File) bool) {
		for i := len(r.entries) - 1; i >= 0; i-- {
			if !yield(r.entries[i]) {
				return
			}
		}
	}
}
