package record

import (
	"iter"
	"math/bits"

	"github.com/arloliu/gcovblob/format"
)

// MergeFunc is the signature of a per-kind counter merge capability. The
// toolchain only fills the merge slot of kinds that are active in a file.
type MergeFunc func(counters []int64, n uint32)

// KindSet is the set of counter kinds active for a file, one bit per kind.
type KindSet uint16

const allKindsMask = KindSet(1)<<format.NumCounterKinds - 1

// NewKindSet returns a set holding kinds. Invalid kinds are ignored.
func NewKindSet(kinds ...format.CounterKind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.With(k)
	}

	return s
}

// KindSetFromMerge derives the active kinds from which merge slots are set.
func KindSetFromMerge(merge [format.NumCounterKinds]MergeFunc) KindSet {
	var s KindSet
	for k, fn := range merge {
		if fn != nil {
			s |= 1 << k
		}
	}

	return s
}

// Has reports whether k is active.
func (s KindSet) Has(k format.CounterKind) bool {
	return k.Valid() && s&(1<<k) != 0
}

// With returns s with k added.
func (s KindSet) With(k format.CounterKind) KindSet {
	if !k.Valid() {
		return s
	}

	return s | 1<<k
}

// Len returns the number of active kinds.
func (s KindSet) Len() int {
	return bits.OnesCount16(uint16(s & allKindsMask))
}

// All yields the active kinds in ascending order.
func (s KindSet) All() iter.Seq[format.CounterKind] {
	return func(yield func(format.CounterKind) bool) {
		for k := range format.CounterKind(format.NumCounterKinds) {
			if s.Has(k) && !yield(k) {
				return
			}
		}
	}
}
