package gcovblob

import "github.com/arloliu/gcovblob/record"

// MergeAdd is the merge entry point instrumented code references for additive
// counters. Counters are never merged on the target, so it does nothing.
func MergeAdd(counters []int64, n uint32) {}

// MergeIOR is the merge entry point for bitwise-or counters. It does nothing.
func MergeIOR(counters []int64, n uint32) {}

var (
	_ record.MergeFunc = MergeAdd
	_ record.MergeFunc = MergeIOR
)
