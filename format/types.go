package format

import "strings"

type (
	// CounterKind is the index of a GCC counter kind, 0 to NumCounterKinds-1.
	CounterKind uint8
	// CompressionType selects the codec used for archived container dumps.
	CompressionType uint8
)

// Counter kinds as listed in gcc/gcov-counter.def for GCC 14.
const (
	KindArcs         CounterKind = 0 // KindArcs counts arc executions.
	KindInterval     CounterKind = 1 // KindInterval is the interval value profiler.
	KindPow2         CounterKind = 2 // KindPow2 is the power-of-two value profiler.
	KindTopN         CounterKind = 3 // KindTopN tracks the most common values.
	KindIndirectCall CounterKind = 4 // KindIndirectCall tracks indirect call targets.
	KindAverage      CounterKind = 5 // KindAverage is the average value profiler.
	KindIOR          CounterKind = 6 // KindIOR is the bitwise-or value profiler.
	KindTimeProfiler CounterKind = 7 // KindTimeProfiler records first execution order.
	KindConditions   CounterKind = 8 // KindConditions holds MC/DC condition coverage.

	// NumCounterKinds is the number of counter kinds the tag constants are coupled to.
	NumCounterKinds = 9
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Valid reports whether k is one of the known counter kinds.
func (k CounterKind) Valid() bool {
	return k < NumCounterKinds
}

func (k CounterKind) String() string {
	switch k {
	case KindArcs:
		return "arcs"
	case KindInterval:
		return "interval"
	case KindPow2:
		return "pow2"
	case KindTopN:
		return "topn"
	case KindIndirectCall:
		return "indirect_call"
	case KindAverage:
		return "average"
	case KindIOR:
		return "ior"
	case KindTimeProfiler:
		return "time_profiler"
	case KindConditions:
		return "conditions"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name ("none", "zstd", "s2", "lz4")
// to its CompressionType. The second result is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
