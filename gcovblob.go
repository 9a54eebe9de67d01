// Package gcovblob serializes in-memory coverage counters into gcda records
// and packs them into a single container that can be pulled off a target
// without a filesystem.
//
// Instrumented translation units register a record.File at start-up. At
// shutdown Export walks the registry newest-first, encodes every file in
// the gcda word format and frames it into the caller's output buffer:
//
//	{filename}\x00{uint32 big-endian length}{gcda bytes}
//	...
//	Gcov End\x00
//
// # Basic Usage
//
//	exp, _ := gcovblob.New()
//	exp.SetOutputBuffer(make([]byte, 64*1024))
//	exp.SetScratchBuffer(make([]uint32, 4*1024))
//
//	file, _ := record.NewFile("/build/main.gcda", version, stamp, checksum,
//	    record.NewKindSet(format.KindArcs), fn)
//	_ = exp.Register(file)
//
//	n, err := exp.Export()
//
// The container is handed to a sink.Sink. The default, sink.Discard, leaves it
// in the output buffer. On the host, container.Split writes every record back
// out as a .gcda file for gcov.
//
// # Memory
//
// Export never allocates: the gcda words are built in the scratch buffer and
// copied into the output buffer. When either is too small Export stops with
// ErrScratchBufferTooSmall or ErrOutputBufferTooSmall and the output holds only
// whole records.
//
// # Thread Safety
//
// An Exporter is meant for single-threaded start-up and shutdown code and does
// no locking.
package gcovblob
