// Package container frames gcda payloads of many translation units into one
// self-contained blob, and reads such blobs back on the host.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Record, once per file (newest registration first)        │
//	│  filename bytes | 0x00 | length (u32 big-endian) | gcda  │
//	├──────────────────────────────────────────────────────────┤
//	│ Sentinel: "Gcov End" 0x00 (9 bytes)                      │
//	└──────────────────────────────────────────────────────────┘
//
// The gcda bytes of each record are in the target's byte order; only the
// length prefix is fixed to big-endian. A blob without the sentinel is
// incomplete: the export that produced it failed part way.
//
// # Writing
//
// Writer appends to a caller-supplied, fixed-size buffer. Every append is
// checked against the remaining capacity before a single byte is written, so a
// failed append leaves the buffer holding only whole records.
//
// # Reading
//
// Parse and All walk a blob using the length prefixes, and Split writes each
// record out as its own .gcda file for gcov to pick up.
package container
