// Package section defines the fixed-size building blocks of a gcda payload.
//
// A gcda payload is a sequence of 32-bit words in the producing target's byte
// order:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ File header (16 bytes)                                       │
//	│  magic 0x67636461 | version | stamp | checksum               │
//	├──────────────────────────────────────────────────────────────┤
//	│ Function record (20 bytes), once per function                │
//	│  0x01000000 | 12 | ident | lineno checksum | cfg checksum    │
//	├──────────────────────────────────────────────────────────────┤
//	│ Counter record (8 + 8n bytes), once per active kind k        │
//	│  0x01a10000 + k<<17 | 8n | lo0 | hi0 | ... | lo(n-1) | hi(n-1)│
//	└──────────────────────────────────────────────────────────────┘
//
// Counter records follow the function record they belong to. Every 64-bit
// counter value is split into two words, low half first.
//
// Each type exposes Words, returning a fixed-size array so that encoding does
// not allocate, and a Parse method for host-side decoding.
package section
