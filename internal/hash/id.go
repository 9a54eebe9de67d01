package hash

import "github.com/cespare/xxhash/v2"

// PathID computes the xxHash64 of a record filename.
func PathID(path string) uint64 {
	return xxhash.Sum64String(path)
}

// Digest computes the xxHash64 of a gcda payload.
func Digest(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
