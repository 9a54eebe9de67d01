package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/internal/hash"
)

// Entry is one record of a container.
type Entry struct {
	// Name is the gcda filename the record belongs to.
	Name string
	// Payload is the record's gcda bytes. It aliases the parsed container.
	Payload []byte
	// Digest is the xxHash64 of Payload.
	Digest uint64
	// Offset is the byte offset of the record within the container.
	Offset int
}

// All yields the records of data in container order.
//
// Iteration stops at the sentinel; bytes after it are ignored, so a dump of the
// whole output region can be read as-is. If the data ends before a sentinel, or
// a record is malformed, the last pair yielded carries the error.
func All(data []byte) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		pos := 0
		for {
			rest := data[pos:]
			if bytes.HasPrefix(rest, []byte(Sentinel)) {
				return
			}
			// Filenames are never empty, so a NUL here is unused buffer space.
			if len(rest) == 0 || rest[0] == 0 {
				yield(Entry{}, fmt.Errorf("offset %d: %w", pos, errs.ErrMissingSentinel))
				return
			}

			entry, n, err := parseRecord(rest)
			if err != nil {
				yield(Entry{}, fmt.Errorf("offset %d: %w", pos, err))
				return
			}
			entry.Offset = pos
			pos += n

			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Parse returns every record of data.
//
// Returns:
//   - []Entry: Records read before any error
//   - error: ErrMissingSentinel for an incomplete container, ErrTruncatedRecord for
//     a record running past the end of data
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	for entry, err := range All(data) {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseRecord(data []byte) (Entry, int, error) {
	nul := bytes.IndexByte(data, 0)
	if nul < 0 {
		return Entry{}, 0, fmt.Errorf("filename: %w", errs.ErrTruncatedRecord)
	}

	pos := nul + 1
	if len(data)-pos < LengthPrefixSize {
		return Entry{}, 0, fmt.Errorf("%s: length: %w", data[:nul], errs.ErrTruncatedRecord)
	}
	size := binary.BigEndian.Uint32(data[pos:])
	pos += LengthPrefixSize

	if uint64(size) > uint64(len(data)-pos) {
		return Entry{}, 0, fmt.Errorf("%s: payload of %d bytes: %w", data[:nul], size, errs.ErrTruncatedRecord)
	}
	payload := data[pos : pos+int(size)]

	return Entry{
		Name:    string(data[:nul]),
		Payload: payload,
		Digest:  hash.Digest(payload),
	}, pos + int(size), nil
}
