package container

import (
	"fmt"

	"github.com/arloliu/gcovblob/errs"
)

// Sentinel terminates a complete container.
const Sentinel = "Gcov End\x00"

const (
	// SentinelSize is the byte length of Sentinel.
	SentinelSize = len(Sentinel)
	// LengthPrefixSize is the size of the big-endian payload length after each filename.
	LengthPrefixSize = 4
)

// recordName returns the filename bytes written for name: everything before
// the first NUL, as a C string copy would.
func recordName(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == 0 {
			return name[:i]
		}
	}

	return name
}

// CheckName reports whether name can be framed as a record. The written name
// must be non-empty and must not read back as the sentinel.
func CheckName(name string) error {
	written := recordName(name)
	if written == "" {
		return fmt.Errorf("%q: %w: empty record name", name, errs.ErrInvalidFilename)
	}
	if written+"\x00" == Sentinel {
		return fmt.Errorf("%q: %w: record name collides with the sentinel", name, errs.ErrInvalidFilename)
	}

	return nil
}

// FrameSize returns the number of output bytes a record for name with a payload
// of size bytes occupies.
func FrameSize(name string, size int) int {
	return len(recordName(name)) + 1 + LengthPrefixSize + size
}
