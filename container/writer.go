package container

import (
	"fmt"
	"math"

	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/internal/buffer"
)

// Writer appends framed records to a fixed-size output buffer.
//
// Note: Writer is NOT thread-safe and NOT reusable; after Finish it refuses
// further records.
type Writer struct {
	out      *buffer.Bytes
	engine   endian.EndianEngine
	records  int
	finished bool
}

// NewWriter creates a Writer over buf. The gcda words of every record are laid
// out with engine.
func NewWriter(buf []byte, engine endian.EndianEngine) *Writer {
	return &Writer{
		out:    buffer.NewBytes(buf),
		engine: engine,
	}
}

// Len returns the number of bytes committed so far.
func (w *Writer) Len() int {
	return w.out.Len()
}

// Remaining returns how many more bytes fit.
func (w *Writer) Remaining() int {
	return w.out.Remaining()
}

// Records returns the number of records appended.
func (w *Writer) Records() int {
	return w.records
}

// Bytes returns the committed prefix of the output buffer.
func (w *Writer) Bytes() []byte {
	return w.out.Bytes()
}

// Fits reports whether a record for name with a payload of size bytes fits.
func (w *Writer) Fits(name string, size int) bool {
	return FrameSize(name, size) <= w.out.Remaining()
}

// AppendRecord appends one framed record: the filename, a NUL byte, the payload
// length in big-endian and the payload words.
//
// Returns:
//   - error: ErrInvalidFilename for a name CheckName rejects, ErrOutputBufferTooSmall
//     if the whole record does not fit. Nothing is written on error.
func (w *Writer) AppendRecord(name string, words []uint32) error {
	if w.finished {
		return fmt.Errorf("%s: %w: container already finished", name, errs.ErrOutputBufferTooSmall)
	}

	if err := CheckName(name); err != nil {
		return err
	}

	size := len(words) * 4
	if uint64(size) > math.MaxUint32 || !w.Fits(name, size) {
		return fmt.Errorf("%s: %w: need %d bytes, have %d",
			name, errs.ErrOutputBufferTooSmall, FrameSize(name, size), w.out.Remaining())
	}

	// Capacity was checked above, so these appends cannot fail.
	w.out.AppendString(recordName(name))
	w.out.AppendByte(0)
	w.out.AppendUint32(uint32(size), endian.GetBigEndianEngine()) //nolint: gosec
	w.out.AppendWords(words, w.engine)
	w.records++

	return nil
}

// Finish appends the sentinel and returns the complete container.
//
// Returns:
//   - []byte: The committed output, ending with Sentinel
//   - error: ErrOutputBufferTooSmall if the sentinel does not fit; the output is then
//     left without it
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return w.out.Bytes(), nil
	}
	if !w.out.AppendString(Sentinel) {
		return nil, fmt.Errorf("sentinel: %w: need %d bytes, have %d",
			errs.ErrOutputBufferTooSmall, SentinelSize, w.out.Remaining())
	}
	w.finished = true

	return w.out.Bytes(), nil
}
