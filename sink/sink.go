// Package sink provides the persistence collaborators an export hands its
// finished container to.
//
// On a target without a filesystem the usual choice is Resident, which leaves
// the bytes in place for a debugger to pull out. Host builds and tests use
// File or Writer, optionally wrapped in Compressed.
package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/gcovblob/compress"
	"github.com/arloliu/gcovblob/format"
)

// Sink persists a finished container.
//
// data aliases the exporter's output buffer; a Sink that keeps it past the call
// must copy it or own that buffer.
type Sink interface {
	Persist(data []byte) error
}

// Func adapts a plain function to Sink.
type Func func(data []byte) error

// Persist calls f(data).
func (f Func) Persist(data []byte) error {
	return f(data)
}

// Discard accepts the container and does nothing with it. The bytes stay in the
// output buffer, where a debugger can still find them.
var Discard Sink = Func(func([]byte) error { return nil })

// Resident leaves the container where it is and remembers its extent, so that
// the range can be reported to whoever extracts it.
type Resident struct {
	data []byte
}

var _ Sink = (*Resident)(nil)

// Persist records data without copying it.
func (r *Resident) Persist(data []byte) error {
	r.data = data
	return nil
}

// Bytes returns the last persisted container.
func (r *Resident) Bytes() []byte {
	return r.data
}

// Len returns the length of the last persisted container.
func (r *Resident) Len() int {
	return len(r.data)
}

// File writes the container to a file, replacing any previous content.
type File struct {
	Path string
	Perm os.FileMode
}

var _ Sink = (*File)(nil)

// NewFile creates a File sink writing to path with mode 0644.
func NewFile(path string) *File {
	return &File{Path: path, Perm: 0o644}
}

// Persist writes data to the file. Empty data is not written.
func (f *File) Persist(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := os.WriteFile(f.Path, data, f.Perm); err != nil {
		return fmt.Errorf("write coverage container: %w", err)
	}

	return nil
}

// Writer copies the container to an io.Writer.
type Writer struct {
	W io.Writer
}

var _ Sink = (*Writer)(nil)

// NewWriter creates a Writer sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{W: w}
}

// Persist writes data to the underlying writer.
func (w *Writer) Persist(data []byte) error {
	if _, err := w.W.Write(data); err != nil {
		return fmt.Errorf("write coverage container: %w", err)
	}

	return nil
}

// Compressed compresses the container before handing it to the next sink.
//
// Note: Compressed allocates for the compressed copy, so it belongs on the host
// side, not on a target with a fixed memory budget.
type Compressed struct {
	next      Sink
	codec     compress.Codec
	algorithm format.CompressionType
	stats     compress.CompressionStats
}

var _ Sink = (*Compressed)(nil)

// NewCompressed wraps next with the built-in codec for algorithm.
func NewCompressed(next Sink, algorithm format.CompressionType) (*Compressed, error) {
	codec, err := compress.CreateCodec(algorithm, "sink")
	if err != nil {
		return nil, err
	}

	return &Compressed{next: next, codec: codec, algorithm: algorithm}, nil
}

// Persist compresses data and forwards the result.
func (c *Compressed) Persist(data []byte) error {
	compressed, err := c.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress coverage container with %s: %w", c.algorithm, err)
	}

	c.stats = compress.CompressionStats{
		Algorithm:      c.algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}

	return c.next.Persist(compressed)
}

// Stats describes the last Persist call.
func (c *Compressed) Stats() compress.CompressionStats {
	return c.stats
}
