package gcovblob

import (
	"fmt"

	"github.com/arloliu/gcovblob/container"
	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/gcda"
	"github.com/arloliu/gcovblob/internal/options"
	"github.com/arloliu/gcovblob/record"
	"github.com/arloliu/gcovblob/registry"
	"github.com/arloliu/gcovblob/sink"
)

// Exporter owns the registry and the two export buffers.
//
// Lifecycle: New, SetOutputBuffer and SetScratchBuffer, any number of Register
// calls, then exactly one Export.
//
// Note: Exporter is NOT thread-safe.
type Exporter struct {
	registry *registry.Registry
	sink     sink.Sink
	engine   endian.EndianEngine
	scratch  []uint32
	out      []byte
}

// New creates an Exporter.
//
// Parameters:
//   - opts: Optional configuration (registry capacity, sink, byte order)
//
// Returns:
//   - *Exporter: Exporter with an empty registry and no buffers
//   - error: Configuration error if an option is invalid
func New(opts ...Option) (*Exporter, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	reg, err := registry.New(cfg.capacity)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		registry: reg,
		sink:     cfg.sink,
		engine:   cfg.engine,
	}, nil
}

// SetOutputBuffer sets the buffer the container is built in. Its length is the
// container's size limit.
func (e *Exporter) SetOutputBuffer(buf []byte) {
	e.out = buf
}

// SetScratchBuffer sets the word buffer a single file is encoded into before
// it is framed. It must hold the largest file's encoding.
func (e *Exporter) SetScratchBuffer(buf []uint32) {
	e.scratch = buf
}

// Register adds a file to the export. Files are exported in reverse
// registration order.
//
// Returns:
//   - error: Validation errors from record.File.Validate, ErrInvalidFilename for a
//     filename the container cannot carry, ErrRegistryFull when the
//     registry is at capacity, ErrRegistryFrozen once Export has started
func (e *Exporter) Register(f *record.File) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := container.CheckName(f.Filename); err != nil {
		return err
	}

	return e.registry.Register(f)
}

// Registered returns the number of registered files.
func (e *Exporter) Registered() int {
	return e.registry.Len()
}

// Export builds the container and hands it to the sink.
//
// Every registered file is measured, encoded into the scratch buffer and framed
// into the output buffer, newest registration first. The end sentinel is only
// written when every file made it in. Both buffers are released afterwards,
// whether or not the export succeeded.
//
// Returns:
//   - int: Bytes committed to the output buffer. On failure this covers only the
//     whole records written before the failing file.
//   - error: ErrOutputBufferNotConfigured, ErrScratchBufferNotConfigured,
//     ErrAlreadyExported, ErrScratchBufferTooSmall, ErrOutputBufferTooSmall, or a
//     wrapped sink error
func (e *Exporter) Export() (int, error) {
	if e.registry.Frozen() {
		return 0, errs.ErrAlreadyExported
	}
	if e.out == nil {
		return 0, errs.ErrOutputBufferNotConfigured
	}
	if e.scratch == nil {
		return 0, errs.ErrScratchBufferNotConfigured
	}

	e.registry.Freeze()
	defer e.release()

	w := container.NewWriter(e.out, e.engine)
	for f := range e.registry.All() {
		if err := e.appendFile(w, f); err != nil {
			return w.Len(), err
		}
	}

	data, err := w.Finish()
	if err != nil {
		return w.Len(), err
	}

	if err := e.sink.Persist(data); err != nil {
		return len(data), fmt.Errorf("persist coverage container: %w", err)
	}

	return len(data), nil
}

func (e *Exporter) appendFile(w *container.Writer, f *record.File) error {
	size, err := gcda.Measure(f)
	if err != nil {
		return err
	}
	if size > len(e.scratch)*4 {
		return fmt.Errorf("%s: %w: need %d bytes, have %d",
			f.Filename, errs.ErrScratchBufferTooSmall, size, len(e.scratch)*4)
	}
	if !w.Fits(f.Filename, size) {
		return fmt.Errorf("%s: %w: need %d bytes, have %d",
			f.Filename, errs.ErrOutputBufferTooSmall, container.FrameSize(f.Filename, size), w.Remaining())
	}

	n, err := gcda.Encode(e.scratch, f)
	if err != nil {
		return err
	}

	return w.AppendRecord(f.Filename, e.scratch[:n/4])
}

func (e *Exporter) release() {
	e.out = nil
	e.scratch = nil
}
