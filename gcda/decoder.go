package gcda

import (
	"fmt"

	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
	"github.com/arloliu/gcovblob/record"
	"github.com/arloliu/gcovblob/section"
)

// Data is a decoded gcda payload.
type Data struct {
	section.FileHeader

	// Engine is the byte order the payload was written in.
	Engine    endian.EndianEngine
	Functions []Function
}

// Function is one decoded function record with the counter records that followed it.
type Function struct {
	section.FunctionHeader

	Counters []record.Counters
}

// Kinds returns the set of counter kinds present in any function.
func (d *Data) Kinds() record.KindSet {
	var s record.KindSet
	for _, fn := range d.Functions {
		for _, c := range fn.Counters {
			s = s.With(c.Kind)
		}
	}

	return s
}

// File rebuilds the record tree of d under filename, so that a decoded payload
// can be inspected or encoded again.
func (d *Data) File(filename string) *record.File {
	f := &record.File{
		Version:   d.Version,
		Stamp:     d.Stamp,
		Checksum:  d.Checksum,
		Filename:  filename,
		Kinds:     d.Kinds(),
		Functions: make([]*record.Function, len(d.Functions)),
	}
	for i, fn := range d.Functions {
		f.Functions[i] = &record.Function{
			Ident:          fn.Ident,
			LinenoChecksum: fn.LinenoChecksum,
			CfgChecksum:    fn.CfgChecksum,
			Counters:       fn.Counters,
		}
	}

	return f
}

// Decode parses a gcda payload. The byte order is detected from the magic word.
//
// Decode is the host-side counterpart of Encode; it is what gcov itself does
// when it reads the file, restricted to the records Encode produces.
func Decode(data []byte) (*Data, error) {
	engine, err := section.DetectEngine(data)
	if err != nil {
		return nil, err
	}

	d := &Data{Engine: engine}
	if err := d.FileHeader.Parse(data, engine); err != nil {
		return nil, err
	}

	off := section.FileHeaderSize
	for off < len(data) {
		var tl section.TagLength
		if err := tl.Parse(data[off:], engine); err != nil {
			return nil, fmt.Errorf("offset %d: %w", off, err)
		}
		off += section.CounterHeaderSize

		if tl.Length%format.WordSize != 0 || uint64(tl.Length) > uint64(len(data)-off) {
			return nil, fmt.Errorf("offset %d: %w: tag %#08x length %d",
				off, errs.ErrInvalidRecordLength, tl.Tag, tl.Length)
		}
		body := data[off : off+int(tl.Length)]
		off += int(tl.Length)

		if tl.Tag == format.TagFunction {
			var fn Function
			if err := fn.ParseBody(body, engine); err != nil {
				return nil, err
			}
			d.Functions = append(d.Functions, fn)

			continue
		}

		kind, ok := format.CounterKindForTag(tl.Tag)
		if !ok || len(d.Functions) == 0 {
			return nil, fmt.Errorf("%w: %#08x", errs.ErrUnexpectedTag, tl.Tag)
		}
		if tl.Length%section.CounterValueSize != 0 {
			return nil, fmt.Errorf("%s counters: %w: %d", kind, errs.ErrInvalidRecordLength, tl.Length)
		}

		values := make([]int64, 0, len(body)/section.CounterValueSize)
		for i := 0; i < len(body); i += section.CounterValueSize {
			values = append(values, section.JoinCounter(engine.Uint32(body[i:]), engine.Uint32(body[i+4:])))
		}

		fn := &d.Functions[len(d.Functions)-1]
		fn.Counters = append(fn.Counters, record.Counters{Kind: kind, Values: values})
	}

	return d, nil
}
