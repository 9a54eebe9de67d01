package gcovblob

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gcovblob/compress"
	"github.com/arloliu/gcovblob/container"
	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
	"github.com/arloliu/gcovblob/gcda"
	"github.com/arloliu/gcovblob/record"
	"github.com/arloliu/gcovblob/sink"
)

const (
	testVersion  = 0x4234312a
	testStamp    = 0x1234
	testChecksum = 0xcafe
)

// emptyFile encodes to 16 bytes.
func emptyFile(t *testing.T, name string) *record.File {
	t.Helper()

	f, err := record.NewFile(name, testVersion, testStamp, testChecksum, 0)
	require.NoError(t, err)

	return f
}

// arcsFile encodes to 60 bytes.
func arcsFile(t *testing.T, name string) *record.File {
	t.Helper()

	fn := &record.Function{
		Ident:          7,
		LinenoChecksum: 0x11,
		CfgChecksum:    0x22,
		Counters:       []record.Counters{{Kind: format.KindArcs, Values: []int64{5, 1000000007}}},
	}
	f, err := record.NewFile(name, testVersion, testStamp, testChecksum, record.NewKindSet(format.KindArcs), fn)
	require.NoError(t, err)

	return f
}

func newExporter(t *testing.T, outSize, scratchWords int, opts ...Option) (*Exporter, []byte) {
	t.Helper()

	exp, err := New(opts...)
	require.NoError(t, err)

	out := make([]byte, outSize)
	exp.SetOutputBuffer(out)
	exp.SetScratchBuffer(make([]uint32, scratchWords))

	return exp, out
}

func TestExport_SingleEmptyFile(t *testing.T) {
	require := require.New(t)

	exp, out := newExporter(t, 128, 64, WithLittleEndian())
	require.NoError(exp.Register(emptyFile(t, "a.gcda")))

	n, err := exp.Export()
	require.NoError(err)

	want := []byte("a.gcda\x00")
	want = binary.BigEndian.AppendUint32(want, 16)
	for _, w := range []uint32{format.DataMagic, testVersion, testStamp, testChecksum} {
		want = binary.LittleEndian.AppendUint32(want, w)
	}
	want = append(want, container.Sentinel...)

	require.Equal(len(want), n)
	require.Equal(want, out[:n])
}

func TestExport_NewestFirst(t *testing.T) {
	require := require.New(t)

	exp, out := newExporter(t, 1024, 64)
	for _, name := range []string{"f1.gcda", "f2.gcda", "f3.gcda"} {
		require.NoError(exp.Register(arcsFile(t, name)))
	}
	require.Equal(3, exp.Registered())

	n, err := exp.Export()
	require.NoError(err)
	require.Equal(3*(7+1+4+60)+container.SentinelSize, n)
	require.True(bytes.HasSuffix(out[:n], []byte(container.Sentinel)))

	entries, err := container.Parse(out[:n])
	require.NoError(err)
	require.Len(entries, 3)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
		require.Len(e.Payload, 60)

		data, err := gcda.Decode(e.Payload)
		require.NoError(err)
		require.Len(data.Functions, 1)
		require.Equal([]int64{5, 1000000007}, data.Functions[0].Counters[0].Values)
	}
	require.Equal([]string{"f3.gcda", "f2.gcda", "f1.gcda"}, names)
}

func TestExport_NoFiles(t *testing.T) {
	exp, out := newExporter(t, 32, 4)

	n, err := exp.Export()
	require.NoError(t, err)
	require.Equal(t, []byte(container.Sentinel), out[:n])
}

func TestExport_Deterministic(t *testing.T) {
	run := func() []byte {
		exp, out := newExporter(t, 512, 64, WithBigEndian())
		require.NoError(t, exp.Register(arcsFile(t, "x.gcda")))
		require.NoError(t, exp.Register(emptyFile(t, "y.gcda")))
		n, err := exp.Export()
		require.NoError(t, err)

		return out[:n]
	}

	require.Equal(t, run(), run())
}

func TestExport_ByteOrder(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		magic []byte
	}{
		{name: "little", opt: WithLittleEndian(), magic: []byte{0x61, 0x64, 0x63, 0x67}},
		{name: "big", opt: WithBigEndian(), magic: []byte{0x67, 0x63, 0x64, 0x61}},
		{name: "explicit big", opt: WithByteOrder(endian.GetBigEndianEngine()), magic: []byte{0x67, 0x63, 0x64, 0x61}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			exp, out := newExporter(t, 128, 64, tt.opt)
			require.NoError(exp.Register(emptyFile(t, "a.gcda")))
			n, err := exp.Export()
			require.NoError(err)

			entries, err := container.Parse(out[:n])
			require.NoError(err)
			require.Len(entries, 1)
			require.Equal(tt.magic, entries[0].Payload[:4])
			// The length prefix is big-endian regardless of the word order.
			require.Equal([]byte{0, 0, 0, 16}, out[7:11])
		})
	}
}

func TestExport_DefaultsToHostOrder(t *testing.T) {
	exp, out := newExporter(t, 128, 64)
	require.NoError(t, exp.Register(emptyFile(t, "a.gcda")))
	n, err := exp.Export()
	require.NoError(t, err)

	entries, err := container.Parse(out[:n])
	require.NoError(t, err)
	require.Equal(t, uint32(format.DataMagic), endian.GetNativeEngine().Uint32(entries[0].Payload))
}

func TestExport_OutputTooSmall(t *testing.T) {
	require := require.New(t)

	// f2 fits, f1 does not.
	frame := 7 + 1 + 4 + 60
	exp, out := newExporter(t, frame+20, 64)
	require.NoError(exp.Register(arcsFile(t, "f1.gcda")))
	require.NoError(exp.Register(arcsFile(t, "f2.gcda")))

	n, err := exp.Export()
	require.ErrorIs(err, errs.ErrOutputBufferTooSmall)
	require.ErrorContains(err, "f1.gcda")
	require.Equal(frame, n)
	require.Equal(make([]byte, 20), out[n:], "nothing of f1 is written")

	var got []string
	for e, err := range container.All(out) {
		if err != nil {
			require.ErrorIs(err, errs.ErrMissingSentinel)
			break
		}
		got = append(got, e.Name)
	}
	require.Equal([]string{"f2.gcda"}, got)
}

func TestExport_SentinelDoesNotFit(t *testing.T) {
	require := require.New(t)

	frame := 6 + 1 + 4 + 16
	exp, out := newExporter(t, frame+container.SentinelSize-1, 64)
	require.NoError(exp.Register(emptyFile(t, "a.gcda")))

	n, err := exp.Export()
	require.ErrorIs(err, errs.ErrOutputBufferTooSmall)
	require.Equal(frame, n)
	require.Equal(make([]byte, container.SentinelSize-1), out[n:])
}

func TestExport_ScratchTooSmall(t *testing.T) {
	require := require.New(t)

	// 15 words hold the 60-byte encoding, the 16-byte one needs far less.
	exp, out := newExporter(t, 256, 15)
	require.NoError(exp.Register(arcsFile(t, "big.gcda")))
	require.NoError(exp.Register(emptyFile(t, "small.gcda")))

	n, err := exp.Export()
	require.NoError(err)
	require.Positive(n)

	exp, out = newExporter(t, 256, 14)
	require.NoError(exp.Register(emptyFile(t, "small.gcda")))
	require.NoError(exp.Register(arcsFile(t, "big.gcda")))

	n, err = exp.Export()
	require.ErrorIs(err, errs.ErrScratchBufferTooSmall)
	require.ErrorContains(err, "big.gcda")
	require.Zero(n)
	require.Equal(make([]byte, 256), out, "no filename or length is written")
}

func TestExport_NotConfigured(t *testing.T) {
	require := require.New(t)

	exp, err := New()
	require.NoError(err)

	_, err = exp.Export()
	require.ErrorIs(err, errs.ErrOutputBufferNotConfigured)

	exp.SetOutputBuffer(make([]byte, 64))
	_, err = exp.Export()
	require.ErrorIs(err, errs.ErrScratchBufferNotConfigured)

	exp.SetScratchBuffer(make([]uint32, 8))
	n, err := exp.Export()
	require.NoError(err)
	require.Equal(container.SentinelSize, n)
}

func TestExport_Once(t *testing.T) {
	require := require.New(t)

	exp, _ := newExporter(t, 128, 16)
	require.NoError(exp.Register(emptyFile(t, "a.gcda")))

	_, err := exp.Export()
	require.NoError(err)
	require.Nil(exp.out)
	require.Nil(exp.scratch)

	_, err = exp.Export()
	require.ErrorIs(err, errs.ErrAlreadyExported)

	err = exp.Register(emptyFile(t, "late.gcda"))
	require.ErrorIs(err, errs.ErrRegistryFrozen)
}

func TestExport_ReleasesBuffersOnFailure(t *testing.T) {
	exp, _ := newExporter(t, 4, 16)
	require.NoError(t, exp.Register(emptyFile(t, "a.gcda")))

	_, err := exp.Export()
	require.ErrorIs(t, err, errs.ErrOutputBufferTooSmall)
	require.Nil(t, exp.out)
	require.Nil(t, exp.scratch)
}

func TestRegister(t *testing.T) {
	require := require.New(t)

	exp, err := New(WithRegistryCapacity(2))
	require.NoError(err)

	require.ErrorIs(exp.Register(nil), errs.ErrNilRecord)

	bad := &record.File{
		Filename:  "bad.gcda",
		Kinds:     record.NewKindSet(format.KindArcs),
		Functions: []*record.Function{{Ident: 1}},
	}
	require.ErrorIs(exp.Register(bad), errs.ErrCounterKindMismatch)

	require.NoError(exp.Register(emptyFile(t, "a.gcda")))
	require.NoError(exp.Register(emptyFile(t, "b.gcda")))

	err = exp.Register(emptyFile(t, "c.gcda"))
	require.ErrorIs(err, errs.ErrRegistryFull)
	require.Equal(2, exp.Registered())
}

func TestRegister_InvalidFilename(t *testing.T) {
	require := require.New(t)

	exp, out := newExporter(t, 256, 64)
	for _, name := range []string{"", "\x00main.gcda", "Gcov End", "Gcov End\x00.gcda"} {
		err := exp.Register(emptyFile(t, name))
		require.ErrorIs(err, errs.ErrInvalidFilename, "name %q", name)
	}
	require.Zero(exp.Registered())

	// Names that only resemble the sentinel are fine.
	require.NoError(exp.Register(emptyFile(t, "a.gcda")))
	require.NoError(exp.Register(emptyFile(t, "Gcov End.gcda")))
	require.NoError(exp.Register(emptyFile(t, "Gcov")))

	n, err := exp.Export()
	require.NoError(err)

	entries, err := container.Parse(out[:n])
	require.NoError(err)
	require.Len(entries, 3)
	require.Equal("Gcov", entries[0].Name)
	require.Equal("Gcov End.gcda", entries[1].Name)
	require.Equal("a.gcda", entries[2].Name)
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{name: "zero capacity", opt: WithRegistryCapacity(0), wantErr: errs.ErrInvalidRegistryCapacity},
		{name: "negative capacity", opt: WithRegistryCapacity(-1), wantErr: errs.ErrInvalidRegistryCapacity},
		{name: "nil sink", opt: WithSink(nil), wantErr: errs.ErrNilSink},
		{name: "nil byte order", opt: WithByteOrder(nil), wantErr: errs.ErrNilByteOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := New(tt.opt)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, exp)
		})
	}
}

func TestExport_Sink(t *testing.T) {
	require := require.New(t)

	var persisted []byte
	calls := 0
	s := sink.Func(func(data []byte) error {
		calls++
		persisted = data

		return nil
	})

	exp, out := newExporter(t, 128, 16, WithSink(s))
	require.NoError(exp.Register(emptyFile(t, "a.gcda")))
	n, err := exp.Export()
	require.NoError(err)
	require.Equal(1, calls)
	require.Equal(out[:n], persisted)
}

func TestExport_SinkNotCalledOnFailure(t *testing.T) {
	calls := 0
	s := sink.Func(func([]byte) error {
		calls++
		return nil
	})

	exp, _ := newExporter(t, 8, 16, WithSink(s))
	require.NoError(t, exp.Register(emptyFile(t, "a.gcda")))
	_, err := exp.Export()
	require.Error(t, err)
	require.Zero(t, calls)
}

func TestExport_SinkError(t *testing.T) {
	require := require.New(t)

	errDisk := errors.New("disk full")
	exp, _ := newExporter(t, 128, 16, WithSink(sink.Func(func([]byte) error { return errDisk })))
	require.NoError(exp.Register(emptyFile(t, "a.gcda")))

	n, err := exp.Export()
	require.ErrorIs(err, errDisk)
	require.Equal(6+1+4+16+container.SentinelSize, n)
}

func TestExport_CompressedSink(t *testing.T) {
	require := require.New(t)

	var archived bytes.Buffer
	s, err := sink.NewCompressed(sink.NewWriter(&archived), format.CompressionZstd)
	require.NoError(err)

	exp, out := newExporter(t, 512, 64, WithSink(s))
	require.NoError(exp.Register(arcsFile(t, "a.gcda")))
	require.NoError(exp.Register(arcsFile(t, "b.gcda")))
	n, err := exp.Export()
	require.NoError(err)

	codec, err := compress.GetCodec(format.CompressionZstd)
	require.NoError(err)
	restored, err := codec.Decompress(archived.Bytes())
	require.NoError(err)
	require.Equal(out[:n], restored)
	require.Equal(int64(n), s.Stats().OriginalSize)
}

func TestMergeNoOps(t *testing.T) {
	counters := []int64{1, 2, 3}

	merge := [format.NumCounterKinds]record.MergeFunc{
		format.KindArcs: MergeAdd,
		format.KindIOR:  MergeIOR,
	}
	for _, fn := range merge {
		if fn != nil {
			fn(counters, uint32(len(counters)))
		}
	}

	require.Equal(t, []int64{1, 2, 3}, counters)
	require.Equal(t, record.NewKindSet(format.KindArcs, format.KindIOR), record.KindSetFromMerge(merge))
}

func BenchmarkExport(b *testing.B) {
	fns := make([]*record.Function, 32)
	for i := range fns {
		values := make([]int64, 64)
		for j := range values {
			values[j] = int64(i*j) << 20
		}
		fns[i] = &record.Function{
			Ident:    uint32(i),
			Counters: []record.Counters{{Kind: format.KindArcs, Values: values}},
		}
	}

	files := make([]*record.File, 16)
	for i := range files {
		f, err := record.NewFile("/build/obj/unit.gcda", testVersion, testStamp, testChecksum,
			record.NewKindSet(format.KindArcs), fns...)
		require.NoError(b, err)
		files[i] = f
	}

	out := make([]byte, 1<<20)
	scratch := make([]uint32, 1<<14)

	b.ReportAllocs()
	for b.Loop() {
		exp, _ := New(WithRegistryCapacity(len(files)))
		for _, f := range files {
			_ = exp.Register(f)
		}
		exp.SetOutputBuffer(out)
		exp.SetScratchBuffer(scratch)
		if _, err := exp.Export(); err != nil {
			b.Fatal(err)
		}
	}
}
