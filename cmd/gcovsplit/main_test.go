package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gcovblob"
	"github.com/arloliu/gcovblob/compress"
	"github.com/arloliu/gcovblob/container"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
	"github.com/arloliu/gcovblob/record"
)

func buildContainer(t *testing.T) []byte {
	t.Helper()

	exp, err := gcovblob.New(gcovblob.WithLittleEndian())
	require.NoError(t, err)

	out := make([]byte, 1024)
	exp.SetOutputBuffer(out)
	exp.SetScratchBuffer(make([]uint32, 64))

	fn := &record.Function{
		Ident:          3,
		LinenoChecksum: 0x10,
		CfgChecksum:    0x20,
		Counters:       []record.Counters{{Kind: format.KindArcs, Values: []int64{5, 1000000007}}},
	}
	mainFile, err := record.NewFile("/build/main.gcda", 1, 2, 3, record.NewKindSet(format.KindArcs), fn)
	require.NoError(t, err)
	util, err := record.NewFile("/build/util.gcda", 1, 2, 3, 0)
	require.NoError(t, err)

	require.NoError(t, exp.Register(mainFile))
	require.NoError(t, exp.Register(util))

	n, err := exp.Export()
	require.NoError(t, err)

	return out[:n]
}

func TestParseCompression(t *testing.T) {
	for _, name := range compressionNames {
		_, err := parseCompression(name)
		require.NoError(t, err)
	}

	ct, err := parseCompression("ZSTD")
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, ct)

	// Failure situation
	_, err = parseCompression("gzip")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--compression should be one of")
}

func TestReadContainer(t *testing.T) {
	data := buildContainer(t)
	dir := t.TempDir()

	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionS2, format.CompressionLZ4} {
		codec, err := compress.GetCodec(ct)
		require.NoError(t, err)
		packed, err := codec.Compress(data)
		require.NoError(t, err)

		path := filepath.Join(dir, ct.String()+".bin")
		require.NoError(t, os.WriteFile(path, packed, 0o600))

		got, err := readContainer(path, ct)
		require.NoError(t, err)
		require.Equal(t, data, got)
	}

	// Failure situation
	_, err := readContainer(filepath.Join(dir, "missing.bin"), format.CompressionNone)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read container")
}

func TestListEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listEntries(&buf, buildContainer(t)))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	require.True(t, bytes.HasSuffix(lines[0], []byte("      16 /build/util.gcda")))
	require.True(t, bytes.HasSuffix(lines[1], []byte("      60 /build/main.gcda")))

	// Failure situation
	data := buildContainer(t)
	err := listEntries(&buf, data[:len(data)-container.SentinelSize])
	require.ErrorIs(t, err, errs.ErrMissingSentinel)
}

func TestDumpEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpEntries(&buf, buildContainer(t)))

	out := buf.String()
	require.Contains(t, out, "/build/util.gcda: version 0x1 stamp 0x2 checksum 0x3, 0 functions, 0 counters")
	require.Contains(t, out, "/build/main.gcda: version 0x1 stamp 0x2 checksum 0x3, 1 functions, 2 counters")
	require.Contains(t, out, "  function 3 lineno 0x10 cfg 0x20")
	require.Contains(t, out, "    arcs: [5 1000000007]")
}

func TestFormatValues(t *testing.T) {
	require.Equal(t, "[]", formatValues(nil))
	require.Equal(t, "[-1 0 7]", formatValues([]int64{-1, 0, 7}))
}
