package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gcovblob/endian"
	"github.com/arloliu/gcovblob/errs"
	"github.com/arloliu/gcovblob/format"
)

func putWords(engine endian.EndianEngine, words ...uint32) []byte {
	var b []byte
	for _, w := range words {
		b = engine.AppendUint32(b, w)
	}

	return b
}

func TestFileHeaderWords(t *testing.T) {
	h := FileHeader{Version: 0x4231342a, Stamp: 7, Checksum: 9}
	require.Equal(t, [4]uint32{0x67636461, 0x4231342a, 7, 9}, h.Words())
}

func TestFileHeaderParse(t *testing.T) {
	require := require.New(t)

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		want := FileHeader{Version: 1, Stamp: 2, Checksum: 3}
		w := want.Words()
		data := putWords(engine, w[:]...)

		var got FileHeader
		require.NoError(got.Parse(data, engine))
		require.Equal(want, got)

		detected, err := DetectEngine(data)
		require.NoError(err)
		require.Equal(engine, detected)
	}

	var h FileHeader
	require.ErrorIs(h.Parse(make([]byte, 15), endian.GetLittleEndianEngine()), errs.ErrTruncatedRecord)
	require.ErrorIs(h.Parse(make([]byte, 16), endian.GetLittleEndianEngine()), errs.ErrInvalidMagic)
}

func TestDetectEngineRejectsGarbage(t *testing.T) {
	_, err := DetectEngine([]byte("abcd"))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)

	_, err = DetectEngine([]byte("ab"))
	require.ErrorIs(t, err, errs.ErrTruncatedRecord)
}

func TestFunctionHeader(t *testing.T) {
	require := require.New(t)

	h := FunctionHeader{Ident: 11, LinenoChecksum: 22, CfgChecksum: 33}
	w := h.Words()
	require.Equal([5]uint32{format.TagFunction, 12, 11, 22, 33}, w)

	engine := endian.GetLittleEndianEngine()
	var got FunctionHeader
	require.NoError(got.ParseBody(putWords(engine, w[2:]...), engine))
	require.Equal(h, got)

	require.ErrorIs(got.ParseBody(make([]byte, 8), engine), errs.ErrInvalidRecordLength)
}

func TestCounterHeader(t *testing.T) {
	require := require.New(t)

	h := CounterHeader(format.KindArcs, 2)
	require.Equal([2]uint32{0x01a10000, 16}, h.Words())

	engine := endian.GetBigEndianEngine()
	var got TagLength
	require.NoError(got.Parse(putWords(engine, 0x01a30000, 24), engine))
	require.Equal(TagLength{Tag: 0x01a30000, Length: 24}, got)
	require.ErrorIs(got.Parse(make([]byte, 7), engine), errs.ErrTruncatedRecord)
}

func TestJoinCounter(t *testing.T) {
	tests := []struct {
		name   string
		v      int64
		lo, hi uint32
	}{
		{"small", 5, 5, 0},
		{"1e9+7", 1000000007, 0x3b9aca07, 0},
		{"high half", 0x0000000100000002, 2, 1},
		{"negative", -1, 0xffffffff, 0xffffffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.v, JoinCounter(tt.lo, tt.hi))
		})
	}
}
