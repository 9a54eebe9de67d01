package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian)
	require.True(t, littleEndian || bigEndian)
}

func TestGetNativeEngine(t *testing.T) {
	require := require.New(t)

	engine := GetNativeEngine()
	require.True(CompareNativeEndian(engine))

	// A word written with the native engine must read back through a raw
	// memory view of the same bytes.
	b := make([]byte, 4)
	engine.PutUint32(b, 0x67636461)
	require.Equal(uint32(0x67636461), *(*uint32)(unsafe.Pointer(&b[0])))
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestEngineWordLayout(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x61, 0x64, 0x63, 0x67}},
		{"big", GetBigEndianEngine(), []byte{0x67, 0x63, 0x64, 0x61}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := make([]byte, 4)
			tt.engine.PutUint32(b, 0x67636461)
			require.Equal(t, tt.want, b)
			require.Equal(t, uint32(0x67636461), tt.engine.Uint32(b))
			require.Equal(t, tt.want, tt.engine.AppendUint32(nil, 0x67636461))
		})
	}
}

func TestSwapped(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), Swapped(GetLittleEndianEngine()))
	require.Equal(t, GetLittleEndianEngine(), Swapped(GetBigEndianEngine()))
}
