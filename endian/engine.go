// Package endian provides the byte order engines used to lay out gcda words.
//
// gcda words are stored in the target's natural byte order, so the default engine
// is the host's own order (GetNativeEngine). The container length prefix is always
// big-endian and does not go through this package.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so the
// same value can drive both in-place puts into a fixed buffer and appends:
//
//	engine := endian.GetNativeEngine()
//	engine.PutUint32(out[off:], word)
//
// All functions and returned engines are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100: a big-endian host stores the 0x01 byte first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetNativeEngine returns the engine matching the host byte order. This is the
// order gcov expects when the dump is produced and consumed on the same architecture.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Swapped returns the engine with the opposite byte order of engine.
func Swapped(engine EndianEngine) EndianEngine {
	if engine == binary.BigEndian {
		return binary.LittleEndian
	}

	return binary.BigEndian
}
