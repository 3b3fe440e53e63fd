package buffer

import (
	"math"

	"github.com/particlezoo/phsp/errs"
)

// reorder converts v in place between the buffer's configured wire order
// and host order. The transform is its own inverse, so the same call
// serves both ReadUintN (wire -> host) and WriteUintN (host -> wire).
//
// PDPEndian is handled as a word-swap relative to big-endian: decoding
// swaps adjacent byte pairs first, then reverses the whole scalar if the
// host is little-endian; encoding undoes that in the opposite order. Both
// directions compose to the identity, which is what lets one function
// serve both read and write.
func (b *Buffer) reorder(v []byte) { reorderStatic(v, b.order) }

// ReadUint8 reads a single byte. Byte order has no effect on a single byte.
func (b *Buffer) ReadUint8() (uint8, error) {
	v, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return v[0], nil
}

// ReadInt8 reads a single signed byte.
func (b *Buffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()

	return int8(v), err
}

// ReadUint16 reads a 2-byte unsigned integer, applying endianness
// conversion per the buffer's configured order.
func (b *Buffer) ReadUint16() (uint16, error) {
	v, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	tmp := append([]byte(nil), v...)
	b.reorder(tmp)

	return uint16(tmp[0]) | uint16(tmp[1])<<8, nil
}

// ReadInt16 reads a 2-byte signed integer.
func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()

	return int16(v), err
}

// ReadUint32 reads a 4-byte unsigned integer.
func (b *Buffer) ReadUint32() (uint32, error) {
	v, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	tmp := append([]byte(nil), v...)
	b.reorder(tmp)

	return uint32(tmp[0]) | uint32(tmp[1])<<8 | uint32(tmp[2])<<16 | uint32(tmp[3])<<24, nil
}

// ReadInt32 reads a 4-byte signed integer.
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()

	return int32(v), err
}

// ReadUint64 reads an 8-byte unsigned integer.
func (b *Buffer) ReadUint64() (uint64, error) {
	v, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	tmp := append([]byte(nil), v...)
	b.reorder(tmp)

	var out uint64
	for i := 7; i >= 0; i-- {
		out = out<<8 | uint64(tmp[i])
	}

	return out, nil
}

// ReadInt64 reads an 8-byte signed integer.
func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()

	return int64(v), err
}

// ReadFloat32 reads a 4-byte IEEE-754 float.
func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()

	return math.Float32frombits(v), err
}

// ReadFloat64 reads an 8-byte IEEE-754 double.
func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()

	return math.Float64frombits(v), err
}

// WriteUint8 writes a single byte.
func (b *Buffer) WriteUint8(v uint8) { b.WriteBytes([]byte{v}) }

// WriteInt8 writes a single signed byte.
func (b *Buffer) WriteInt8(v int8) { b.WriteUint8(uint8(v)) }

// WriteUint16 writes a 2-byte unsigned integer, applying endianness
// conversion per the buffer's configured order.
func (b *Buffer) WriteUint16(v uint16) {
	tmp := []byte{byte(v), byte(v >> 8)}
	b.reorder(tmp)
	b.WriteBytes(tmp)
}

// WriteInt16 writes a 2-byte signed integer.
func (b *Buffer) WriteInt16(v int16) { b.WriteUint16(uint16(v)) }

// WriteUint32 writes a 4-byte unsigned integer.
func (b *Buffer) WriteUint32(v uint32) {
	tmp := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	b.reorder(tmp)
	b.WriteBytes(tmp)
}

// WriteInt32 writes a 4-byte signed integer.
func (b *Buffer) WriteInt32(v int32) { b.WriteUint32(uint32(v)) }

// WriteUint64 writes an 8-byte unsigned integer.
func (b *Buffer) WriteUint64(v uint64) {
	tmp := make([]byte, 8)
	for i := 0; i < 8; i++ {
		tmp[i] = byte(v >> (8 * i))
	}
	b.reorder(tmp)
	b.WriteBytes(tmp)
}

// WriteInt64 writes an 8-byte signed integer.
func (b *Buffer) WriteInt64(v int64) { b.WriteUint64(uint64(v)) }

// WriteFloat32 writes a 4-byte IEEE-754 float.
func (b *Buffer) WriteFloat32(v float32) { b.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 writes an 8-byte IEEE-754 double.
func (b *Buffer) WriteFloat64(v float64) { b.WriteUint64(math.Float64bits(v)) }

// DecodeUint16At decodes a 2-byte unsigned integer from a standalone slice
// using the given order, without touching a Buffer's cursor. Codecs use
// this (and its siblings below) when parsing a fully-buffered header in one
// pass rather than through sequential Buffer reads.
func DecodeUint16At(v []byte, order Order) (uint16, error) {
	if len(v) < 2 {
		return 0, errs.ErrNotEnoughData
	}
	tmp := append([]byte(nil), v[:2]...)
	reorderStatic(tmp, order)

	return uint16(tmp[0]) | uint16(tmp[1])<<8, nil
}

// DecodeUint32At decodes a 4-byte unsigned integer from a standalone slice.
func DecodeUint32At(v []byte, order Order) (uint32, error) {
	if len(v) < 4 {
		return 0, errs.ErrNotEnoughData
	}
	tmp := append([]byte(nil), v[:4]...)
	reorderStatic(tmp, order)

	return uint32(tmp[0]) | uint32(tmp[1])<<8 | uint32(tmp[2])<<16 | uint32(tmp[3])<<24, nil
}

// EncodeUint32At appends a 4-byte unsigned integer to dst using the given
// order.
func EncodeUint32At(dst []byte, v uint32, order Order) []byte {
	tmp := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	reorderStatic(tmp, order)

	return append(dst, tmp...)
}

// EncodeUint16At appends a 2-byte unsigned integer to dst using the given
// order.
func EncodeUint16At(dst []byte, v uint16, order Order) []byte {
	tmp := []byte{byte(v), byte(v >> 8)}
	reorderStatic(tmp, order)

	return append(dst, tmp...)
}

func reverseBytes(v []byte) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

func reorderStatic(v []byte, order Order) {
	if len(v) <= 1 {
		return
	}

	if order == PDPEndian {
		swapPDP(v)
		if hostOrder == LittleEndian {
			reverseBytes(v)
		}

		return
	}

	if order != hostOrder {
		reverseBytes(v)
	}
}
