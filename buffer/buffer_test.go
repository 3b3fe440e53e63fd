package buffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	for _, order := range []Order{LittleEndian, BigEndian, PDPEndian} {
		buf := New(64, order)
		buf.WriteUint8(0x7F)
		buf.WriteInt16(-1234)
		buf.WriteUint32(0xDEADBEEF)
		buf.WriteInt64(-9_000_000_000)
		buf.WriteFloat32(3.5)
		buf.WriteFloat64(2.71828)

		require.NoError(t, buf.MoveTo(0))

		v8, err := buf.ReadUint8()
		require.NoError(t, err)
		require.Equal(t, uint8(0x7F), v8)

		v16, err := buf.ReadInt16()
		require.NoError(t, err)
		require.Equal(t, int16(-1234), v16)

		v32, err := buf.ReadUint32()
		require.NoError(t, err)
		require.Equal(t, uint32(0xDEADBEEF), v32)

		v64, err := buf.ReadInt64()
		require.NoError(t, err)
		require.Equal(t, int64(-9_000_000_000), v64)

		f32, err := buf.ReadFloat32()
		require.NoError(t, err)
		require.InDelta(t, 3.5, f32, 1e-6)

		f64, err := buf.ReadFloat64()
		require.NoError(t, err)
		require.InDelta(t, 2.71828, f64, 1e-9)
	}
}

func TestBigEndianCrossHost(t *testing.T) {
	buf := New(8, BigEndian)
	buf.WriteUint32(1)
	require.Equal(t, []byte{0, 0, 0, 1}, buf.Bytes())

	require.NoError(t, buf.MoveTo(0))
	v, err := buf.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)
}

func TestNotEnoughData(t *testing.T) {
	buf := From([]byte{1, 2}, LittleEndian)
	_, err := buf.ReadUint32()
	require.Error(t, err)
}

func TestReadStringNUL(t *testing.T) {
	buf := From([]byte("hello\x00world"), LittleEndian)
	s, err := buf.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
	require.Equal(t, 6, buf.Offset())
}

func TestReadLineStripsCR(t *testing.T) {
	buf := From([]byte("one\r\ntwo\n"), LittleEndian)
	l1, err := buf.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one", l1)
	l2, err := buf.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "two", l2)
}

func TestCompactAndExpand(t *testing.T) {
	buf := From([]byte("abcdef"), LittleEndian)
	_, _ = buf.ReadBytes(2)
	buf.Compact()
	require.Equal(t, "cdef", string(buf.Bytes()))
	require.Equal(t, 0, buf.Offset())

	buf.Expand()
	require.Equal(t, buf.Cap(), buf.Len())
	require.Equal(t, "cdef", string(buf.Bytes()[:4]))
	for _, b := range buf.Bytes()[4:] {
		require.Equal(t, byte(0), b)
	}
	require.Equal(t, 0, buf.Offset())
}

func TestSetDataResetsOffsetAppendPreserves(t *testing.T) {
	buf := New(8, LittleEndian)
	n, err := buf.SetData(bytes.NewReader([]byte{1, 2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, _ = buf.ReadBytes(2)
	require.Equal(t, 2, buf.Offset())

	n, err = buf.AppendData(bytes.NewReader([]byte{5, 6}))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 2, buf.Offset())
	require.Equal(t, 6, buf.Len())

	_, err = buf.SetData(bytes.NewReader([]byte{9}))
	require.NoError(t, err)
	require.Equal(t, 0, buf.Offset())
	require.Equal(t, 1, buf.Len())
}

func TestGrowByPolicy(t *testing.T) {
	buf := New(1, LittleEndian)
	buf.Grow(100)
	require.GreaterOrEqual(t, buf.Cap(), 101)
}
