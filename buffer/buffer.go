// Package buffer provides a fixed-capacity byte arena with typed
// read/write access, endianness conversion, and string/line framing.
//
// It is the substrate the phsp Reader/Writer skeletons and every codec use
// to move bytes between a file and decoded/encoded particle records. It
// follows the growth and reuse discipline of a pooled byte buffer (grow by
// a fixed chunk while small, by a fraction of capacity once large) rather
// than reallocating on every write.
package buffer

import (
	"io"

	"github.com/particlezoo/phsp/errs"
)

const (
	// DefaultGrowChunk is how much a small buffer grows by when it runs out
	// of capacity.
	DefaultGrowChunk = 16 * 1024
	// LargeBufferThreshold is the capacity above which growth switches from
	// a fixed chunk to a fraction of current capacity.
	LargeBufferThreshold = 4 * DefaultGrowChunk
)

// Buffer is a fixed-capacity byte vector with a valid length and a read/write
// cursor (offset) within that valid region.
//
// Invariant: 0 <= offset <= length <= cap(data).
type Buffer struct {
	data   []byte
	length int
	offset int
	order  Order
}

// New creates a Buffer with the given capacity and byte order. The buffer
// starts empty (length 0, offset 0).
func New(capacity int, order Order) *Buffer {
	return &Buffer{
		data:  make([]byte, capacity),
		order: order,
	}
}

// From wraps an existing byte slice as a Buffer whose valid length is the
// full slice and whose offset starts at zero.
func From(data []byte, order Order) *Buffer {
	return &Buffer{
		data:   data,
		length: len(data),
		order:  order,
	}
}

// Order returns the buffer's configured byte order.
func (b *Buffer) Order() Order { return b.order }

// SetOrder changes the buffer's byte order for subsequent reads/writes. It
// does not reinterpret bytes already written.
func (b *Buffer) SetOrder(order Order) { b.order = order }

// Len returns the number of valid bytes in the buffer.
func (b *Buffer) Len() int { return b.length }

// Cap returns the buffer's total capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Offset returns the current read/write cursor position.
func (b *Buffer) Offset() int { return b.offset }

// Remaining returns the number of unread bytes between the cursor and the
// valid length.
func (b *Buffer) Remaining() int { return b.length - b.offset }

// Bytes returns the valid (written) portion of the buffer.
func (b *Buffer) Bytes() []byte { return b.data[:b.length] }

// Clear resets length and offset to zero, retaining the allocated capacity.
func (b *Buffer) Clear() {
	b.length = 0
	b.offset = 0
}

// MoveTo repositions the cursor to an absolute offset, which must not exceed
// the valid length.
func (b *Buffer) MoveTo(n int) error {
	if n < 0 || n > b.length {
		return errs.ErrNotEnoughData
	}
	b.offset = n

	return nil
}

// Compact shifts the unread tail to the start of the buffer and updates
// length/offset accordingly, discarding already-consumed bytes.
func (b *Buffer) Compact() {
	if b.offset == 0 {
		return
	}
	n := copy(b.data, b.data[b.offset:b.length])
	b.length = n
	b.offset = 0
}

// Expand zero-fills the unused capacity and advances length to the full
// capacity, without moving the offset.
func (b *Buffer) Expand() {
	for i := b.length; i < cap(b.data); i++ {
		b.data[i] = 0
	}
	b.length = cap(b.data)
}

// Grow ensures the buffer can hold at least n more bytes past its current
// length without reallocating on the next write, growing in the same
// two-regime policy a pooled arena uses: a fixed chunk below
// LargeBufferThreshold, a quarter of current capacity above it.
func (b *Buffer) Grow(n int) {
	available := cap(b.data) - b.length
	if available >= n {
		return
	}

	growBy := DefaultGrowChunk
	if cap(b.data) > LargeBufferThreshold {
		growBy = cap(b.data) / 4
	}
	if growBy < n-available {
		growBy = n - available
	}

	newData := make([]byte, b.length, cap(b.data)+growBy)
	copy(newData, b.data[:b.length])
	b.data = newData
}

// ReadBytes returns a view of the next n unread bytes and advances the
// cursor past them. The returned slice aliases the buffer's storage.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if b.offset+n > b.length {
		return nil, errs.ErrNotEnoughData
	}
	v := b.data[b.offset : b.offset+n]
	b.offset += n

	return v, nil
}

// PeekBytes returns a view of the next n unread bytes without advancing the
// cursor.
func (b *Buffer) PeekBytes(n int) ([]byte, error) {
	if b.offset+n > b.length {
		return nil, errs.ErrNotEnoughData
	}

	return b.data[b.offset : b.offset+n], nil
}

// WriteBytes appends raw bytes at the current offset, growing the buffer if
// needed, and advances length/offset past them.
func (b *Buffer) WriteBytes(v []byte) {
	b.Grow(len(v))
	n := copy(b.data[b.offset:cap(b.data)], v)
	b.offset += n
	if b.offset > b.length {
		b.length = b.offset
	}
}

// WriteBytesAt writes v at an absolute byte offset without moving the
// cursor, extending length if the write reaches past it. Used by writers
// back-patching a header at offset 0 after accumulating statistics.
func (b *Buffer) WriteBytesAt(pos int, v []byte) error {
	if pos+len(v) > cap(b.data) {
		return errs.ErrNotEnoughSpace
	}
	copy(b.data[pos:pos+len(v)], v)
	if pos+len(v) > b.length {
		b.length = pos + len(v)
	}

	return nil
}

// ReadString reads bytes up to (and consuming) the first NUL byte. It fails
// with ErrNotEnoughData, leaving the offset unchanged, if no NUL is found
// before the valid length.
func (b *Buffer) ReadString() (string, error) {
	for i := b.offset; i < b.length; i++ {
		if b.data[i] == 0 {
			s := string(b.data[b.offset:i])
			b.offset = i + 1

			return s, nil
		}
	}

	return "", errs.ErrNotEnoughData
}

// ReadStringN reads exactly n bytes and returns them as a string.
func (b *Buffer) ReadStringN(n int) (string, error) {
	v, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(v), nil
}

// ReadLine reads bytes up to and including the next '\n', strips a single
// trailing '\r', and advances the cursor past the newline. It fails with
// ErrNotEnoughData, leaving the offset unchanged, if no '\n' is found.
func (b *Buffer) ReadLine() (string, error) {
	for i := b.offset; i < b.length; i++ {
		if b.data[i] == '\n' {
			end := i
			if end > b.offset && b.data[end-1] == '\r' {
				end--
			}
			line := string(b.data[b.offset:end])
			b.offset = i + 1

			return line, nil
		}
	}

	return "", errs.ErrNotEnoughData
}

// WriteString appends s, optionally followed by a NUL terminator.
func (b *Buffer) WriteString(s string, includeNUL bool) {
	b.WriteBytes([]byte(s))
	if includeNUL {
		b.WriteBytes([]byte{0})
	}
}

// WriteLine appends s followed by '\n'.
func (b *Buffer) WriteLine(s string) {
	b.WriteBytes([]byte(s))
	b.WriteBytes([]byte{'\n'})
}

// SetData reads up to the buffer's remaining capacity from r, replacing any
// existing content and resetting the offset to zero. It returns the number
// of bytes read.
func (b *Buffer) SetData(r io.Reader) (int, error) {
	b.length = 0
	b.offset = 0
	n, err := io.ReadFull(r, b.data[:cap(b.data)])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return n, err
	}
	b.length = n

	return n, nil
}

// AppendData reads from r into the buffer's remaining capacity past the
// current length, preserving the offset. It returns the number of bytes
// read.
func (b *Buffer) AppendData(r io.Reader) (int, error) {
	free := cap(b.data) - b.length
	if free <= 0 {
		return 0, nil
	}
	n, err := io.ReadFull(r, b.data[b.length:cap(b.data)])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return n, err
	}
	b.length += n

	return n, nil
}
