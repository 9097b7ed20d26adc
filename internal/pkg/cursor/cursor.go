// Package cursor implements a bounds-checked little-endian reader over an
// immutable byte slice.
//
// The frame and block decoders never reach for encoding/binary directly;
// every read goes through a Cursor so truncation is a single, uniform
// failure mode instead of a manual length check scattered at each call
// site. This generalizes the io.ReadFull-based reads the streaming
// teacher implementation used, since the decoder here is handed the whole
// frame as one buffer rather than an io.Reader.
package cursor

import (
	"encoding/binary"

	"github.com/Dukandar/lz4frame/internal/pkg/zerr"
)

// Cursor walks an immutable byte slice. It never copies the underlying
// array; Bytes returns sub-slices that alias the original buffer.
type Cursor struct {
	buf []byte
	pos int
}

// New constructs a Cursor over 'buf' starting at offset zero.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Done reports whether the cursor has consumed the entire buffer.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.buf)
}

// Require fails with ErrTruncated unless at least 'n' bytes remain.
func (c *Cursor) Require(n int) error {
	if c.Remaining() < n {
		return zerr.ErrTruncated
	}
	return nil
}

// Skip advances the cursor by 'n' bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if err := c.Require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// Bytes returns the next 'n' bytes as a sub-slice of the original buffer
// and advances the cursor past them.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.Require(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// U8 reads one byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32 reads a little-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 reads a little-endian uint64.
func (c *Cursor) U64() (uint64, error) {
	b, err := c.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
