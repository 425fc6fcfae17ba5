package classfile

import "encoding/binary"

// cursor is a bounds-checked big-endian byte reader shared by the
// constant-pool reader and the attribute/element-value readers. Every
// read that would run past the end of data fails with TruncatedInput,
// matching spec §4.B's requirement that truncated input be a distinct,
// recoverable ParseError kind.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) u8() (byte, error) {
	if c.remaining() < 1 {
		return 0, newParseError(TruncatedInput, "expected 1 byte at offset %d, have %d remaining", c.pos, c.remaining())
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// u16 reads an unsigned big-endian 16-bit value. Per spec.md's §9 design
// note, this uses correct unsigned byte extension (binary.BigEndian),
// not the sign-extension-masking bug the note describes -- see
// DESIGN.md, Open Questions #2.
func (c *cursor) u16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, newParseError(TruncatedInput, "expected 2 bytes at offset %d, have %d remaining", c.pos, c.remaining())
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, newParseError(TruncatedInput, "expected 4 bytes at offset %d, have %d remaining", c.pos, c.remaining())
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) skip(n int) error {
	if c.remaining() < n {
		return newParseError(TruncatedInput, "expected %d bytes at offset %d, have %d remaining", n, c.pos, c.remaining())
	}
	c.pos += n
	return nil
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, newParseError(TruncatedInput, "expected %d bytes at offset %d, have %d remaining", n, c.pos, c.remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
