package classfile

import (
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// decodeModifiedUTF8 decodes the VM's modified-UTF-8 encoding (JVMS §4.4.7):
// the NUL character is encoded as two bytes (0xC0 0x80) rather than one,
// and supplementary characters are encoded as a surrogate pair, each half
// encoded as its own three-byte sequence -- never as a genuine four-byte
// UTF-8 sequence. A strict UTF-8 decoder rejects both of these, so this
// package never uses one (see spec.md §9 "Modified UTF-8").
//
// Decoded text is passed through Unicode NFC normalization so that
// look-alike class/package names that differ only in normal form do not
// collide or fail to collide unpredictably once used as map keys
// (golang.org/x/text/unicode/norm, per SPEC_FULL.md's DOMAIN STACK table).
func decodeModifiedUTF8(data []byte) (string, error) {
	units := make([]uint16, 0, len(data))

	i := 0
	for i < len(data) {
		b0 := data[i]
		switch {
		case b0&0x80 == 0: // 1-byte form: 0xxxxxxx
			units = append(units, uint16(b0))
			i++

		case b0&0xE0 == 0xC0: // 2-byte form: 110xxxxx 10xxxxxx
			if i+1 >= len(data) {
				return "", newParseError(TruncatedInput, "modified UTF-8: truncated 2-byte sequence at offset %d", i)
			}
			b1 := data[i+1]
			cp := (uint16(b0&0x1F) << 6) | uint16(b1&0x3F)
			units = append(units, cp)
			i += 2

		case b0&0xF0 == 0xE0: // 3-byte form: 1110xxxx 10xxxxxx 10xxxxxx
			if i+2 >= len(data) {
				return "", newParseError(TruncatedInput, "modified UTF-8: truncated 3-byte sequence at offset %d", i)
			}
			b1, b2 := data[i+1], data[i+2]
			cp := (uint16(b0&0x0F) << 12) | (uint16(b1&0x3F) << 6) | uint16(b2&0x3F)
			units = append(units, cp)
			i += 3

		default:
			return "", newParseError(NotUtf8, "modified UTF-8: invalid leading byte 0x%02x at offset %d", b0, i)
		}
	}

	// Supplementary code points arrive as two adjacent 16-bit code units
	// forming a surrogate pair; utf16.Decode recombines them.
	runes := utf16.Decode(units)
	return norm.NFC.String(string(runes)), nil
}
