package classfile

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// utf16BE converts between UTF-8 and big-endian UTF-16 code units. Modified
// UTF-8 is defined over those units, so both directions go through it.
var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// encodeModifiedUTF8 encodes s the way class files store strings: every
// UTF-16 code unit is written as standard UTF-8 would write that value,
// except U+0000, which takes the two-byte form C0 80. Supplementary
// characters therefore become two three-byte surrogate sequences. Invalid
// UTF-8 in s is replaced by U+FFFD.
func encodeModifiedUTF8(s string) ([]byte, error) {
	if isPlainASCII(s) {
		return []byte(s), nil
	}

	units, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %q as UTF-16: %w", s, err)
	}

	out := make([]byte, 0, len(units)/2*3)

	for i := 0; i+1 < len(units); i += 2 {
		u := uint16(units[i])<<8 | uint16(units[i+1])

		switch {
		case u != 0 && u < 0x80:
			out = append(out, byte(u))
		case u < 0x800:
			out = append(out, 0xC0|byte(u>>6), 0x80|byte(u&0x3F))
		default:
			out = append(out, 0xE0|byte(u>>12), 0x80|byte(u>>6&0x3F), 0x80|byte(u&0x3F))
		}
	}

	return out, nil
}

// decodeModifiedUTF8 reverses encodeModifiedUTF8. Unpaired surrogates decode
// to U+FFFD.
func decodeModifiedUTF8(b []byte) (string, error) {
	if isPlainASCII(string(b)) {
		return string(b), nil
	}

	units := make([]byte, 0, len(b)*2)

	for i := 0; i < len(b); {
		c := b[i]

		var u uint16

		switch {
		case c != 0 && c < 0x80:
			u = uint16(c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("truncated two-byte sequence at %d", i)
			}

			u = uint16(c&0x1F)<<6 | uint16(b[i+1]&0x3F)
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", fmt.Errorf("truncated three-byte sequence at %d", i)
			}

			u = uint16(c&0x0F)<<12 | uint16(b[i+1]&0x3F)<<6 | uint16(b[i+2]&0x3F)
			i += 3
		default:
			return "", fmt.Errorf("invalid byte %#02x at %d", c, i)
		}

		units = append(units, byte(u>>8), byte(u))
	}

	s, err := utf16BE.NewDecoder().Bytes(units)
	if err != nil {
		return "", fmt.Errorf("decode UTF-16: %w", err)
	}

	return string(s), nil
}

// isPlainASCII reports whether s holds only bytes 0x01 to 0x7F, the range
// where modified UTF-8 and UTF-8 are the identity.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] >= 0x80 {
			return false
		}
	}

	return true
}
