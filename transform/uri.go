package transform

import (
	"strings"
	"unicode/utf8"

	"github.com/erraggy/casekit/caseerrors"
)

const upperHex = "0123456789ABCDEF"

// isUnreserved reports whether c is left unescaped by EncodeURI.
func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// EncodeURI percent-encodes s for use as a single URI component.
// Everything except A-Z a-z 0-9 and -_.!~*'() is escaped as UTF-8 bytes
// with uppercase hex digits.
// Example: "a b&c" -> "a%20b%26c"
func EncodeURI(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", &caseerrors.URIError{
			Op:      "encode",
			Input:   s,
			Offset:  invalidOffset(s),
			Message: "invalid UTF-8",
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String(), nil
}

// DecodeURI reverses EncodeURI. Every %XX escape is decoded, '+' is kept
// as is, and the result must be valid UTF-8.
// Example: "caf%C3%A9" -> "café"
func DecodeURI(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			buf = append(buf, c)
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return "", &caseerrors.URIError{
				Op:      "decode",
				Input:   s,
				Offset:  i,
				Message: "malformed escape sequence",
			}
		}
		buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
		i += 2
	}

	if !utf8.Valid(buf) {
		return "", &caseerrors.URIError{
			Op:      "decode",
			Input:   s,
			Offset:  -1,
			Message: "escapes do not form valid UTF-8",
		}
	}
	return string(buf), nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return i
			}
		}
	}
	return -1
}
