// Package qp decodes the quoted-printable content-transfer-encoding of
// RFC 2045, as used by MIME parts that declare
// Content-Transfer-Encoding: quoted-printable.
//
// The decoder is strict about escape sequences: a truncated escape, a
// non-hex escape digit or a bare CR inside an escape all fail the whole
// decode. Bytes outside an escape are copied through untouched, so input is
// not validated against the 7 bit MIME alphabet.
package qp

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncatedEscape is returned when input ends before the two bytes
	// that must follow an '='.
	ErrTruncatedEscape = errors.New("truncated escape sequence")

	// ErrInvalidEscape is returned when a byte following an '=' is not a
	// valid hexadecimal digit.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrMissingLF is returned when a CR inside an escape is not followed
	// by an LF.
	ErrMissingLF = errors.New("CR must be followed by LF")
)

// Decode decodes data and writes the result to w. Nothing is written to w
// when the decode fails, so a failing call leaves the sink untouched.
// Returns the number of decoded bytes written.
func Decode(data []byte, w io.Writer) (int, error) {
	out, err := decode(data)
	if err != nil {
		return 0, err
	}
	return w.Write(out)
}

// DecodeString decodes s and returns the decoded bytes.
func DecodeString(s string) ([]byte, error) {
	return decode([]byte(s))
}

func decode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != '=' {
			out = append(out, b)
			continue
		}
		// '=' starts a two byte escape, either =CRLF (soft line break)
		// or =XX (one encoded byte)
		if len(data)-i < 3 {
			return nil, fmt.Errorf("quoted-printable: %w at offset %d", ErrTruncatedEscape, i)
		}
		b1, b2 := data[i+1], data[i+2]
		i += 2
		if b1 == '\r' {
			if b2 != '\n' {
				return nil, fmt.Errorf("quoted-printable: %w at offset %d", ErrMissingLF, i)
			}
			// soft line break, removed from the output
			continue
		}
		hi, ok := unhex(b1)
		if !ok {
			return nil, fmt.Errorf("quoted-printable: %w: %q at offset %d", ErrInvalidEscape, b1, i-1)
		}
		lo, ok := unhex(b2)
		if !ok {
			return nil, fmt.Errorf("quoted-printable: %w: %q at offset %d", ErrInvalidEscape, b2, i)
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
