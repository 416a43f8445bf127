package param

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modfin/mimex/charsets"
)

// decodeExtended decodes an RFC 2231 extended parameter value of the form
// charset'language'percent-encoded-bytes. The language tag is ignored.
func decodeExtended(s string) (string, error) {
	charset, rest, ok := strings.Cut(s, "'")
	if !ok {
		return "", errors.New("rfc2231: missing charset delimiter")
	}
	_, encoded, ok := strings.Cut(rest, "'")
	if !ok {
		return "", errors.New("rfc2231: missing language delimiter")
	}
	raw, err := pctDecode(encoded)
	if err != nil {
		return "", err
	}
	return charsets.Decode(charset, raw)
}

// pctDecode resolves %XX triplets to single bytes and copies every other
// character through unchanged.
func pctDecode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			out = append(out, c)
			continue
		}
		if len(s)-i < 3 {
			return nil, errors.New("rfc2231: truncated percent escape")
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("rfc2231: invalid percent escape %q", s[i:i+3])
		}
		out = append(out, hi<<4|lo)
		i += 2
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
