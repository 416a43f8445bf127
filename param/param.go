// Package param parses sequences of name/value pairs as found in MIME-style
// headers such as Content-Type and Content-Disposition.
//
// Parameter values are expected to be enclosed in quotes if they contain
// unsafe characters, such as '=' characters or separators. Values are
// optional and can be omitted:
//
//	param1 = value; param2 = "anything goes; really"; param3
//
// Values in the RFC 2231 extended form (filename*=UTF-8''na%C3%AFve.txt) or
// containing RFC 2047 encoded-words (=?iso-8859-1?Q?Andr=E9?=) are decoded
// to UTF-8. A value that cannot be decoded is kept as written; parsing never
// fails.
package param

import "strings"

// Value is the right-hand side of a parsed parameter.
type Value struct {
	// Raw is the value token as written, quotes stripped, before any
	// decoding.
	Raw string

	// Text is the decoded value. Equal to Raw when nothing was decoded.
	Text string

	// Decoded reports whether Text was produced by an RFC 2231 or
	// RFC 2047 decode, rather than taken verbatim from the input.
	Decoded bool

	// Present is false when the parameter carried no value, i.e. a bare
	// name without '=' or with an empty value token.
	Present bool
}

// Parser parses sequences of name/value pairs. Names are expected to be
// unique; a repeated name overwrites the earlier pair.
//
// The zero value preserves parameter-name case. A Parser carries no per-call
// state and is safe for concurrent use.
type Parser struct {
	// LowerCaseNames folds parameter names to lower case before they are
	// stored in the result map.
	LowerCaseNames bool
}

// Parse splits s into name/value pairs on separator and returns them as a
// map. An empty s yields an empty map, never an error.
func (p *Parser) Parse(s string, separator byte) map[string]Value {
	return p.ParseRange(s, 0, len(s), separator)
}

// ParseAny parses s using whichever of separators occurs earliest in the
// input, ties broken by slice order. If none occurs the first candidate is
// used and the whole input is a single token. An empty separator list yields
// an empty map.
func (p *Parser) ParseAny(s string, separators []byte) map[string]Value {
	if len(separators) == 0 {
		return map[string]Value{}
	}
	sep := separators[0]
	at := len(s)
	for _, c := range separators {
		if i := strings.IndexByte(s, c); i != -1 && i < at {
			at = i
			sep = c
		}
	}
	return p.Parse(s, sep)
}

// ParseRange parses the subrange [offset, length) of s. Bounds outside s are
// clamped.
func (p *Parser) ParseRange(s string, offset, length int, separator byte) map[string]Value {
	if offset < 0 {
		offset = 0
	}
	if length > len(s) {
		length = len(s)
	}
	params := make(map[string]Value)
	sc := scanner{src: s, pos: offset, end: length}
	for sc.more() {
		// the name scan is not quote aware, a '=' always starts the
		// value section
		name := sc.scanToken('=', separator)
		var value Value
		if sc.more() && sc.peek() == '=' {
			sc.skip()
			value = decodeValue(name, sc.scanQuoted(separator))
		}
		if sc.more() && sc.peek() == separator {
			sc.skip()
		}
		if name == "" {
			continue
		}
		name = strings.TrimSuffix(name, extendedMarker)
		if p.LowerCaseNames {
			name = strings.ToLower(name)
		}
		params[name] = value
	}
	return params
}
