// Package charsets resolves MIME charset names to readers that translate
// the named encoding into UTF-8. It backs the parameter value decoding in
// the param package but can be used on its own.
//
// The built-in resolver covers the common ISO, Windows, DOS and CJK tables
// through golang.org/x/text. Import one of the subpackages for side effects
// to widen coverage:
//
//	import _ "github.com/modfin/mimex/charsets/extended" // WHATWG label set
//	import _ "github.com/modfin/mimex/charsets/iconv"    // GNU iconv
package charsets

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/transform"
)

// Resolver returns a reader translating text in the named charset to UTF-8.
// An unknown charset name must yield an error, not a passthrough reader, so
// that callers can fall back to the undecoded value.
type Resolver func(charset string, input io.Reader) (io.Reader, error)

// Resolve is the active Resolver. Defaults to the built-in x/text tables;
// replaced by the extended and iconv subpackages on import.
var Resolve Resolver = tableReader

// NewReader returns a reader converting input from the named charset to
// UTF-8, using the active Resolve.
func NewReader(charset string, input io.Reader) (io.Reader, error) {
	return Resolve(charset, input)
}

// Decode converts data from the named charset into a UTF-8 string.
func Decode(charset string, data []byte) (string, error) {
	r, err := NewReader(charset, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func tableReader(charset string, input io.Reader) (io.Reader, error) {
	name := strings.ToLower(charset)
	if m, ok := charsetEncodings[name]; ok {
		return transform.NewReader(input, m.NewDecoder()), nil
	}
	if m, ok := charsetEncodings[charsetAliases[name]]; ok {
		return transform.NewReader(input, m.NewDecoder()), nil
	}
	return nil, fmt.Errorf("charsets: unknown charset %q", charset)
}
