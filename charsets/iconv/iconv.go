//go:build cgo

// Package iconv resolves charsets through GNU iconv, which covers more
// encodings than the built-in tables. Requires cgo and libiconv.
// When importing, place an underscore _ in front to import for side-effects:
//
//	import _ "github.com/modfin/mimex/charsets/iconv"
package iconv

import (
	"io"

	"github.com/modfin/mimex/charsets"

	ico "gopkg.in/iconv.v1"
)

func init() {
	charsets.Resolve = func(charset string, input io.Reader) (io.Reader, error) {
		cd, err := ico.Open("UTF-8", charset)
		if err != nil {
			return nil, err
		}
		return ico.NewReader(cd, input, 0), nil
	}
}
