// Package extended widens charset resolution to the full WHATWG label set
// using golang.org/x/net/html/charset.
// When importing, place an underscore _ in front to import for side-effects:
//
//	import _ "github.com/modfin/mimex/charsets/extended"
package extended

import (
	"io"

	"github.com/modfin/mimex/charsets"

	cs "golang.org/x/net/html/charset"
)

func init() {
	charsets.Resolve = func(charset string, input io.Reader) (io.Reader, error) {
		return cs.NewReaderLabel(charset, input)
	}
}
