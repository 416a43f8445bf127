package param

import (
	"io"
	"mime"
	"strings"

	"github.com/modfin/mimex/charsets"
)

// extendedMarker suffixes parameter names whose values use the RFC 2231
// charset'language'percent-encoding form. The marker is stripped from the
// name before it is stored.
const extendedMarker = "*"

// Dec decodes RFC 2047 encoded-words found in parameter values. It is
// exposed public so that an alternative decoder can be set. By default
// charsets are resolved through the charsets package; import
// charsets/extended or charsets/iconv to widen the set of recognized
// charsets.
var Dec = mime.WordDecoder{
	CharsetReader: func(charset string, input io.Reader) (io.Reader, error) {
		return charsets.NewReader(charset, input)
	},
}

// decodeValue interprets the raw value token scanned for name. The name
// decides the rule: a trailing '*' selects the RFC 2231 extended form,
// anything else is tried as RFC 2047 encoded-words. A failing decode keeps
// the raw token; the rules are never cross-retried.
func decodeValue(name, raw string) Value {
	if raw == "" {
		return Value{}
	}
	v := Value{Raw: raw, Text: raw, Present: true}
	if strings.HasSuffix(name, extendedMarker) {
		text, err := decodeExtended(raw)
		if err != nil {
			logger.Debug("keeping raw parameter value", "name", name, "err", err)
			return v
		}
		v.Text, v.Decoded = text, true
		return v
	}
	if !strings.Contains(raw, "=?") {
		return v
	}
	text, err := Dec.DecodeHeader(raw)
	if err != nil {
		logger.Debug("keeping raw parameter value", "name", name, "err", err)
		return v
	}
	if text == raw {
		// nothing matched the encoded-word grammar
		return v
	}
	v.Text, v.Decoded = text, true
	return v
}
