package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtendedValues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		key     string
		text    string
		raw     string
		decoded bool
	}{
		{
			name:    "UTF-8 encoded filename",
			input:   `attachment; filename*=UTF-8''%E8%AF%95%E9%AA%8C.pdf`,
			key:     "filename",
			text:    "试验.pdf",
			raw:     "UTF-8''%E8%AF%95%E9%AA%8C.pdf",
			decoded: true,
		},
		{
			name:    "Latin1 encoded filename",
			input:   `attachment; filename*=iso-8859-1''caf%E9.txt`,
			key:     "filename",
			text:    "café.txt",
			raw:     "iso-8859-1''caf%E9.txt",
			decoded: true,
		},
		{
			name:    "Language tag ignored",
			input:   `attachment; filename*=UTF-8'en'hello.txt`,
			key:     "filename",
			text:    "hello.txt",
			raw:     "UTF-8'en'hello.txt",
			decoded: true,
		},
		{
			name:    "Unknown charset keeps raw",
			input:   `attachment; filename*=x-bogus''abc.txt`,
			key:     "filename",
			text:    "x-bogus''abc.txt",
			raw:     "x-bogus''abc.txt",
			decoded: false,
		},
		{
			name:    "Malformed percent escape keeps raw",
			input:   `attachment; filename*=UTF-8''%ZZ.txt`,
			key:     "filename",
			text:    "UTF-8''%ZZ.txt",
			raw:     "UTF-8''%ZZ.txt",
			decoded: false,
		},
		{
			name:    "Truncated percent escape keeps raw",
			input:   `attachment; filename*=UTF-8''abc%E`,
			key:     "filename",
			text:    "UTF-8''abc%E",
			raw:     "UTF-8''abc%E",
			decoded: false,
		},
		{
			name:    "Missing delimiters keeps raw",
			input:   `attachment; filename*=hello.txt`,
			key:     "filename",
			text:    "hello.txt",
			raw:     "hello.txt",
			decoded: false,
		},
	}

	p := &Parser{LowerCaseNames: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input, ';')
			v, ok := got[tt.key]
			require.True(t, ok, "missing parameter %q, got %v", tt.key, got)
			assert.Equal(t, tt.text, v.Text)
			assert.Equal(t, tt.raw, v.Raw)
			assert.Equal(t, tt.decoded, v.Decoded)
			assert.True(t, v.Present)
		})
	}
}

func TestParseEncodedWordValues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		key     string
		text    string
		decoded bool
	}{
		{
			name:    "Q encoded latin1",
			input:   `name==?iso-8859-1?Q?Andr=E9?=`,
			key:     "name",
			text:    "André",
			decoded: true,
		},
		{
			name:    "B encoded utf-8",
			input:   `subject==?utf-8?B?Y2Fmw6k=?=`,
			key:     "subject",
			text:    "café",
			decoded: true,
		},
		{
			name:    "Q encoding underscore is space",
			input:   `subject==?utf-8?Q?hello_world?=`,
			key:     "subject",
			text:    "hello world",
			decoded: true,
		},
		{
			name:    "Plain value untouched",
			input:   `name=plain`,
			key:     "name",
			text:    "plain",
			decoded: false,
		},
		{
			name:    "Not matching the grammar is a no-op",
			input:   `name==?garbage`,
			key:     "name",
			text:    "=?garbage",
			decoded: false,
		},
		{
			name:    "Invalid sub-encoding keeps raw",
			input:   `name==?utf-8?X?abc?=`,
			key:     "name",
			text:    "=?utf-8?X?abc?=",
			decoded: false,
		},
		{
			name:    "Unknown charset keeps raw",
			input:   `name==?x-bogus?Q?abc?=`,
			key:     "name",
			text:    "=?x-bogus?Q?abc?=",
			decoded: false,
		},
	}

	p := &Parser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input, ';')
			v, ok := got[tt.key]
			require.True(t, ok, "missing parameter %q, got %v", tt.key, got)
			assert.Equal(t, tt.text, v.Text)
			assert.Equal(t, tt.decoded, v.Decoded)
			if !tt.decoded {
				assert.Equal(t, v.Raw, v.Text)
			}
		})
	}
}

func TestExtendedMarkerStripped(t *testing.T) {
	p := &Parser{}
	got := p.Parse(`filename*=UTF-8''x.txt`, ';')
	assert.Contains(t, got, "filename")
	assert.NotContains(t, got, "filename*")
}
