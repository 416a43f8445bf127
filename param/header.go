package param

// Convenience lookups for the parameters a multipart reader needs from
// Content-Type and Content-Disposition. All of them parse with lower-cased
// names since header producers vary the case freely.

// Boundary returns the boundary parameter of a multipart Content-Type
// header, or "" when there is none. Both ';' and ',' are accepted as
// parameter separators; some agents use commas.
func Boundary(contentType string) string {
	p := Parser{LowerCaseNames: true}
	return p.ParseAny(contentType, []byte{';', ','})["boundary"].Text
}

// Filename returns the filename parameter of a Content-Disposition header,
// decoded if it used the RFC 2231 or RFC 2047 form. The second return is
// false when no filename parameter was present at all.
func Filename(contentDisposition string) (string, bool) {
	p := Parser{LowerCaseNames: true}
	v, ok := p.Parse(contentDisposition, ';')["filename"]
	return v.Text, ok
}

// FieldName returns the name parameter of a form-data Content-Disposition
// header. The second return is false when no name parameter was present.
func FieldName(contentDisposition string) (string, bool) {
	p := Parser{LowerCaseNames: true}
	v, ok := p.Parse(contentDisposition, ';')["name"]
	return v.Text, ok
}
