package param

// scanner is the cursor over a parameter string. One scanner value is local
// to a single parse call, so token bounds and the read position never leak
// between calls.
type scanner struct {
	src         string
	pos, end    int // next unread index and exclusive upper bound
	start, stop int // bounds of the token being extracted
}

// Quote and escape tracking for scanQuoted. A backslash escapes exactly the
// one character that follows it; escape status never carries further.
const (
	statePlain = iota
	statePlainEscape
	stateQuoted
	stateQuotedEscape
)

func (s *scanner) more() bool { return s.pos < s.end }

func (s *scanner) peek() byte { return s.src[s.pos] }

func (s *scanner) skip() { s.pos++ }

// scanToken reads until one of the terminators is seen, with no quote
// awareness.
func (s *scanner) scanToken(terminators ...byte) string {
	s.start, s.stop = s.pos, s.pos
	for s.more() && !isOneOf(s.peek(), terminators) {
		s.stop++
		s.pos++
	}
	return s.token(false)
}

// scanQuoted reads until one of the terminators is seen outside quotation
// marks. An unterminated quote runs to the end of the input.
func (s *scanner) scanQuoted(terminators ...byte) string {
	s.start, s.stop = s.pos, s.pos
	state := statePlain
	for s.more() {
		c := s.peek()
		switch state {
		case statePlain:
			if isOneOf(c, terminators) {
				return s.token(true)
			}
			switch c {
			case '"':
				state = stateQuoted
			case '\\':
				state = statePlainEscape
			}
		case statePlainEscape:
			// an escaped quote does not open a quoted section, but
			// a terminator still ends the token
			if isOneOf(c, terminators) {
				return s.token(true)
			}
			state = statePlain
		case stateQuoted:
			switch c {
			case '"':
				state = statePlain
			case '\\':
				state = stateQuotedEscape
			}
		case stateQuotedEscape:
			state = stateQuoted
		}
		s.stop++
		s.pos++
	}
	return s.token(true)
}

// token trims surrounding whitespace from the current span and, for quoted
// tokens, strips one surrounding quote pair when at least two characters
// remain.
func (s *scanner) token(quoted bool) string {
	for s.start < s.stop && isSpace(s.src[s.start]) {
		s.start++
	}
	for s.stop > s.start && isSpace(s.src[s.stop-1]) {
		s.stop--
	}
	if quoted && s.stop-s.start >= 2 && s.src[s.start] == '"' && s.src[s.stop-1] == '"' {
		s.start++
		s.stop--
	}
	return s.src[s.start:s.stop]
}

func isOneOf(c byte, set []byte) bool {
	for _, t := range set {
		if c == t {
			return true
		}
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
