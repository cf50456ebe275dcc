package lexer

import "bytes"

// cursor walks a source buffer by byte offset. The buffer is read-only for
// the duration of a lexing call.
type cursor struct {
	src []byte
	off int
}

// seek advances past whitespace, // line comments, /* */ block comments and
// #-directive lines, and reports whether a significant byte remains. A
// solitary '/' is significant: it is an operator, not a comment opener.
func (c *cursor) seek() bool {
	for c.off < len(c.src) {
		switch ch := c.src[c.off]; {
		case ch == '#':
			// Preprocessor directives are skipped verbatim, never expanded.
			c.skipLine()
		case ch == '/':
			switch c.peek(1) {
			case '/':
				c.skipLine()
			case '*':
				c.skipBlockComment()
			default:
				return true
			}
		case isWhitespace(ch):
			c.off++
		default:
			return true
		}
	}
	return false
}

func (c *cursor) peek(n int) byte {
	if i := c.off + n; i >= 0 && i < len(c.src) {
		return c.src[i]
	}
	return 0
}

// skipLine stops at the newline rather than past it; seek's whitespace
// branch consumes it and no line is ever lost from the index.
func (c *cursor) skipLine() {
	if i := bytes.IndexByte(c.src[c.off:], '\n'); i >= 0 {
		c.off += i
	} else {
		c.off = len(c.src)
	}
}

// skipBlockComment consumes a block comment opened at the current offset.
// The closer may overlap the opener's asterisk ("/*/" is a complete
// comment); an unterminated comment runs to end of input without error.
func (c *cursor) skipBlockComment() {
	if i := bytes.Index(c.src[c.off+1:], []byte("*/")); i >= 0 {
		c.off += 1 + i + 2
	} else {
		c.off = len(c.src)
	}
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isAlpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
