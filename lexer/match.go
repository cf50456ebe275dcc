package lexer

import "github.com/nsstools/nsslex/token"

// span is a byte range relative to the source buffer. Spans never reach a
// Token directly: the compaction pass copies the referenced bytes into the
// name buffer and only then writes a token.Span.
type span struct {
	off int
	len int
}

// match is one recognizer's candidate at a position: the token it would
// produce and how many source bytes it consumes. text is set only for
// identifiers and string literals.
type match struct {
	tok    token.Token
	length int
	text   span
}

// matchKeyword attempts an exact spelling match against the keyword table.
// A keyword that is merely the prefix of a longer identifier still matches
// here; the longest-match rule discards it in favor of the identifier.
func matchKeyword(src []byte, off int, m *match) bool {
	rest := src[off:]
	for _, e := range token.Keywords {
		if !hasPrefix(rest, e.Spelling) {
			continue
		}
		m.length = len(e.Spelling)
		m.tok = token.Token{Kind: token.KindKeyword, Keyword: e.Keyword}
		return true
	}
	return false
}

// matchIdentifier matches a maximal run of letters, digits and underscores
// not starting with a digit.
func matchIdentifier(src []byte, off int, m *match) bool {
	n := 0
	for off+n < len(src) {
		ch := src[off+n]
		if !isAlpha(ch) && ch != '_' && (!isDigit(ch) || n == 0) {
			break
		}
		n++
	}
	if n == 0 {
		return false
	}
	m.length = n
	m.tok = token.Token{Kind: token.KindIdentifier}
	m.text = span{off: off, len: n}
	return true
}

// matchPunctuator selects the longest table spelling that prefixes the
// input. Punctuators share prefixes ("+=" matches "+" and "+=", ">>="
// matches three entries), so every entry is considered.
func matchPunctuator(src []byte, off int, m *match) bool {
	rest := src[off:]
	best := -1
	for i, e := range token.Punctuators {
		if best >= 0 && len(e.Spelling) <= len(token.Punctuators[best].Spelling) {
			continue
		}
		if hasPrefix(rest, e.Spelling) {
			best = i
		}
	}
	if best < 0 {
		return false
	}
	e := token.Punctuators[best]
	m.length = len(e.Spelling)
	m.tok = token.Token{Kind: token.KindPunctuator, Punctuator: e.Punctuator}
	return true
}

// startsPunctuator reports whether any punctuator spelling begins at off.
// The numeric scanner uses it to validate the byte that ended a literal.
func startsPunctuator(src []byte, off int) bool {
	var m match
	return matchPunctuator(src, off, &m)
}

func hasPrefix(b []byte, s string) bool {
	return len(b) >= len(s) && string(b[:len(s)]) == s
}
