package lexer

import (
	"fmt"
	"strconv"

	"github.com/nsstools/nsslex/token"
)

// matchLiteral attempts to match a string or numeric literal. A non-nil
// error is an internal consistency fault (the scanner and strconv disagreed
// about a number), never a problem with the source text; the driver reports
// it distinctly and halts.
func matchLiteral(src []byte, off int, m *match) (bool, error) {
	switch ch := src[off]; {
	case ch == '"':
		return matchString(src, off, m), nil
	case isDigit(ch) || ch == '.' || ch == '+' || ch == '-':
		return matchNumber(src, off, m)
	}
	return false, nil
}

// matchString scans for the closing unescaped quote. A backslash
// immediately before a quote escapes it; escape sequences are preserved
// verbatim, not decoded. A raw newline before the closing quote, or end of
// input, invalidates the literal (no match).
func matchString(src []byte, off int, m *match) bool {
	i := off + 1
	for i < len(src) {
		ch := src[i]
		if ch == '\n' {
			return false
		}
		if ch == '"' {
			if src[i-1] == '\\' {
				i++
				continue
			}
			m.length = i - off + 1
			m.tok = token.Token{Kind: token.KindLiteral, Literal: token.LitString}
			m.text = span{off: off + 1, len: m.length - 2}
			return true
		}
		i++
	}
	return false
}

// matchNumber scans a numeric literal: decimal ints and floats (decimal
// point, 'e' exponent, trailing 'f' suffix) or hex ints (0x/0X prefix,
// which disables the float markers). A leading '.', '+' or '-' may be an
// operator false positive; the match fails if no digit is ever seen and the
// punctuator recognizer picks the position up instead.
func matchNumber(src []byte, off int, m *match) (bool, error) {
	first := src[off]
	isHex := first == '0' && off+1 < len(src) && (src[off+1] == 'x' || src[off+1] == 'X')

	seenDigit := isDigit(first)
	seenDecimal := first == '.'
	seenExponent := false
	seenSuffix := false

	d := 1
	if isHex {
		d = 2
	}
scan:
	for ; off+d < len(src); d++ {
		switch ch := src[off+d]; {
		case !isHex && !seenDecimal && ch == '.':
			seenDecimal = true
		case !isHex && !seenExponent && ch == 'e':
			seenExponent = true
		case !isHex && !seenSuffix && ch == 'f':
			seenSuffix = true
		case isDigit(ch) || (isHex && isHexDigit(ch)):
			seenDigit = true
		default:
			// The byte that stopped the scan must begin a punctuator or be
			// whitespace; anything else makes the whole token malformed
			// ("0c" is not an int followed by an identifier).
			if !startsPunctuator(src, off+d) && !isWhitespace(ch) {
				return false, nil
			}
			break scan
		}
	}

	// No digit at all: an operator false positive ('.', '+', '-').
	if !seenDigit {
		return false, nil
	}

	m.length = d
	lit := string(src[off : off+d])

	if seenDecimal || seenExponent || seenSuffix {
		if seenSuffix && lit[len(lit)-1] == 'f' {
			lit = lit[:len(lit)-1]
		}
		parsed, err := strconv.ParseFloat(lit, 64)
		if err != nil && !isRangeErr(err) {
			return false, fmt.Errorf("numeric scan took %d bytes but %q does not parse as float: %w", d, lit, err)
		}
		m.tok = token.Token{Kind: token.KindLiteral, Literal: token.LitFloat, Float: float32(parsed)}
		return true, nil
	}

	base := 10
	if isHex {
		base = 16
		lit = lit[2:]
	}
	parsed, err := strconv.ParseInt(lit, base, 32)
	if err != nil && !isRangeErr(err) {
		return false, fmt.Errorf("numeric scan took %d bytes but %q does not parse as base-%d int: %w", d, lit, base, err)
	}
	m.tok = token.Token{Kind: token.KindLiteral, Literal: token.LitInt, Int: int32(parsed)}
	return true, nil
}

// isRangeErr reports whether err is only an out-of-range condition, in
// which case strconv has already clamped the value and the literal is still
// well formed.
func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
