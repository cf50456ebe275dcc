// Package lexer converts raw source text into classified tokens with
// line/column provenance and a compacted name buffer.
//
// At every significant position four recognizers compete (keyword,
// identifier, literal, punctuator); the longest match wins, with ties broken
// in that fixed order. The first position no recognizer matches halts the
// call with an UnknownToken error; tokens lexed before the failure remain
// valid.
package lexer

import (
	"github.com/nsstools/nsslex/errors"
	"github.com/nsstools/nsslex/token"
)

// errorPreviewLen bounds the source-line excerpt carried by an
// UnknownToken error.
const errorPreviewLen = 127

// Output owns everything one lexing call produces: the token sequence in
// source order, the name buffer holding all identifier and string-literal
// text, the error list, and the line index.
//
// An Output must not be shared between concurrent lexing calls, but reusing
// one across sequential calls (lexing every file in a tree back to back)
// amortizes allocations: LexInto clears it in place instead of reallocating.
type Output struct {
	Tokens []token.Token
	Names  []byte
	Errors errors.Errors
	Lines  []LineRange

	// pending records, per textual token, which source bytes the compaction
	// pass must copy into Names. A merged string literal owns several
	// consecutive entries.
	pending []pendingName
}

type pendingName struct {
	tok int // index into Tokens
	src span
}

// Reset clears the output in place, keeping backing storage for reuse.
func (o *Output) Reset() {
	o.Tokens = o.Tokens[:0]
	o.Names = o.Names[:0]
	o.Errors = o.Errors[:0]
	o.Lines = o.Lines[:0]
	o.pending = o.pending[:0]
}

// Text returns the name-buffer bytes referenced by an identifier or
// string-literal token. The slice aliases the name buffer and stays valid
// until the Output is reset or reused.
func (o *Output) Text(t token.Token) []byte {
	return o.Names[t.Text.Offset : t.Text.Offset+t.Text.Len]
}

// LineFor returns the line range containing the given source byte offset.
func (o *Output) LineFor(offset int) LineRange {
	return findLine(o.Lines, offset)
}

// Lex tokenizes src into a fresh Output.
func Lex(src []byte) *Output {
	return LexInto(src, nil)
}

// LexInto tokenizes src, recycling out's storage when out is non-nil. The
// source buffer is only read during the call; after it returns, all token
// text lives in the name buffer and src may be discarded or mutated.
func LexInto(src []byte, out *Output) *Output {
	if out == nil {
		out = &Output{}
	}
	out.Reset()
	out.Lines = buildLineIndex(src, out.Lines)

	cur := cursor{src: src}
	for cur.seek() {
		var matches [4]match
		n := 0

		// Gather candidates in tie-break priority order.
		if matchKeyword(src, cur.off, &matches[n]) {
			n++
		}
		if matchIdentifier(src, cur.off, &matches[n]) {
			n++
		}
		ok, fault := matchLiteral(src, cur.off, &matches[n])
		if fault != nil {
			out.Errors = append(out.Errors, errors.New(errors.Internal, fault.Error()))
			break
		}
		if ok {
			n++
		}
		if matchPunctuator(src, cur.off, &matches[n]) {
			n++
		}

		rng := findLine(out.Lines, cur.off)

		if n == 0 {
			out.Errors = append(out.Errors, errors.New(errors.UnknownToken,
				"Unknown Token", linePreview(src, rng)))
			break
		}

		// Longest match wins; on equal length the earlier (higher priority)
		// recognizer keeps the token, which is what classifies "int" as a
		// keyword rather than an identifier.
		sel := &matches[0]
		for i := 1; i < n; i++ {
			if matches[i].length > sel.length {
				sel = &matches[i]
			}
		}

		sel.tok.Debug = token.DebugData{
			Line:        rng.Line,
			ColumnStart: cur.off - rng.Start,
			ColumnEnd:   cur.off + sel.length - rng.Start,
		}

		out.commit(sel)
		cur.off += sel.length
	}

	out.compact(src)
	return out
}

// commit appends the selected match to the token stream. Adjacent string
// literals concatenate: a string literal committed directly after another
// string literal extends the previous token instead of starting a new one,
// so `"a" "b"` yields one literal whose text is "ab".
func (o *Output) commit(m *match) {
	if m.tok.IsStringLiteral() && len(o.Tokens) > 0 {
		if prev := &o.Tokens[len(o.Tokens)-1]; prev.IsStringLiteral() {
			if prev.Debug.Line == m.tok.Debug.Line {
				prev.Debug.ColumnEnd = m.tok.Debug.ColumnEnd
			}
			o.pending = append(o.pending, pendingName{tok: len(o.Tokens) - 1, src: m.text})
			return
		}
	}

	o.Tokens = append(o.Tokens, m.tok)
	if m.tok.Kind == token.KindIdentifier || m.tok.IsStringLiteral() {
		o.pending = append(o.pending, pendingName{tok: len(o.Tokens) - 1, src: m.text})
	}
}

// compact copies every pending source range into the name buffer and
// rewrites the owning token's span to point there. Entries of a merged
// string literal are consecutive, so extending the span's length is enough.
func (o *Output) compact(src []byte) {
	last := -1
	for _, p := range o.pending {
		at := uint32(len(o.Names))
		o.Names = append(o.Names, src[p.src.off:p.src.off+p.src.len]...)
		t := &o.Tokens[p.tok]
		if p.tok == last {
			t.Text.Len += uint32(p.src.len)
		} else {
			t.Text = token.Span{Offset: at, Len: uint32(p.src.len)}
		}
		last = p.tok
	}
	o.pending = o.pending[:0]
}

// linePreview extracts the text of one source line, truncated for display.
// The range's End falls on the newline, so the excerpt never includes it.
func linePreview(src []byte, rng LineRange) string {
	n := rng.End - rng.Start
	if n > errorPreviewLen {
		n = errorPreviewLen
	}
	return string(src[rng.Start : rng.Start+n])
}
