/*
Package nsslex tokenizes NWScript-style C-family source text.

A lexing call turns one source buffer into an ordered token sequence, a
compact name buffer holding all identifier and string-literal text, a line
index for diagnostics, and an error list:

	out, err := nsslex.Lex(data)
	if err != nil {
		// err folds out.Errors; tokens lexed before the failure
		// are still present in out.Tokens.
	}
	for _, tok := range out.Tokens {
		if tok.Kind == token.KindIdentifier {
			fmt.Printf("%s\n", out.Text(tok))
		}
	}

Token text does not reference the source buffer: after Lex returns, the
caller may discard or mutate the source while token text remains valid in
the output's name buffer.

For batch use (lexing thousands of files in a tight loop), pass the previous
call's output back in to recycle its storage:

	var out *lexer.Output
	for _, path := range paths {
		data, _ := os.ReadFile(path)
		out, err = nsslex.Lex(data, nsslex.WithOutput(out))
		// ...
	}

The lexer holds no global state; independent calls with independent outputs
may run concurrently.
*/
package nsslex
