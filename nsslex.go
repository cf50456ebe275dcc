package nsslex

import (
	"fmt"

	"github.com/nsstools/nsslex/lexer"
)

// Lex tokenizes data and returns the completed output. If lexing halted on
// an error, the error list is folded into the returned error and the output
// still carries every token committed before the failure point.
func Lex(data []byte, opts ...Option) (*lexer.Output, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	out := lexer.LexInto(data, o.reuse)
	if len(out.Errors) > 0 {
		if o.filename != "" {
			return out, fmt.Errorf("%s: %w", o.filename, out.Errors)
		}
		return out, out.Errors
	}
	return out, nil
}
