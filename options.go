package nsslex

import "github.com/nsstools/nsslex/lexer"

type options struct {
	reuse    *lexer.Output
	filename string
}

// Option configures a single lexing call.
type Option func(*options) error

// WithOutput recycles a previous call's output storage instead of
// allocating fresh slices, which amortizes allocation cost when lexing many
// files back to back. A nil previous output is allowed and means there is
// nothing to recycle yet, so the first loop iteration needs no special case.
//
// The recycled output is exclusively owned by the new call; it must not be
// passed to two calls running concurrently.
func WithOutput(prev *lexer.Output) Option {
	return func(o *options) error {
		o.reuse = prev
		return nil
	}
}

// WithFilename attaches a path to the diagnostics of this call. The lexer
// performs no I/O; the name is display-only context prefixed to the
// returned error.
func WithFilename(name string) Option {
	return func(o *options) error {
		o.filename = name
		return nil
	}
}
