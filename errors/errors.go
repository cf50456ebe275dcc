// Package errors defines the structured diagnostics produced by the lexer.
// The lexer only appends values of these types; presentation is entirely up
// to the caller.
package errors

import (
	"fmt"
	"strings"
)

// Code classifies a lexer error.
type Code int

const (
	// UnknownToken is raised when no recognizer matches at a significant
	// position. It is fatal to the lexing call that raised it.
	UnknownToken Code = iota

	// Internal marks a programming-contract violation inside the lexer,
	// such as the numeric scanner and the numeric parser disagreeing on a
	// literal's length. It never indicates a problem with the source text.
	Internal
)

func (c Code) String() string {
	switch c {
	case UnknownToken:
		return "unknown token"
	case Internal:
		return "internal fault"
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error is a single structured lexer error: a code plus an ordered list of
// context strings (label, source excerpt, ...).
type Error struct {
	Code     Code
	Messages []string
}

// New returns an Error with the given code and context strings.
func New(code Code, messages ...string) Error {
	return Error{Code: code, Messages: messages}
}

func (e Error) Error() string {
	if len(e.Messages) == 0 {
		return e.Code.String()
	}
	return e.Code.String() + ": " + strings.Join(e.Messages, ": ")
}

// Errors is a list of lexer errors that itself implements the error
// interface. The lexer halts on the first fatal error, so in practice the
// list holds at most one entry per call, but the container permits many.
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	// The default message for the collection just reports the first error.
	return es[0].Error()
}
