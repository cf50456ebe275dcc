package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsstools/nsslex/errors"
	"github.com/nsstools/nsslex/lexer"
	"github.com/nsstools/nsslex/token"
)

func TestNumericTrailingContext(t *testing.T) {
	t.Run("punctuator ends a literal", func(t *testing.T) {
		out := lexer.Lex([]byte("1;"))
		require.Empty(t, out.Errors)
		require.Len(t, out.Tokens, 2)
		require.Equal(t, int32(1), out.Tokens[0].Int)
		require.Equal(t, token.Semicolon, out.Tokens[1].Punctuator)
	})

	t.Run("sign binds to the following number", func(t *testing.T) {
		// The longest-match rule makes "+2" a single signed literal, so
		// "1+2" is two int literals, not int plus int.
		out := lexer.Lex([]byte("1+2"))
		require.Empty(t, out.Errors)
		require.Len(t, out.Tokens, 2)
		require.Equal(t, int32(1), out.Tokens[0].Int)
		require.Equal(t, int32(2), out.Tokens[1].Int)
	})

	t.Run("letter after digits is malformed", func(t *testing.T) {
		out := lexer.Lex([]byte("123abc"))
		require.NotEmpty(t, out.Errors)
		require.Equal(t, errors.UnknownToken, out.Errors[0].Code)
	})
}

func TestHexLiterals(t *testing.T) {
	out := lexer.Lex([]byte("0xFF 0Xff 0x0"))
	require.Empty(t, out.Errors)
	require.Len(t, out.Tokens, 3)
	require.Equal(t, int32(255), out.Tokens[0].Int)
	require.Equal(t, int32(255), out.Tokens[1].Int)
	require.Equal(t, int32(0), out.Tokens[2].Int)
}

func TestHexPrefixWithoutDigits(t *testing.T) {
	// The scan accepts "0x" (the leading zero counts as a seen digit) but
	// the parser has nothing to parse, which is the internal-fault path.
	out := lexer.Lex([]byte("0x"))
	require.NotEmpty(t, out.Errors)
	require.Equal(t, errors.Internal, out.Errors[0].Code)
}

func TestFloatMarkersAreLowercase(t *testing.T) {
	for _, input := range []string{"1E5", "1F"} {
		t.Run(input, func(t *testing.T) {
			out := lexer.Lex([]byte(input))
			require.NotEmpty(t, out.Errors)
			require.Equal(t, errors.UnknownToken, out.Errors[0].Code)
		})
	}
}

func TestHexDisablesFloatMarkers(t *testing.T) {
	// 'e' and 'f' are hex digits inside a 0x literal, never float markers.
	out := lexer.Lex([]byte("0xef"))
	require.Empty(t, out.Errors)
	require.Len(t, out.Tokens, 1)
	require.Equal(t, token.LitInt, out.Tokens[0].Literal)
	require.Equal(t, int32(0xef), out.Tokens[0].Int)
}
