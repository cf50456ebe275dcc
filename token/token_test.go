package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordTableOrder(t *testing.T) {
	for i, e := range Keywords {
		require.Equal(t, Keyword(i), e.Keyword, "keyword table entry %q out of order", e.Spelling)
	}
}

func TestPunctuatorTableOrder(t *testing.T) {
	for i, e := range Punctuators {
		require.Equal(t, Punctuator(i), e.Punctuator, "punctuator table entry %q out of order", e.Spelling)
	}
}

func TestPunctuatorSpellingLengths(t *testing.T) {
	for _, e := range Punctuators {
		require.GreaterOrEqual(t, len(e.Spelling), 1)
		require.LessOrEqual(t, len(e.Spelling), 3)
	}
}

func TestStringers(t *testing.T) {
	require.Equal(t, "int", KwInt.String())
	require.Equal(t, "itemproperty", KwItemProperty.String())
	require.Equal(t, ">>=", GreaterGreaterEquals.String())
	require.Equal(t, "...", DotDotDot.String())
	require.Equal(t, "keyword", KindKeyword.String())
	require.Equal(t, "punctuator", KindPunctuator.String())
	require.Equal(t, "float", LitFloat.String())
}
