package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLineIndex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []LineRange
	}{
		{"empty", "", []LineRange{{0, 0, 0}}},
		{"no trailing newline", "ab", []LineRange{{0, 0, 2}}},
		{"trailing newline", "ab\n", []LineRange{{0, 0, 2}, {1, 3, 3}}},
		{"blank lines", "\n\n", []LineRange{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}},
		{"two lines", "a\nbc", []LineRange{{0, 0, 1}, {1, 2, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLineIndex([]byte(tt.input), nil)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFindLine(t *testing.T) {
	ranges := buildLineIndex([]byte("a\nbc\n"), nil)

	require.Equal(t, 0, findLine(ranges, 0).Line)
	require.Equal(t, 0, findLine(ranges, 1).Line) // the newline belongs to its line
	require.Equal(t, 1, findLine(ranges, 2).Line)
	require.Equal(t, 1, findLine(ranges, 4).Line)
	require.Equal(t, 2, findLine(ranges, 5).Line)
	require.Equal(t, 2, findLine(ranges, 99).Line, "offsets past the end map to the final line")
}

func TestCursorSeek(t *testing.T) {
	tests := []struct {
		name  string
		input string
		stops bool
		at    int
	}{
		{"empty", "", false, 0},
		{"whitespace only", " \t\v\f\r\n", false, 0},
		{"line comment", "// x", false, 0},
		{"block comment", "/* x */", false, 0},
		{"overlapping closer", "/*/", false, 0},
		{"unterminated block", "/* x", false, 0},
		{"directive", "#include <x>", false, 0},
		{"solitary slash", "/ x", true, 0},
		{"token after comment", "/* x */ y", true, 8},
		{"token after directive", "#define A\nz", true, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursor{src: []byte(tt.input)}
			require.Equal(t, tt.stops, c.seek())
			if tt.stops {
				require.Equal(t, tt.at, c.off)
			}
		})
	}
}
