package lexer

import "sort"

// LineRange maps one source line to its byte range. Line is zero-based.
// End is inclusive and falls on the line's newline (or on len(src) for the
// final line), so consecutive ranges partition [0, len(src)] with no gaps.
type LineRange struct {
	Line  int
	Start int
	End   int
}

// buildLineIndex appends one range per source line to ranges, including the
// trailing (possibly empty) final line, and returns the extended slice.
func buildLineIndex(src []byte, ranges []LineRange) []LineRange {
	line, start := 0, 0
	for i, ch := range src {
		if ch == '\n' {
			ranges = append(ranges, LineRange{Line: line, Start: start, End: i})
			line++
			start = i + 1
		}
	}
	return append(ranges, LineRange{Line: line, Start: start, End: len(src)})
}

// findLine locates the range containing the given byte offset. Offsets past
// the end of the source resolve to the final line.
func findLine(ranges []LineRange, off int) LineRange {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].End >= off })
	if i == len(ranges) {
		i = len(ranges) - 1
	}
	return ranges[i]
}
