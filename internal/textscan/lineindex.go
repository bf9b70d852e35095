package textscan

import (
	"bytes"
)

// LineIndex is a sorted list of newline byte offsets for one content buffer.
// It is built once per file and shared by every offset-to-line lookup, so a
// request with many patterns pays the linear scan exactly once.
type LineIndex []int

// BuildLineIndex records the offset of every '\n' in content in a single pass.
// The result is strictly ascending.
func BuildLineIndex(content []byte) LineIndex {
	if len(content) == 0 {
		return nil
	}

	// Pre-size from the newline count to avoid append growth on large files.
	index := make(LineIndex, 0, bytes.Count(content, []byte{'\n'}))

	offset := 0
	for {
		idx := bytes.IndexByte(content[offset:], '\n')
		if idx < 0 {
			break
		}
		index = append(index, offset+idx)
		offset = offset + idx + 1
	}

	return index
}

// LineFor returns the 1-based line number containing the given byte offset.
// Binary search for the first newline offset strictly greater than offset;
// its rank plus one is the line number. Text before the first newline is
// line 1, text after the last newline is the final line. O(log n).
func (li LineIndex) LineFor(offset int) int {
	lo, hi := 0, len(li)
	for lo < hi {
		mid := (lo + hi) / 2
		if li[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo + 1
}

// LinesFor maps every match offset through the index, preserving order.
// Returns an empty (non-nil) slice for an empty offsets list so serialized
// results stay `[]` rather than `null`.
func (li LineIndex) LinesFor(offsets []int) []int {
	lines := make([]int, 0, len(offsets))
	for _, off := range offsets {
		lines = append(lines, li.LineFor(off))
	}
	return lines
}
