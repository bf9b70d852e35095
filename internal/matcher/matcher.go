// Package matcher implements the two pattern-matching strategies of the scan
// core: literal byte-wise substring search with optional ASCII case folding
// and whole-word filtering, and regex search via Go's regexp package.
//
// All functions are pure: they depend only on their inputs and touch no
// shared state, so concurrent scans on different files never interfere.
package matcher

import (
	"bytes"
	"regexp"
)

// IsWordChar reports whether b is an alphanumeric or underscore byte.
func IsWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '_'
}

// asciiLower returns a copy of src with ASCII uppercase letters folded to
// lowercase. Non-ASCII bytes are left untouched: the case-insensitive mode
// is deliberately byte-level, not Unicode-aware, so folding never changes
// the buffer length and match offsets stay valid in the original content.
func asciiLower(src []byte) []byte {
	dst := make([]byte, len(src))
	for i, b := range src {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		dst[i] = b
	}
	return dst
}

// FindLiteral returns the start offsets of every occurrence of pattern in
// content, ascending. The search resumes one byte past each match start, so
// matches at shifted offsets may overlap but no start offset repeats. With
// caseSensitive false both sides are compared after ASCII folding. With
// wholeWord true a match is kept only when the bytes adjacent to it (if any)
// are not word characters; buffer boundaries always count as non-word.
func FindLiteral(content, pattern []byte, caseSensitive, wholeWord bool) []int {
	if len(pattern) == 0 || len(content) == 0 {
		return nil
	}

	haystack := content
	needle := pattern
	if !caseSensitive {
		haystack = asciiLower(content)
		needle = asciiLower(pattern)
	}

	var positions []int
	offset := 0
	for offset < len(haystack) {
		idx := bytes.Index(haystack[offset:], needle)
		if idx < 0 {
			break
		}

		start := offset + idx
		end := start + len(pattern)

		// Word boundaries are checked against the original content; ASCII
		// folding preserves word-char classification either way.
		ok := true
		if wholeWord {
			if start > 0 && IsWordChar(content[start-1]) {
				ok = false
			}
			if end < len(content) && IsWordChar(content[end]) {
				ok = false
			}
		}
		if ok {
			positions = append(positions, start)
		}

		offset = start + 1
	}

	return positions
}

// FindRegex compiles pattern and returns the start offsets of every
// non-empty match in content, ascending. A compile failure is returned to
// the caller so it can be contained per pattern; it is never fatal for the
// file. With caseSensitive false the pattern is compiled with the (?i) flag.
//
// Zero-width matches are dropped from the result: regexp already advances
// past them internally, so termination is guaranteed, and an empty match
// carries no useful position for the caller.
func FindRegex(content []byte, pattern string, caseSensitive bool) ([]int, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	var positions []int
	for _, m := range re.FindAllIndex(content, -1) {
		if m[1] == m[0] {
			continue
		}
		positions = append(positions, m[0])
	}

	return positions, nil
}
