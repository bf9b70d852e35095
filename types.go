package searchex

import "sort"

// Request describes one scan invocation: a single file and the patterns to
// locate in it. Requests are plain values; the zero value of every option
// field is the default the original host used.
type Request struct {
	// Path is the file to scan.
	Path string
	// Patterns are matched independently, in order. Duplicates are allowed;
	// Result.Hits correlates by position.
	Patterns []string
	// CaseSensitive disables ASCII case folding (literal mode) or the (?i)
	// flag (regex mode).
	CaseSensitive bool
	// UseRegex switches from literal substring matching to regex matching.
	UseRegex bool
	// WholeWord keeps only matches not adjacent to an alphanumeric or
	// underscore byte. Ignored when UseRegex is set.
	WholeWord bool
	// MaxBytes skips files larger than this many bytes. 0 means unlimited.
	MaxBytes int64
}

// PatternResult holds all matches of one pattern in one file.
type PatternResult struct {
	// Pattern is the original request pattern.
	Pattern string `json:"pattern"`
	// Positions are match start byte offsets, strictly ascending.
	Positions []int `json:"positions"`
	// Lines holds the 1-based line number for each position, same order.
	Lines []int `json:"lines"`
}

// Result is the outcome of scanning one file. It is built fresh per
// invocation and owned by the caller; nothing in it is shared or reused.
type Result struct {
	Path string `json:"path"`
	// Err is set for file-level failures (not found, size limit, read
	// error). Hits is empty in that case. Per-pattern regex compile
	// failures never set Err.
	Err      *ScanError `json:"error,omitempty"`
	IsBinary bool       `json:"is_binary"`
	// FileSize is the stat-reported size in bytes, populated whenever it
	// could be determined, even on size-limit and read failures.
	FileSize int64 `json:"file_size"`
	// ContentHash is the xxhash64 of the loaded content, for cheap
	// unchanged-file detection across rescans. 0 when loading failed.
	ContentHash uint64 `json:"content_hash,omitempty"`
	// Hits has exactly one entry per request pattern, in request order,
	// including patterns with zero matches.
	Hits []PatternResult `json:"hits"`
}

// TotalMatches returns the match count summed over all patterns.
func (r *Result) TotalMatches() int {
	total := 0
	for _, h := range r.Hits {
		total += len(h.Positions)
	}
	return total
}

// MatchedLines returns the distinct 1-based line numbers that contain at
// least one match of any pattern, sorted ascending.
func (r *Result) MatchedLines() []int {
	seen := make(map[int]struct{})
	for _, h := range r.Hits {
		for _, line := range h.Lines {
			seen[line] = struct{}{}
		}
	}

	lines := make([]int, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}
