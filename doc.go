// Package searchex is the single-file content scanner behind the searchex
// application: given a file path and a set of patterns, it loads the file,
// classifies it as text or binary, finds every match of every pattern and
// maps each match to its 1-based line number.
//
// The scanner is pure and stateless per invocation. The host application
// decides which files to scan and how many to scan in parallel; one Scanner
// can be shared freely across goroutines:
//
//	sc := searchex.New(searchex.Options{})
//	res := sc.Scan(searchex.Request{
//		Path:     "main.go",
//		Patterns: []string{"TODO", "FIXME"},
//	})
//	for _, hit := range res.Hits {
//		fmt.Println(hit.Pattern, hit.Lines)
//	}
//
// Matching is byte-level. Literal mode folds ASCII case only (non-ASCII
// bytes compare verbatim) and can require whole-word boundaries; regex mode
// uses Go's regexp syntax. Failures are data, not panics: a missing or
// oversized file sets Result.Err, and a malformed regex yields zero matches
// for that pattern without affecting its siblings.
package searchex
