package searchex

import (
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"github.com/TEXploder/searchex/internal/fileio"
	"github.com/TEXploder/searchex/internal/matcher"
	"github.com/TEXploder/searchex/internal/textscan"
)

// Options configures a Scanner.
type Options struct {
	// Logger receives structured debug/warn events. Nil discards all output.
	Logger *slog.Logger
}

// Scanner runs per-file pattern scans. It holds only immutable configuration,
// so a single Scanner may be shared by any number of goroutines scanning
// different files concurrently; every invocation works on its own buffer and
// result and no state survives between calls.
type Scanner struct {
	log *slog.Logger
}

// New creates a Scanner.
func New(opts Options) *Scanner {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{log: log}
}

var defaultScanner = New(Options{})

// Scan runs a request on a shared default Scanner with logging disabled.
func Scan(req Request) *Result {
	return defaultScanner.Scan(req)
}

// Scan loads the requested file, classifies it as text or binary, matches
// every pattern and maps match offsets to 1-based line numbers.
//
// Scan always returns a fully populated Result, never an error: file-level
// failures (missing path, size limit, read error) are reported on Result.Err
// with empty Hits, and a malformed regex degrades only its own pattern to
// zero matches. The content buffer and line index are built once and shared
// by all patterns in the request.
func (s *Scanner) Scan(req Request) *Result {
	res := &Result{
		Path: req.Path,
		Hits: make([]PatternResult, 0, len(req.Patterns)),
	}

	content, size, err := fileio.Load(req.Path, req.MaxBytes)
	res.FileSize = size
	if err != nil {
		res.Err = classifyLoadError(req.Path, err)
		s.log.Debug("scan failed",
			"path", req.Path,
			"kind", res.Err.Kind,
			"error", err,
		)
		return res
	}

	res.IsBinary = textscan.IsBinary(content)
	res.ContentHash = xxhash.Sum64(content)
	lineIndex := textscan.BuildLineIndex(content)

	for _, pat := range req.Patterns {
		var positions []int
		if req.UseRegex {
			var perr error
			positions, perr = matcher.FindRegex(content, pat, req.CaseSensitive)
			if perr != nil {
				// Contained: this pattern contributes zero matches while
				// the remaining patterns still run.
				s.log.Warn("regex compile failed",
					"path", req.Path,
					"pattern", pat,
					"error", perr,
				)
				positions = nil
			}
		} else {
			positions = matcher.FindLiteral(content, []byte(pat), req.CaseSensitive, req.WholeWord)
		}

		if positions == nil {
			positions = []int{}
		}
		res.Hits = append(res.Hits, PatternResult{
			Pattern:   pat,
			Positions: positions,
			Lines:     lineIndex.LinesFor(positions),
		})
	}

	s.log.Debug("scan complete",
		"path", req.Path,
		"size", size,
		"binary", res.IsBinary,
		"patterns", len(req.Patterns),
		"matches", res.TotalMatches(),
	)
	return res
}
