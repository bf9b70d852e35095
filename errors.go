package searchex

import (
	"encoding/json"
	"errors"

	"github.com/TEXploder/searchex/internal/fileio"
)

// ErrorKind classifies file-level scan failures.
type ErrorKind string

const (
	// ErrorKindNotFound: the path does not exist or is not a regular file.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindSizeLimit: the file exceeds Request.MaxBytes and was skipped.
	ErrorKindSizeLimit ErrorKind = "size_limit_exceeded"
	// ErrorKindRead: an I/O failure while opening or reading the file.
	ErrorKindRead ErrorKind = "read_error"
)

// ScanError is a file-level scan failure, carried on Result as data so one
// failing file never aborts a batch. Pattern-level regex compile failures
// are not ScanErrors; they degrade a single PatternResult to zero matches.
type ScanError struct {
	Kind       ErrorKind
	Path       string
	Underlying error
}

func (e *ScanError) Error() string {
	return e.Underlying.Error()
}

// Unwrap exposes the underlying failure for errors.Is/As, including the
// loader sentinels and the original OS error beneath them.
func (e *ScanError) Unwrap() error {
	return e.Underlying
}

// MarshalJSON serializes the error as its message string, matching the flat
// `error` field the orchestration layer transports across boundaries.
func (e *ScanError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Error())
}

// classifyLoadError maps a loader failure onto the public error taxonomy.
func classifyLoadError(path string, err error) *ScanError {
	kind := ErrorKindRead
	switch {
	case errors.Is(err, fileio.ErrNotFound):
		kind = ErrorKindNotFound
	case errors.Is(err, fileio.ErrSizeLimit):
		kind = ErrorKindSizeLimit
	}
	return &ScanError{Kind: kind, Path: path, Underlying: err}
}
