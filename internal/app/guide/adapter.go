package guide

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDataWindow means no recognizable header or sentinel row was found.
	ErrNoDataWindow = errors.New("no recognizable data window in source file")
	// ErrNoAirings means no row yielded a usable program title.
	ErrNoAirings = errors.New("no usable airings in source file")
)

// Adapter parses one raw source file into the common intermediate records.
// Row-level defects are skipped; a ParseError is returned only when the file
// as a whole cannot be understood.
type Adapter interface {
	Parse(path string) ([]RawAiring, error)
}

// ParseError marks a source file whose layout could not be understood.
// It is fatal to that file's run but never to the whole process.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps err as a ParseError for the given source file.
func NewParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}
