package deps

import (
	"context"
	"fmt"
)

// Source answers direct-dependency queries for a single package.
//
// Implementations decide how an unknown package is reported: the PyPI source
// fails with a [SourceError], the fixture source answers with an empty list.
// The graph engine treats every error as a hard abort and makes no
// distinction between "not found" and transport failures.
type Source interface {
	// FetchDirect returns the ordered direct dependencies of pkg.
	FetchDirect(ctx context.Context, pkg string) ([]string, error)
}

// SourceFunc adapts an ordinary function to the [Source] interface.
type SourceFunc func(ctx context.Context, pkg string) ([]string, error)

// FetchDirect calls f(ctx, pkg).
func (f SourceFunc) FetchDirect(ctx context.Context, pkg string) ([]string, error) {
	return f(ctx, pkg)
}

// SourceError reports that a dependency source could not answer.
// Source names the variant ("pypi", "fixture") and Err carries the cause.
type SourceError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error { return e.Err }

// NewSourceError wraps err as a [SourceError] for the named source.
// It returns nil when err is nil.
func NewSourceError(source string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, Err: err}
}
