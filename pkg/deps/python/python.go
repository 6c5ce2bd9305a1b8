// Package python resolves direct dependencies of Python packages from PyPI.
package python

import (
	"context"
	"time"

	"github.com/matzehuels/depvis/pkg/deps"
	"github.com/matzehuels/depvis/pkg/integrations/pypi"
)

const sourceName = "pypi"

// Options configures a PyPI-backed [Source].
type Options struct {
	BaseURL string            // JSON API root (default: https://pypi.org/pypi)
	Timeout time.Duration     // Per-request timeout (default: 10s)
	Pins    map[string]string // Package -> release version; unpinned packages use the latest release
}

// Source implements [deps.Source] on top of the PyPI JSON API.
// Any lookup failure, including an unknown package, is a [*deps.SourceError].
type Source struct {
	client *pypi.Client
	pins   map[string]string
}

// NewSource creates a Source from opts.
func NewSource(opts Options) *Source {
	return &Source{
		client: pypi.NewClient(opts.BaseURL, opts.Timeout),
		pins:   opts.Pins,
	}
}

// FetchDirect returns the runtime dependencies of pkg, using the pinned
// release when one is configured for it.
func (s *Source) FetchDirect(ctx context.Context, pkg string) ([]string, error) {
	info, err := s.client.FetchPackage(ctx, pkg, s.pins[pkg])
	if err != nil {
		return nil, deps.NewSourceError(sourceName, err)
	}
	return info.Dependencies, nil
}

var _ deps.Source = (*Source)(nil)
