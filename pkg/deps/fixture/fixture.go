// Package fixture reads static test repositories of package dependencies.
//
// A test repository is a flat text file with one package per line:
//
//	# comment
//	A: B C
//	B: C
//	C:
//
// The part before the first ':' names the package, the whitespace-separated
// tokens after it are its direct dependencies in order. Blank lines and lines
// starting with '#' are ignored. When a package appears twice, the later line
// wins.
//
// Unlike the live index, a [Repository] answers with an empty dependency list
// for packages it does not contain.
package fixture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/matzehuels/depvis/pkg/deps"
)

const sourceName = "fixture"

var (
	// ErrMalformedLine is returned when a non-comment line has no ':' separator.
	ErrMalformedLine = errors.New("malformed line")

	// ErrMissingFile is returned when the repository file does not exist.
	ErrMissingFile = errors.New("test repository not found")
)

// Repository is a pre-loaded, total mapping from package to direct dependencies.
// It is safe for concurrent reads after construction.
type Repository struct {
	order []string
	deps  map[string][]string
}

// Load reads a test repository file from path.
// Failures are reported as [*deps.SourceError].
func Load(path string) (*Repository, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, deps.NewSourceError(sourceName, fmt.Errorf("%w: %s", ErrMissingFile, path))
	}
	if err != nil {
		return nil, deps.NewSourceError(sourceName, err)
	}
	defer f.Close()

	repo, err := Parse(f)
	if err != nil {
		return nil, deps.NewSourceError(sourceName, fmt.Errorf("%s: %w", path, err))
	}
	return repo, nil
}

// Parse reads a test repository from r.
// A line without ':' fails with [ErrMalformedLine] naming the 1-based line number.
func Parse(r io.Reader) (*Repository, error) {
	repo := &Repository{deps: make(map[string][]string)}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		pkg, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, lineno, line)
		}
		repo.set(strings.TrimSpace(pkg), strings.Fields(rest))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return repo, nil
}

// New builds a Repository from an in-memory mapping. Packages are listed in
// sorted order by [Repository.Packages].
func New(m map[string][]string) *Repository {
	repo := &Repository{deps: make(map[string][]string, len(m))}
	for _, pkg := range slices.Sorted(maps.Keys(m)) {
		repo.set(pkg, m[pkg])
	}
	return repo
}

func (r *Repository) set(pkg string, deps []string) {
	if _, exists := r.deps[pkg]; !exists {
		r.order = append(r.order, pkg)
	}
	if deps == nil {
		deps = []string{}
	}
	r.deps[pkg] = deps
}

// FetchDirect returns the dependencies recorded for pkg.
// A package missing from the repository has no dependencies; it is not an error.
func (r *Repository) FetchDirect(_ context.Context, pkg string) ([]string, error) {
	return slices.Clone(r.deps[pkg]), nil
}

// Packages returns the packages in the order they first appeared.
func (r *Repository) Packages() []string {
	return slices.Clone(r.order)
}

// Len returns the number of packages in the repository.
func (r *Repository) Len() int { return len(r.order) }

var _ deps.Source = (*Repository)(nil)
