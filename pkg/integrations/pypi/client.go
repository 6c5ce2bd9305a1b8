// Package pypi provides a client for the Python Package Index JSON API.
//
// The client fetches release metadata from
//
//	{base}/{package}/json            (latest release)
//	{base}/{package}/{version}/json  (pinned release)
//
// and extracts direct runtime dependencies from info.requires_dist.
package pypi

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/matzehuels/depvis/pkg/buildinfo"
	"github.com/matzehuels/depvis/pkg/integrations"
)

// DefaultBaseURL is the public PyPI JSON API root.
const DefaultBaseURL = "https://pypi.org/pypi"

var (
	depRE   = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)`)
	extraRE = regexp.MustCompile(`\bextra\s*==`)
)

// PackageInfo holds metadata for one release of a Python package.
//
// Dependencies lists only runtime requirements; requirements guarded by an
// `extra == ...` marker are excluded. Names are kept exactly as published.
type PackageInfo struct {
	Name         string   // Package name as published (e.g., "Flask")
	Version      string   // Release version (e.g., "3.0.0")
	Dependencies []string // Direct runtime dependency names, first occurrence order
	Summary      string   // Short package description (may be empty)
}

// Client provides access to the PyPI JSON API.
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client rooted at baseURL with the given request timeout.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(timeout, map[string]string{"User-Agent": buildinfo.UserAgent()}),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API root used by the client.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchPackage retrieves metadata for pkg. An empty version (or "latest")
// requests the newest release.
//
// Returns:
//   - [integrations.ErrNotFound] if the package or release doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, non-200, etc.)
//   - Other errors for JSON decoding failures
func (c *Client) FetchPackage(ctx context.Context, pkg, version string) (*PackageInfo, error) {
	var data apiResponse
	if err := c.Get(ctx, c.packageURL(pkg, version), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: pypi package %s", integrations.ErrNotFound, describe(pkg, version))
		}
		return nil, err
	}

	return &PackageInfo{
		Name:         data.Info.Name,
		Version:      data.Info.Version,
		Summary:      data.Info.Summary,
		Dependencies: extractDeps(data.Info.RequiresDist),
	}, nil
}

func (c *Client) packageURL(pkg, version string) string {
	if isLatest(version) {
		return integrations.JoinURL(c.baseURL, pkg, "json")
	}
	return integrations.JoinURL(c.baseURL, pkg, version, "json")
}

func isLatest(version string) bool {
	v := strings.TrimSpace(version)
	return v == "" || strings.EqualFold(v, "latest")
}

func describe(pkg, version string) string {
	if isLatest(version) {
		return pkg
	}
	return pkg + "==" + version
}

// extractDeps reduces PEP 508 requirement strings to distribution names.
// "urllib3 (<1.27,>=1.21.1)" and "requests[socks]>=2; python_version>'3'"
// both yield their leading name; extras-only requirements are dropped.
func extractDeps(requires []string) []string {
	seen := make(map[string]bool)
	deps := []string{}
	for _, req := range requires {
		spec, marker, _ := strings.Cut(req, ";")
		if extraRE.MatchString(marker) {
			continue
		}
		m := depRE.FindStringSubmatch(spec)
		if len(m) < 2 {
			continue
		}
		if name := m[1]; !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}
	return deps
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Summary      string   `json:"summary"`
	RequiresDist []string `json:"requires_dist"`
}
