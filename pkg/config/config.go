// Package config loads and validates depvis configuration files.
//
// Two formats carry the same keys: XML (any root element name, one child
// element per key) and TOML (top-level keys). The format is chosen from the
// file extension: ".toml" is TOML, everything else is XML.
//
//	<config>
//	  <package_name>requests</package_name>
//	  <repository_url>https://pypi.org/pypi</repository_url>
//	  <test_repo_mode>false</test_repo_mode>
//	  <package_version>2.31.0</package_version>
//	  <ascii_tree_output>true</ascii_tree_output>
//	  <max_depth>3</max_depth>
//	</config>
//
// In test mode repository_url is the path of a fixture file instead of a
// package index URL.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/depvis/pkg/errors"
)

// Defaults for optional keys.
const (
	DefaultMaxDepth       = 10
	DefaultTimeoutSeconds = 10
	DefaultConcurrency    = 1
	DefaultPath           = "config_example.xml"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatXML  Format = "xml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatXML
}

// Config is a validated configuration.
type Config struct {
	PackageName     string
	RepositoryURL   string // Package index base URL, or fixture path in test mode
	TestRepoMode    bool
	PackageVersion  string // Pinned version of PackageName; "latest" resolves the newest release
	ASCIITreeOutput bool
	MaxDepth        int
	TimeoutSeconds  int
	Concurrency     int
}

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates configuration data in the given format.
func Parse(data []byte, format Format) (*Config, error) {
	var (
		raw rawConfig
		err error
	)
	switch format {
	case FormatXML:
		raw, err = decodeXML(data)
	case FormatTOML:
		raw, err = decodeTOML(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q", format)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := raw.config()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// rawConfig holds trimmed key values as written in the file. An empty
// string means the key is absent.
type rawConfig struct {
	PackageName     string
	RepositoryURL   string
	TestRepoMode    string
	PackageVersion  string
	ASCIITreeOutput string
	MaxDepth        string
	TimeoutSeconds  string
	Concurrency     string
}

func (r rawConfig) config() (*Config, error) {
	cfg := &Config{
		PackageName:    r.PackageName,
		RepositoryURL:  r.RepositoryURL,
		PackageVersion: r.PackageVersion,
	}

	var err error
	if cfg.TestRepoMode, err = parseBool("test_repo_mode", r.TestRepoMode); err != nil {
		return nil, err
	}
	if cfg.ASCIITreeOutput, err = parseBool("ascii_tree_output", r.ASCIITreeOutput); err != nil {
		return nil, err
	}
	if cfg.MaxDepth, err = parsePositive("max_depth", r.MaxDepth, DefaultMaxDepth); err != nil {
		return nil, err
	}
	if cfg.TimeoutSeconds, err = parsePositive("timeout_seconds", r.TimeoutSeconds, DefaultTimeoutSeconds); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = parsePositive("concurrency", r.Concurrency, DefaultConcurrency); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required keys and value ranges.
func (c *Config) Validate() error {
	for _, req := range []struct{ key, value string }{
		{"package_name", c.PackageName},
		{"repository_url", c.RepositoryURL},
		{"package_version", c.PackageVersion},
	} {
		if req.value == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "missing required element <%s>", req.key)
		}
	}
	if err := errors.ValidatePackageName(c.PackageName); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "package_name")
	}
	if !c.TestRepoMode {
		if err := errors.ValidateURL(c.RepositoryURL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository_url")
		}
	}
	for _, pos := range []struct {
		key   string
		value int
	}{
		{"max_depth", c.MaxDepth},
		{"timeout_seconds", c.TimeoutSeconds},
		{"concurrency", c.Concurrency},
	} {
		if pos.value < 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be a positive integer, got %d", pos.key, pos.value)
		}
	}
	return nil
}

// Pair is one key/value line of a configuration dump.
type Pair struct {
	Key   string
	Value string
}

// Pairs returns every key with its effective value, in file order.
func (c *Config) Pairs() []Pair {
	return []Pair{
		{"package_name", c.PackageName},
		{"repository_url", c.RepositoryURL},
		{"test_repo_mode", strconv.FormatBool(c.TestRepoMode)},
		{"package_version", c.PackageVersion},
		{"ascii_tree_output", strconv.FormatBool(c.ASCIITreeOutput)},
		{"max_depth", strconv.Itoa(c.MaxDepth)},
		{"timeout_seconds", strconv.Itoa(c.TimeoutSeconds)},
		{"concurrency", strconv.Itoa(c.Concurrency)},
	}
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, errors.New(errors.ErrCodeInvalidConfig, "%s: invalid boolean value %q", key, value)
	}
}

func parsePositive(key, value string, def int) (int, error) {
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "%s must be a positive integer, got %q", key, value)
	}
	return n, nil
}

func trimmed(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
