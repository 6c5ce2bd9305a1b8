package config

import (
	"encoding/xml"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depvis/pkg/errors"
)

// xmlConfig matches any root element; unknown children are ignored.
type xmlConfig struct {
	PackageName     string `xml:"package_name"`
	RepositoryURL   string `xml:"repository_url"`
	TestRepoMode    string `xml:"test_repo_mode"`
	PackageVersion  string `xml:"package_version"`
	ASCIITreeOutput string `xml:"ascii_tree_output"`
	MaxDepth        string `xml:"max_depth"`
	TimeoutSeconds  string `xml:"timeout_seconds"`
	Concurrency     string `xml:"concurrency"`
}

func decodeXML(data []byte) (rawConfig, error) {
	var x xmlConfig
	if err := xml.Unmarshal(data, &x); err != nil {
		return rawConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read XML")
	}
	return rawConfig{
		PackageName:     trimmed(x.PackageName),
		RepositoryURL:   trimmed(x.RepositoryURL),
		TestRepoMode:    trimmed(x.TestRepoMode),
		PackageVersion:  trimmed(x.PackageVersion),
		ASCIITreeOutput: trimmed(x.ASCIITreeOutput),
		MaxDepth:        trimmed(x.MaxDepth),
		TimeoutSeconds:  trimmed(x.TimeoutSeconds),
		Concurrency:     trimmed(x.Concurrency),
	}, nil
}

// decodeTOML accepts native TOML booleans and integers as well as strings,
// so `max_depth = 3` and `max_depth = "3"` are equivalent.
func decodeTOML(data []byte) (rawConfig, error) {
	var m map[string]any
	if _, err := toml.Decode(string(data), &m); err != nil {
		return rawConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read TOML")
	}
	return rawConfig{
		PackageName:     trimmed(m["package_name"]),
		RepositoryURL:   trimmed(m["repository_url"]),
		TestRepoMode:    trimmed(m["test_repo_mode"]),
		PackageVersion:  trimmed(m["package_version"]),
		ASCIITreeOutput: trimmed(m["ascii_tree_output"]),
		MaxDepth:        trimmed(m["max_depth"]),
		TimeoutSeconds:  trimmed(m["timeout_seconds"]),
		Concurrency:     trimmed(m["concurrency"]),
	}, nil
}
