package suite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Suite defines a render conformance suite. A suite compiles a directory of
// CUE query specs and checks the rendered Cypher text of named queries.
type Suite struct {
	// Name uniquely identifies this suite. Used as the golden file prefix.
	Name string `yaml:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description,omitempty"`

	// Specs is the CUE spec directory, relative to the suite file location.
	Specs string `yaml:"specs"`

	// Cases lists the queries to render and check.
	Cases []Case `yaml:"cases"`

	// dir is the directory the suite file was loaded from; spec paths
	// resolve against it.
	dir string
}

// Case checks a single query's rendered form.
type Case struct {
	// Query names the query in the spec directory.
	Query string `yaml:"query"`

	// Version is the dialect version token. Empty means the default.
	Version string `yaml:"version,omitempty"`

	// Want is the expected rendered text. Empty means "render must
	// succeed" without pinning the text (golden runs pin it instead).
	Want string `yaml:"want,omitempty"`
}

// Load reads and parses a suite YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&s); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	s.dir = filepath.Dir(path)
	return &s, nil
}

// SpecsDir returns the suite's spec directory resolved against the suite
// file location.
func (s *Suite) SpecsDir() string {
	if filepath.IsAbs(s.Specs) || s.dir == "" {
		return s.Specs
	}
	return filepath.Join(s.dir, s.Specs)
}

func validate(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Specs == "" {
		return fmt.Errorf("specs is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("at least one case is required")
	}
	for i, c := range s.Cases {
		if c.Query == "" {
			return fmt.Errorf("cases[%d]: query is required", i)
		}
	}
	return nil
}
