package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedTest keeps a test case alongside the file it came from, so a
// failing test can be reported with its source fixture.
type LoadedTest struct {
	File string
	Test TestCase
}

// LoadDir walks dir for *.yaml fixtures and loads every test case in
// them, in file-then-declaration order.
func LoadDir(dir string) ([]LoadedTest, error) {
	var loaded []LoadedTest

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading conformance dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var suite TestSuite
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		for _, tc := range suite.Tests {
			loaded = append(loaded, LoadedTest{File: entry.Name(), Test: tc})
		}
	}

	return loaded, nil
}
