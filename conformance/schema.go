// Package conformance runs data-driven test suites, authored as YAML
// fixtures, against the evaluator — the spec's end-to-end scenarios
// expressed as data instead of Go literals.
package conformance

// TestSuite is one YAML fixture file: a named group of test cases.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is a single program and its expected outcome.
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        bool        `yaml:"skip,omitempty"`
	Code        string      `yaml:"code"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation names exactly one way a test can be checked: an exact
// display-form value, an exact error message, or a result kind.
type Expectation struct {
	Value any    `yaml:"value,omitempty"`
	Error string `yaml:"error,omitempty"`
	Kind  string `yaml:"kind,omitempty"`
}
