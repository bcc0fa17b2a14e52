// Package scenarios defines the data-driven test cases for the translator
// suite. Scenarios are immutable records fixed at process start: either the
// built-in table, or a JSON file supplied on the command line.
package scenarios

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Scenario describes one test case. ShouldPass is the test author's intent
// only; the harness always asserts actual == expected regardless, so a
// "negative" scenario is expected to fail the run by design and a status flip
// (the target improving) surfaces as a result change rather than being
// silently absorbed.
type Scenario struct {
	// ID is stable across runs; it keys screenshot filenames and log lines.
	ID string `json:"id"`

	// Name is the human-readable description.
	Name string `json:"name"`

	// Input is the Singlish source text to inject.
	Input string `json:"input"`

	// Expected is the exact Sinhala output text, compared with strict
	// equality: no trimming beyond extraction, no normalization.
	Expected string `json:"expected"`

	// ShouldPass is advisory metadata and never alters the assertion.
	ShouldPass bool `json:"shouldPass"`

	// SettleDelayMS and OutputTimeoutMS optionally override the profile's
	// timing for this one scenario.
	SettleDelayMS   ldvalue.OptionalInt `json:"settleDelayMs,omitempty"`
	OutputTimeoutMS ldvalue.OptionalInt `json:"outputTimeoutMs,omitempty"`
}

// SettleDelay returns the scenario override if present, else the default.
func (s Scenario) SettleDelay(defaultDelay time.Duration) time.Duration {
	if s.SettleDelayMS.IsDefined() {
		return time.Duration(s.SettleDelayMS.IntValue()) * time.Millisecond
	}
	return defaultDelay
}

// OutputTimeout returns the scenario override if present, else the default.
func (s Scenario) OutputTimeout(defaultTimeout time.Duration) time.Duration {
	if s.OutputTimeoutMS.IsDefined() {
		return time.Duration(s.OutputTimeoutMS.IntValue()) * time.Millisecond
	}
	return defaultTimeout
}

// scenario ids become filenames, so only allow filesystem-safe characters
var validScenarioID = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

type scenarioFile struct {
	Scenarios []Scenario `json:"scenarios"`
}

// LoadFile reads scenarios from a JSON file, replacing the built-in table.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}
	var f scenarioFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if err := Validate(f.Scenarios); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return f.Scenarios, nil
}

// Validate checks that a scenario list is usable: at least one scenario,
// unique filesystem-safe ids, and non-empty inputs.
func Validate(list []Scenario) error {
	if len(list) == 0 {
		return fmt.Errorf("no scenarios defined")
	}
	seen := make(map[string]bool, len(list))
	for i, s := range list {
		if !validScenarioID.MatchString(s.ID) {
			return fmt.Errorf("scenario %d has invalid id %q", i, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate scenario id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Input == "" {
			return fmt.Errorf("scenario %q has empty input", s.ID)
		}
		if s.Name == "" {
			return fmt.Errorf("scenario %q has empty name", s.ID)
		}
	}
	return nil
}
