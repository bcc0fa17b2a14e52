// Package config builds the runtime profile for a test run. The profile is
// constructed exactly once at process start, from the CI environment toggle
// plus an optional YAML overlay file, and is passed down explicitly rather
// than re-read from the environment ad hoc.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTargetURL is the translator page this suite exercises. The target is
// an opaque black box: we control neither its markup nor its behavior.
const DefaultTargetURL = "https://www.easysinhalaunicode.com/"

// Profile holds every tunable of a test run.
type Profile struct {
	// TargetURL is the translator page to load for every scenario.
	TargetURL string `yaml:"target_url"`

	// Headless controls whether the browser runs without a visible window.
	Headless bool `yaml:"headless"`

	// Sequential forces scenarios to run one at a time. When false, scenarios
	// run on parallel workers, at most MaxParallel at once.
	Sequential bool `yaml:"sequential"`

	// MaxParallel is the worker limit for parallel runs (0 = NumCPU).
	MaxParallel int `yaml:"max_parallel"`

	// NavAttempts is the per-scenario navigation attempt budget. There is no
	// global retry budget shared across scenarios.
	NavAttempts int `yaml:"nav_attempts"`

	// NavRetryDelay is the fixed delay between navigation attempts.
	NavRetryDelay time.Duration `yaml:"nav_retry_delay"`

	// NavTimeout bounds a single navigation attempt.
	NavTimeout time.Duration `yaml:"nav_timeout"`

	// SettleDelay is applied after input injection, before output polling
	// begins, so asynchronous client-side processing can start.
	SettleDelay time.Duration `yaml:"settle_delay"`

	// OutputTimeout bounds the wait for the output marker to populate.
	OutputTimeout time.Duration `yaml:"output_timeout"`

	// PollInterval is how often the output marker is checked.
	PollInterval time.Duration `yaml:"poll_interval"`

	// StabilizeDelay is applied after the output first becomes non-empty,
	// covering debounced re-renders, before the final text is read.
	StabilizeDelay time.Duration `yaml:"stabilize_delay"`

	// SlowMo inserts a pause between interaction steps so a headed run can
	// be watched. Zero in both built-in profiles.
	SlowMo time.Duration `yaml:"slow_mo"`

	// EvidenceDir receives one screenshot per scenario plus the run report.
	// The default deliberately differs from the evidence package directory so
	// a run from the repo root never writes artifacts into source.
	EvidenceDir string `yaml:"evidence_dir"`

	// ForbidFocused rejects -run/-skip filters. Set in the CI profile so an
	// accidentally committed focused run fails fast instead of silently
	// shrinking coverage.
	ForbidFocused bool `yaml:"forbid_focused"`
}

// LocalProfile is tuned for development: parallel scenarios, no navigation
// retries, focused runs allowed.
func LocalProfile() *Profile {
	return &Profile{
		TargetURL:      DefaultTargetURL,
		Headless:       true,
		Sequential:     false,
		MaxParallel:    runtime.NumCPU(),
		NavAttempts:    1,
		NavRetryDelay:  2 * time.Second,
		NavTimeout:     30 * time.Second,
		SettleDelay:    1500 * time.Millisecond,
		OutputTimeout:  15 * time.Second,
		PollInterval:   250 * time.Millisecond,
		StabilizeDelay: 500 * time.Millisecond,
		EvidenceDir:    "evidence-out",
		ForbidFocused:  false,
	}
}

// CIProfile trades throughput for determinism: strictly sequential, bounded
// navigation retries, focused runs rejected.
func CIProfile() *Profile {
	p := LocalProfile()
	p.Sequential = true
	p.MaxParallel = 1
	p.NavAttempts = 3
	p.ForbidFocused = true
	return p
}

// FromEnvironment selects the CI profile when the CI environment variable is
// set to anything other than "" or "false", and the local profile otherwise.
func FromEnvironment() *Profile {
	if ci := os.Getenv("CI"); ci != "" && ci != "false" {
		return CIProfile()
	}
	return LocalProfile()
}

// ApplyFile overlays settings from a YAML file onto the profile. The file is
// only ever named explicitly on the command line, so a missing file is an
// error rather than a silent run with defaults. Durations are written as
// strings in the file ("20s", "1500ms") and parsed with time.ParseDuration.
func (p *Profile) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	// Pointer fields distinguish "absent from the file" from zero values.
	type fileProfile struct {
		TargetURL      *string `yaml:"target_url"`
		Headless       *bool   `yaml:"headless"`
		Sequential     *bool   `yaml:"sequential"`
		MaxParallel    *int    `yaml:"max_parallel"`
		NavAttempts    *int    `yaml:"nav_attempts"`
		NavRetryDelay  *string `yaml:"nav_retry_delay"`
		NavTimeout     *string `yaml:"nav_timeout"`
		SettleDelay    *string `yaml:"settle_delay"`
		OutputTimeout  *string `yaml:"output_timeout"`
		PollInterval   *string `yaml:"poll_interval"`
		StabilizeDelay *string `yaml:"stabilize_delay"`
		SlowMo         *string `yaml:"slow_mo"`
		EvidenceDir    *string `yaml:"evidence_dir"`
		ForbidFocused  *bool   `yaml:"forbid_focused"`
	}
	var f fileProfile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setDuration := func(dst *time.Duration, src *string, name string) error {
		if src == nil {
			return nil
		}
		d, err := time.ParseDuration(*src)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, *src, err)
		}
		*dst = d
		return nil
	}

	setString(&p.TargetURL, f.TargetURL)
	setBool(&p.Headless, f.Headless)
	setBool(&p.Sequential, f.Sequential)
	setInt(&p.MaxParallel, f.MaxParallel)
	setInt(&p.NavAttempts, f.NavAttempts)
	setString(&p.EvidenceDir, f.EvidenceDir)
	setBool(&p.ForbidFocused, f.ForbidFocused)
	for _, d := range []struct {
		dst  *time.Duration
		src  *string
		name string
	}{
		{&p.NavRetryDelay, f.NavRetryDelay, "nav_retry_delay"},
		{&p.NavTimeout, f.NavTimeout, "nav_timeout"},
		{&p.SettleDelay, f.SettleDelay, "settle_delay"},
		{&p.OutputTimeout, f.OutputTimeout, "output_timeout"},
		{&p.PollInterval, f.PollInterval, "poll_interval"},
		{&p.StabilizeDelay, f.StabilizeDelay, "stabilize_delay"},
		{&p.SlowMo, f.SlowMo, "slow_mo"},
	} {
		if err := setDuration(d.dst, d.src, d.name); err != nil {
			return err
		}
	}
	return p.Validate()
}

// Validate reports profile values that cannot work.
func (p *Profile) Validate() error {
	if p.TargetURL == "" {
		return fmt.Errorf("target_url must not be empty")
	}
	if p.NavAttempts < 1 {
		return fmt.Errorf("nav_attempts must be at least 1, got %d", p.NavAttempts)
	}
	if p.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", p.PollInterval)
	}
	if p.OutputTimeout <= 0 {
		return fmt.Errorf("output_timeout must be positive, got %s", p.OutputTimeout)
	}
	return nil
}

// Workers is the number of scenario workers the profile allows.
func (p *Profile) Workers() int {
	if p.Sequential {
		return 1
	}
	if p.MaxParallel > 0 {
		return p.MaxParallel
	}
	return runtime.NumCPU()
}
