package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/sinhala-qa/singlish-contract-tests/config"
	"github.com/sinhala-qa/singlish-contract-tests/framework"
)

type commandParams struct {
	targetURL    string
	configPath   string
	scenarioPath string
	evidenceDir  string
	headed       bool
	slowMo       time.Duration
	filters      framework.RegexFilters
	debug        bool
	debugAll     bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.targetURL, "url", "", "translator page URL (default: the built-in target)")
	fs.StringVar(&c.configPath, "config", "", "path to a YAML profile overlay file")
	fs.StringVar(&c.scenarioPath, "scenarios", "", "path to a JSON scenario file (default: the built-in table)")
	fs.StringVar(&c.evidenceDir, "evidence-dir", "", "directory for screenshots and the run report")
	fs.BoolVar(&c.headed, "headed", false, "run the browser with a visible window")
	fs.DurationVar(&c.slowMo, "slowmo", 0, "pause between interaction steps, for watching a headed run")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scenarios to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scenarios not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed scenarios")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all scenarios")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

// applyTo overlays the command-line values onto the profile. Flags win over
// both the environment profile and the config file.
func (c *commandParams) applyTo(p *config.Profile) {
	if c.targetURL != "" {
		p.TargetURL = c.targetURL
	}
	if c.evidenceDir != "" {
		p.EvidenceDir = c.evidenceDir
	}
	if c.headed {
		p.Headless = false
	}
	if c.slowMo > 0 {
		p.SlowMo = c.slowMo
	}
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
