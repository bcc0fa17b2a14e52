// Command singlish-contract-tests runs the end-to-end scenario suite against
// the Singlish-to-Sinhala translator page and exits non-zero if any assertion
// fails.
//
// Note that some built-in scenarios intentionally document the translator's
// current degraded behavior; if the target ever improves, those scenarios
// flip and the run fails by design, so the change is noticed rather than
// silently absorbed.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/sinhala-qa/singlish-contract-tests/browser"
	"github.com/sinhala-qa/singlish-contract-tests/config"
	"github.com/sinhala-qa/singlish-contract-tests/evidence"
	"github.com/sinhala-qa/singlish-contract-tests/framework"
	"github.com/sinhala-qa/singlish-contract-tests/scenarios"
	"github.com/sinhala-qa/singlish-contract-tests/translatetests"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	profile := config.FromEnvironment()
	if params.configPath != "" {
		if err := profile.ApplyFile(params.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
			return 1
		}
	}
	params.applyTo(profile)
	if err := profile.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}

	if profile.ForbidFocused && params.filters.IsFocused() {
		fmt.Fprintln(os.Stderr, "-run and -skip are not allowed in the CI profile; remove the filter or unset CI")
		return 1
	}

	list := scenarios.Default()
	if params.scenarioPath != "" {
		var err error
		list, err = scenarios.LoadFile(params.scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Scenario error: %s\n", err)
			return 1
		}
	}

	recorder, err := evidence.NewRecorder(profile.EvidenceDir, profile.TargetURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Evidence error: %s\n", err)
		return 1
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)
	fmt.Printf("Running %d scenarios against %s (run %s)\n", len(list), profile.TargetURL, recorder.RunID())

	testLogger := ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	driver := browser.NewDriver(context.Background(), profile)
	results := translatetests.RunTestSuite(driver, profile, list, params.filters.AsFilter, &testLogger, recorder)
	driver.Close()

	fmt.Println()
	framework.PrintResults(results)

	if err := recorder.WriteReport(); err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %s\n", err)
	} else {
		fmt.Printf("\nEvidence written to %s (report: %s)\n",
			recorder.Dir(), filepath.Join(recorder.Dir(), "report.html"))
	}

	if !results.OK() {
		printRerunHint(args[0], results)
		return 1
	}
	return 0
}

// printRerunHint prints a copy-pastable command that re-runs only the failed
// scenarios.
func printRerunHint(executable string, results framework.Results) {
	var b commandBuilder
	b.add(executable)
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	fmt.Printf("\nTo re-run only the failed scenarios:\n  %s\n", b)
}
