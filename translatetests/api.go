package translatetests

import (
	"errors"
	"fmt"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sinhala-qa/singlish-contract-tests/browser"
	"github.com/sinhala-qa/singlish-contract-tests/config"
	"github.com/sinhala-qa/singlish-contract-tests/evidence"
	"github.com/sinhala-qa/singlish-contract-tests/framework"
	"github.com/sinhala-qa/singlish-contract-tests/scenarios"
)

// T represents one scenario execution in the suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, so the assert and
// require packages can be used against it. It owns the scenario's isolated
// browser page and records evidence when the scenario finishes.
type T struct {
	context  *framework.Context
	profile  *config.Profile
	driver   *browser.Driver
	recorder *evidence.Recorder
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Debug logs some debug output for the scenario. The output is passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// pace pauses between interaction steps when SlowMo is configured, so a
// headed run can be watched.
func (t *T) pace() {
	if t.profile.SlowMo > 0 {
		time.Sleep(t.profile.SlowMo)
	}
}

// failureKind maps an execution outcome onto the reporting taxonomy:
// "navigation" (target unreachable), "setup" (the target's structure
// changed), "timeout" (output present but never populated), "assertion"
// (output populated but wrong). Empty string means the scenario passed.
func failureKind(err error, matched bool) string {
	switch {
	case errors.Is(err, browser.ErrNavigationFailed):
		return "navigation"
	case errors.Is(err, browser.ErrNoInputSurface), errors.Is(err, browser.ErrOutputMarkerMissing):
		return "setup"
	case errors.Is(err, browser.ErrTranslationTimeout):
		return "timeout"
	case err != nil:
		return "setup"
	case !matched:
		return "assertion"
	default:
		return ""
	}
}

// statusLine formats the diagnostic line recorded for every scenario,
// whatever the outcome.
func statusLine(sc scenarios.Scenario, actual string, matched bool) string {
	verdict := "PASS"
	if !matched {
		verdict = "FAIL"
	}
	return fmt.Sprintf("%s: expected=%q actual=%q match=%v", verdict, sc.Expected, actual, matched)
}

// runScenario executes the full per-scenario sequence. Evidence (screenshot
// and result entry) is captured on every exit path, including early failures.
func (t *T) runScenario(sc scenarios.Scenario) {
	var (
		page    *browser.Page
		actual  string
		matched bool
		runErr  error
	)

	check := func(err error) {
		if err != nil {
			runErr = err
			t.context.Errorf("%s failure: %s", failureKind(err, false), err)
			t.context.FailNow()
		}
	}

	page, cancel, err := t.driver.NewPage(t.context.DebugLogger())
	if err != nil {
		runErr = err
		t.recordEvidence(sc, nil, actual, matched, runErr)
		t.context.Errorf("setup failure: %s", err)
		t.context.FailNow()
	}
	defer cancel()
	defer func() {
		t.recordEvidence(sc, page, actual, matched, runErr)
	}()

	check(page.Navigate(t.profile.TargetURL, browser.WaitFullLoad))
	t.pace()

	surface, err := page.LocateInput()
	check(err)

	check(page.Inject(surface, sc.Input))
	t.pace()

	readBack, err := page.ReadBack(surface)
	check(err)
	if readBack != sc.Input {
		runErr = fmt.Errorf("injection fidelity violated: injected %q but surface holds %q", sc.Input, readBack)
		t.context.Errorf("setup failure: %s", runErr)
		t.context.FailNow()
	}

	actual, err = page.AwaitOutput(
		sc.SettleDelay(t.profile.SettleDelay),
		sc.OutputTimeout(t.profile.OutputTimeout),
	)
	check(err)

	matched = actual == sc.Expected

	// ShouldPass is advisory only: the assertion below runs identically for
	// scenarios the author expects to fail.
	assert.Equal(t, sc.Expected, actual, "translated output mismatch")
}

// recordEvidence captures the screenshot (best effort) and the result entry.
// Both happen for every executed scenario, pass or fail.
func (t *T) recordEvidence(sc scenarios.Scenario, page *browser.Page, actual string, matched bool, runErr error) {
	t.Debug("%s", statusLine(sc, actual, matched))
	entry := evidence.Entry{
		ID:          sc.ID,
		Name:        sc.Name,
		Input:       sc.Input,
		Expected:    sc.Expected,
		Actual:      actual,
		Match:       matched,
		ShouldPass:  sc.ShouldPass,
		FailureKind: failureKind(runErr, matched),
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	if page != nil {
		if png, err := page.CaptureFullPage(); err != nil {
			t.Debug("screenshot capture failed: %s", err)
		} else if path, err := t.recorder.SaveScreenshot(sc.ID, png); err != nil {
			t.Debug("screenshot write failed: %s", err)
		} else {
			entry.Screenshot = path
			t.Debug("screenshot saved to %s", path)
		}
	}
	t.recorder.Record(entry)
}
