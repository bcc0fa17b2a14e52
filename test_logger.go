package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sinhala-qa/singlish-contract-tests/framework"
)

// ConsoleTestLogger streams scenario progress to the console as the suite
// runs. Every scenario spends real seconds driving a browser, so each one
// gets a result line with its elapsed time, passing scenarios included.
// Failure detail (the failure kind and error text) arrives through TestError
// as the scenario runs.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool

	// Output defaults to standard output.
	Output io.Writer
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.out(), "=== scenario %s\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "    %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, elapsed time.Duration, debugOutput framework.CapturedOutput) {
	if failed {
		fmt.Fprintf(c.out(), "--- FAIL: scenario %s (%.1fs)\n", id, elapsed.Seconds())
	} else {
		fmt.Fprintf(c.out(), "--- ok:   scenario %s (%.1fs)\n", id, elapsed.Seconds())
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "--- skip: scenario %s\n", id)
	} else {
		fmt.Fprintf(c.out(), "--- skip: scenario %s (%s)\n", id, reason)
	}
}
