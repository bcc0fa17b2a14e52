package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sinhala-qa/singlish-contract-tests/framework"
)

func scenarioID(name string) framework.TestID {
	return framework.TestID{Path: []string{name}}
}

func TestConsoleTestLoggerReportsScenarioOutcomes(t *testing.T) {
	var buf bytes.Buffer
	logger := ConsoleTestLogger{Output: &buf}

	id := scenarioID("basic-sentence: simple sentence with word spacing")
	logger.TestStarted(id)
	logger.TestError(id, errors.New("navigation failure: navigation failed after 3 attempt(s)"))
	logger.TestFinished(id, true, 2300*time.Millisecond, nil)

	out := buf.String()
	assert.Contains(t, out, "=== scenario basic-sentence: simple sentence with word spacing")
	assert.Contains(t, out, "navigation failure")
	assert.Contains(t, out, "FAIL: scenario basic-sentence")
	assert.Contains(t, out, "(2.3s)")
}

func TestConsoleTestLoggerReportsPassingScenariosWithElapsedTime(t *testing.T) {
	var buf bytes.Buffer
	logger := ConsoleTestLogger{Output: &buf}
	logger.TestFinished(scenarioID("greeting: single-word greeting"), false, 4*time.Second, nil)
	assert.Contains(t, buf.String(), "ok:   scenario greeting: single-word greeting (4.0s)")
}

func TestConsoleTestLoggerDebugOutputGating(t *testing.T) {
	output := framework.CapturedOutput{{Time: time.Now(), Message: "output marker populated"}}

	var quiet bytes.Buffer
	logger := ConsoleTestLogger{Output: &quiet}
	logger.TestFinished(scenarioID("greeting"), false, time.Second, output)
	assert.NotContains(t, quiet.String(), "output marker populated")

	var verbose bytes.Buffer
	logger = ConsoleTestLogger{Output: &verbose, DebugOutputOnSuccess: true}
	logger.TestFinished(scenarioID("greeting"), false, time.Second, output)
	assert.Contains(t, verbose.String(), "output marker populated")
}

func TestConsoleTestLoggerSkipReason(t *testing.T) {
	var buf bytes.Buffer
	logger := ConsoleTestLogger{Output: &buf}
	logger.TestSkipped(scenarioID("no-word-spacing"), "excluded by filter parameters")
	assert.Contains(t, buf.String(), "skip: scenario no-word-spacing (excluded by filter parameters)")
}
