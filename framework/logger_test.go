package framework

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerRecordsMessages(t *testing.T) {
	var logger CapturingLogger
	logger.Printf("injected %d bytes", 21)
	logger.Printf("output marker populated")

	output := logger.Output()
	require.Len(t, output, 2)
	assert.Equal(t, "injected 21 bytes", output[0].Message)
	assert.False(t, output[0].Time.IsZero())
}

func TestDumpShowsOffsetsFromFirstMessage(t *testing.T) {
	start := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	output := CapturedOutput{
		{Time: start, Message: "injected 21 bytes into value-field"},
		{Time: start.Add(1700 * time.Millisecond), Message: "output marker populated"},
	}

	var buf bytes.Buffer
	output.Dump(&buf, "  ")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "+0.000s")
	assert.Contains(t, lines[0], "injected 21 bytes into value-field")
	assert.Contains(t, lines[1], "+1.700s")
}

func TestDumpOfEmptyOutputWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	CapturedOutput(nil).Dump(&buf, "  ")
	assert.Zero(t, buf.Len())
}
