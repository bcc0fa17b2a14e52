package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger accumulates timestamped messages in memory so they can be
// attached to a scenario's result and dumped later. Safe for concurrent use,
// since fire-and-forget side effects (screenshot capture, polling loops) may
// log from other goroutines.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes the captured messages with both the wall-clock time and the
// offset from the first message. The offsets are what make settle delays,
// polling gaps, and navigation retries legible when reading a scenario's
// debug output.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	if len(output) == 0 {
		return
	}
	start := output[0].Time
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s +%.3fs] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Time.Sub(start).Seconds(),
			m.Message,
		)
	}
}
