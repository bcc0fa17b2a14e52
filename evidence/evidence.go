// Package evidence manages the audit artifacts of a run: one screenshot per
// scenario, keyed by scenario id, plus a human-viewable run report. Artifacts
// are write-only evidence; nothing here is read back by the suite itself.
package evidence

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is the recorded outcome of one scenario, pass or fail.
type Entry struct {
	ID          string
	Name        string
	Input       string
	Expected    string
	Actual      string
	Match       bool
	ShouldPass  bool
	FailureKind string // empty on pass: "navigation", "setup", "timeout", or "assertion"
	Error       string
	Screenshot  string
}

// Recorder accumulates evidence for one run. Safe for concurrent use, since
// scenarios may record from parallel workers.
type Recorder struct {
	dir     string
	runID   string
	started time.Time
	target  string

	lock    sync.Mutex
	entries []Entry
}

// NewRecorder creates the evidence directory on demand and starts a new run
// keyed by a fresh UUID.
func NewRecorder(dir, targetURL string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating evidence directory %s: %w", dir, err)
	}
	return &Recorder{
		dir:     dir,
		runID:   uuid.NewString(),
		started: time.Now(),
		target:  targetURL,
	}, nil
}

func (r *Recorder) RunID() string { return r.runID }
func (r *Recorder) Dir() string   { return r.dir }

// SaveScreenshot writes the scenario's screenshot as <id>.png and returns the
// file path.
func (r *Recorder) SaveScreenshot(scenarioID string, png []byte) (string, error) {
	path := filepath.Join(r.dir, scenarioID+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("writing screenshot %s: %w", path, err)
	}
	return path, nil
}

// Record appends one scenario outcome.
func (r *Recorder) Record(e Entry) {
	r.lock.Lock()
	r.entries = append(r.entries, e)
	r.lock.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Entry(nil), r.entries...)
}
