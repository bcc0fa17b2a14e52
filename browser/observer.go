package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// OutputMarkerSelector is the sole means of reading the translation result: a
// container carrying this combination of style classes in the target page.
// This is the suite's most fragile coupling point; if the target restyles its
// output panel, every scenario fails with ErrOutputMarkerMissing.
const OutputMarkerSelector = `div.result-panel.sinhala-text`

const observeScriptTemplate = `(function(sel) {
	var el = document.querySelector(sel);
	if (!el) { return {exists: false, text: ''}; }
	return {exists: true, text: el.textContent || ''};
})(%q)`

type markerState struct {
	Exists bool   `json:"exists"`
	Text   string `json:"text"`
}

func (p *Page) readMarker() (markerState, error) {
	var state markerState
	script := fmt.Sprintf(observeScriptTemplate, OutputMarkerSelector)
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(script, &state)); err != nil {
		return markerState{}, fmt.Errorf("reading output marker: %w", err)
	}
	return state, nil
}

// classifyAwaitFailure distinguishes the two timeout modes: a marker that was
// never in the page at all (stale selector, structural failure) versus one
// that existed but stayed empty (processing failure).
func classifyAwaitFailure(markerSeen bool, timeout time.Duration) error {
	if !markerSeen {
		return fmt.Errorf("%w: selector %q matched nothing within %s",
			ErrOutputMarkerMissing, OutputMarkerSelector, timeout)
	}
	return fmt.Errorf("%w: selector %q stayed empty for %s",
		ErrTranslationTimeout, OutputMarkerSelector, timeout)
}

// AwaitOutput waits for the translation result and returns it as trimmed
// plain text.
//
// The settle delay runs first, giving the page's asynchronous processing time
// to start. Then the output marker is polled until its trimmed text is
// non-empty or the timeout elapses. Once text appears, one short
// stabilization delay covers debounced re-renders before the final read.
func (p *Page) AwaitOutput(settle, timeout time.Duration) (string, error) {
	if err := p.sleep(settle); err != nil {
		return "", err
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(p.profile.PollInterval)
	defer ticker.Stop()

	markerSeen := false
	for {
		state, err := p.readMarker()
		if err != nil {
			return "", err
		}
		if state.Exists {
			markerSeen = true
			if strings.TrimSpace(state.Text) != "" {
				break
			}
		}

		select {
		case <-deadline.C:
			return "", classifyAwaitFailure(markerSeen, timeout)
		case <-p.ctx.Done():
			return "", fmt.Errorf("waiting for output: %w", p.ctx.Err())
		case <-ticker.C:
		}
	}

	if err := p.sleep(p.profile.StabilizeDelay); err != nil {
		return "", err
	}
	state, err := p.readMarker()
	if err != nil {
		return "", err
	}
	if !state.Exists {
		// the marker vanished between the poll and the final read
		return "", classifyAwaitFailure(false, timeout)
	}
	text := strings.TrimSpace(state.Text)
	p.logger.Printf("output marker populated: %q", text)
	return text, nil
}

func (p *Page) sleep(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-p.ctx.Done():
		return context.Cause(p.ctx)
	}
}
