package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// WaitMode selects the page-load readiness condition for navigation.
type WaitMode int

const (
	// WaitFullLoad waits until the page body is visible (the page has
	// finished loading and rendering).
	WaitFullLoad WaitMode = iota

	// WaitDOMReady waits only until the body element exists in the DOM.
	WaitDOMReady
)

// Navigate loads the target URL, tolerating transient failures: it retries up
// to the profile's attempt budget with a fixed delay between attempts, and
// succeeds on the first attempt that completes without error. If every
// attempt fails, the last error is propagated wrapped in ErrNavigationFailed.
//
// There is no cross-scenario memoization: every scenario re-navigates from
// scratch on its own page.
func (p *Page) Navigate(url string, mode WaitMode) error {
	readiness := chromedp.WaitVisible("body", chromedp.ByQuery)
	if mode == WaitDOMReady {
		readiness = chromedp.WaitReady("body", chromedp.ByQuery)
	}

	var lastErr error
	for attempt := 1; attempt <= p.profile.NavAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(p.ctx, p.profile.NavTimeout)
		err := chromedp.Run(attemptCtx,
			chromedp.Navigate(url),
			readiness,
		)
		cancel()
		if err == nil {
			p.logger.Printf("navigated to %s (attempt %d)", url, attempt)
			return nil
		}
		lastErr = err
		p.logger.Printf("navigation attempt %d/%d failed: %s", attempt, p.profile.NavAttempts, err)
		if attempt < p.profile.NavAttempts {
			select {
			case <-time.After(p.profile.NavRetryDelay):
			case <-p.ctx.Done():
				return fmt.Errorf("%w: %w", ErrNavigationFailed, p.ctx.Err())
			}
		}
	}
	return fmt.Errorf("%w after %d attempt(s): %w", ErrNavigationFailed, p.profile.NavAttempts, lastErr)
}
