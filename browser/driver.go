// Package browser is the resilient interaction harness for the translator
// page: navigation with bounded retry, multi-strategy input discovery,
// element-kind-aware input injection, and output-readiness polling.
//
// Nothing in here knows about scenarios or assertions; it only knows how to
// drive one page of the target application and report what happened.
package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/sinhala-qa/singlish-contract-tests/config"
	"github.com/sinhala-qa/singlish-contract-tests/framework"
)

const (
	viewportWidth  = 1366
	viewportHeight = 900
)

// Driver owns one browser process. Pages (tabs) are created from it, one per
// scenario, so scenarios share nothing but the process itself.
type Driver struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	profile     *config.Profile
}

// NewDriver starts a browser allocator using the profile's headless setting.
// The browser process itself is launched lazily by the first page.
func NewDriver(parent context.Context, profile *config.Profile) *Driver {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", profile.Headless),
		chromedp.Flag("hide-scrollbars", false),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(parent, opts...)
	return &Driver{
		allocCtx:    allocCtx,
		allocCancel: cancel,
		profile:     profile,
	}
}

// Close shuts down the browser process and every page created from it.
func (d *Driver) Close() {
	d.allocCancel()
}

// Page is an isolated browser tab bound to one scenario. All of its waiting
// operations are bounded by the profile's timeouts.
type Page struct {
	ctx     context.Context
	profile *config.Profile
	logger  framework.Logger
}

// NewPage opens a fresh tab with a fixed viewport. The returned cancel
// function must be called when the scenario finishes.
func (d *Driver) NewPage(logger framework.Logger) (*Page, context.CancelFunc, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	ctx, cancel := chromedp.NewContext(d.allocCtx)
	p := &Page{ctx: ctx, profile: d.profile, logger: logger}

	err := chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(viewportWidth, viewportHeight, 1, false).Do(ctx)
		}),
	)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("opening page: %w", err)
	}
	return p, cancel, nil
}
