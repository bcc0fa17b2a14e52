package browser

import (
	"encoding/json"
	"fmt"

	"github.com/chromedp/chromedp"
)

// value-bearing fields: clear, assign, then fire input/change and blur so any
// value-change listeners attached by the page observe the new value
const valueFieldInjectTemplate = `(function(sel, text) {
	var el = document.querySelector(sel);
	if (!el) { return false; }
	el.focus();
	el.value = '';
	el.value = text;
	el.dispatchEvent(new Event('input', {bubbles: true}));
	el.dispatchEvent(new Event('change', {bubbles: true}));
	el.blur();
	return true;
})(%s, %s)`

// editable regions do not reliably fire framework-level change listeners on
// direct content assignment, so dispatch a synthetic input event explicitly
const editableRegionInjectTemplate = `(function(sel, text) {
	var el = document.querySelector(sel);
	if (!el) { return false; }
	el.textContent = text;
	el.dispatchEvent(new Event('input', {bubbles: true}));
	return true;
})(%s, %s)`

const readBackTemplate = `(function(sel, useValue) {
	var el = document.querySelector(sel);
	if (!el) { return null; }
	return useValue ? el.value : el.textContent;
})(%s, %s)`

func buildInjectScript(surface InputSurface, text string) (string, error) {
	sel, err := json.Marshal(surface.Strategy.Selector)
	if err != nil {
		return "", err
	}
	val, err := json.Marshal(text)
	if err != nil {
		return "", err
	}
	switch surface.Kind {
	case ValueField:
		return fmt.Sprintf(valueFieldInjectTemplate, sel, val), nil
	case EditableRegion:
		return fmt.Sprintf(editableRegionInjectTemplate, sel, val), nil
	default:
		return "", fmt.Errorf("unknown element kind %q", surface.Kind)
	}
}

// Inject writes text into the located input surface using the protocol for
// its element kind. Any prior value is replaced entirely; after injection the
// surface's visible text equals the given text exactly.
func (p *Page) Inject(surface InputSurface, text string) error {
	if surface.Kind == EditableRegion {
		// a user click focuses the region before content assignment
		if err := chromedp.Run(p.ctx, chromedp.Click(surface.Strategy.Selector, chromedp.ByQuery)); err != nil {
			return fmt.Errorf("clicking editable region: %w", err)
		}
	}

	script, err := buildInjectScript(surface, text)
	if err != nil {
		return err
	}
	var ok bool
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(script, &ok)); err != nil {
		return fmt.Errorf("injecting input: %w", err)
	}
	if !ok {
		return fmt.Errorf("input surface disappeared during injection (selector %q)", surface.Strategy.Selector)
	}
	p.logger.Printf("injected %d bytes into %s", len(text), surface.Kind)
	return nil
}

// ReadBack returns the input surface's current visible text, for verifying
// injection fidelity.
func (p *Page) ReadBack(surface InputSurface) (string, error) {
	sel, err := json.Marshal(surface.Strategy.Selector)
	if err != nil {
		return "", err
	}
	useValue := "false"
	if surface.Kind == ValueField {
		useValue = "true"
	}
	script := fmt.Sprintf(readBackTemplate, sel, useValue)

	var text *string
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(script, &text)); err != nil {
		return "", fmt.Errorf("reading input surface back: %w", err)
	}
	if text == nil {
		return "", fmt.Errorf("input surface disappeared during read-back (selector %q)", surface.Strategy.Selector)
	}
	return *text, nil
}
