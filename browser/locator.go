package browser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// ElementKind is the closed set of input surface variants. Injection protocol
// is dispatched on this tag.
type ElementKind string

const (
	// ValueField is a form control that carries its content in a value
	// property (textarea, text input).
	ValueField ElementKind = "value-field"

	// EditableRegion is any element edited through its text content
	// (contenteditable, textbox-role containers).
	EditableRegion ElementKind = "editable-region"
)

// Strategy is one way of discovering the translator's input surface. The
// target's markup is not under our control, so the locator tries several
// structurally distinct strategies rather than coupling to one selector.
type Strategy struct {
	Name     string
	Selector string
}

// InputStrategies returns the discovery strategies in fixed priority order.
// The first strategy that matches at least one element wins, and the first
// element of that match is used.
func InputStrategies() []Strategy {
	return []Strategy{
		{"multi-line text field", `textarea`},
		{"single-line text field", `input[type="text"]`},
		{"editable content region", `[contenteditable="true"]`},
		{"placeholder keyword hint", `input[placeholder*="inglish" i], textarea[placeholder*="inglish" i]`},
		{"textbox role container", `[role="textbox"]`},
	}
}

// InputSurface is a located input element: the strategy that found it and the
// element kind observed at runtime. The kind comes from the element itself,
// not from the strategy, since e.g. a placeholder hint can match either kind.
type InputSurface struct {
	Strategy Strategy
	Kind     ElementKind
}

// the script probes each selector in order and reports the first hit along
// with the element's actual kind
const locateScriptTemplate = `(function(selectors) {
	for (var i = 0; i < selectors.length; i++) {
		var el = document.querySelector(selectors[i]);
		if (el) {
			var tag = el.tagName.toLowerCase();
			var kind = (tag === 'textarea' || tag === 'input') ? 'value-field' : 'editable-region';
			return {strategy: i, kind: kind};
		}
	}
	return null;
})(%s)`

func buildLocateScript(strategies []Strategy) (string, error) {
	selectors := make([]string, 0, len(strategies))
	for _, s := range strategies {
		selectors = append(selectors, s.Selector)
	}
	encoded, err := json.Marshal(selectors)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(locateScriptTemplate, string(encoded)), nil
}

// LocateInput finds the translator's input surface. If no strategy matches,
// the error names every attempted strategy so the failure reads as a setup
// problem (the target's markup changed), not a translation problem.
func (p *Page) LocateInput() (InputSurface, error) {
	strategies := InputStrategies()
	script, err := buildLocateScript(strategies)
	if err != nil {
		return InputSurface{}, fmt.Errorf("building locator script: %w", err)
	}

	var result *struct {
		Strategy int         `json:"strategy"`
		Kind     ElementKind `json:"kind"`
	}
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(script, &result)); err != nil {
		return InputSurface{}, fmt.Errorf("locating input surface: %w", err)
	}
	if result == nil {
		return InputSurface{}, fmt.Errorf("%w; tried strategies: %s",
			ErrNoInputSurface, describeStrategies(strategies))
	}
	if result.Strategy < 0 || result.Strategy >= len(strategies) {
		return InputSurface{}, fmt.Errorf("locator script returned invalid strategy index %d", result.Strategy)
	}

	surface := InputSurface{
		Strategy: strategies[result.Strategy],
		Kind:     result.Kind,
	}
	p.logger.Printf("located input surface via %q (%s)", surface.Strategy.Name, surface.Kind)
	return surface, nil
}

func describeStrategies(strategies []Strategy) string {
	var names []string
	for _, s := range strategies {
		names = append(names, fmt.Sprintf("%s (%s)", s.Name, s.Selector))
	}
	return strings.Join(names, ", ")
}
