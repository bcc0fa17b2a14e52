package browser

import "errors"

// The failure taxonomy distinguishes problems that need different remediation:
// an unreachable target, a structural change in the target's markup (setup
// failures), and a translation that never arrived (processing timeout). A
// content mismatch is not an error here at all; it surfaces as an ordinary
// assertion failure in the test layer.
var (
	// ErrNavigationFailed means the target page could not be loaded within
	// the scenario's attempt budget.
	ErrNavigationFailed = errors.New("navigation failed")

	// ErrNoInputSurface means none of the input discovery strategies matched
	// any element. The target's input markup has changed.
	ErrNoInputSurface = errors.New("no input surface found")

	// ErrOutputMarkerMissing means the output marker element never appeared
	// in the page at all. The output selector is stale.
	ErrOutputMarkerMissing = errors.New("output marker not found in page")

	// ErrTranslationTimeout means the output marker existed but its text
	// stayed empty until the timeout elapsed.
	ErrTranslationTimeout = errors.New("output marker never populated")
)
