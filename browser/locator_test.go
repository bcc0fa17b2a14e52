package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputStrategiesPriorityOrder(t *testing.T) {
	strategies := InputStrategies()
	require.Len(t, strategies, 5)
	// the order is part of the contract: first match wins
	assert.Equal(t, "multi-line text field", strategies[0].Name)
	assert.Equal(t, "single-line text field", strategies[1].Name)
	assert.Equal(t, "editable content region", strategies[2].Name)
	assert.Equal(t, "placeholder keyword hint", strategies[3].Name)
	assert.Equal(t, "textbox role container", strategies[4].Name)
}

func TestBuildLocateScriptEmbedsAllSelectors(t *testing.T) {
	script, err := buildLocateScript(InputStrategies())
	require.NoError(t, err)
	// quotes inside selectors arrive JSON-escaped, so match on distinctive
	// fragments rather than the raw selector strings
	for _, fragment := range []string{"textarea", "contenteditable", "inglish", "textbox"} {
		assert.Contains(t, script, fragment)
	}
}

func TestBuildLocateScriptEscapesSelectors(t *testing.T) {
	script, err := buildLocateScript([]Strategy{
		{Name: "quoted", Selector: `input[placeholder*="inglish" i]`},
	})
	require.NoError(t, err)
	// the selector's quotes must arrive JSON-escaped, not raw
	assert.Contains(t, script, `\"inglish\"`)
}

func TestDescribeStrategiesNamesEveryAttempt(t *testing.T) {
	desc := describeStrategies(InputStrategies())
	assert.Contains(t, desc, "multi-line text field (textarea)")
	assert.Contains(t, desc, "textbox role container ([role=\"textbox\"])")
}
