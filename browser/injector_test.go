package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func surfaceOfKind(kind ElementKind) InputSurface {
	return InputSurface{
		Strategy: Strategy{Name: "multi-line text field", Selector: "textarea"},
		Kind:     kind,
	}
}

func TestBuildInjectScriptValueFieldDispatchesChangeAndBlur(t *testing.T) {
	script, err := buildInjectScript(surfaceOfKind(ValueField), "mama gedhara yanavaa.")
	require.NoError(t, err)
	assert.Contains(t, script, "el.value = text")
	assert.Contains(t, script, "new Event('input'")
	assert.Contains(t, script, "new Event('change'")
	assert.Contains(t, script, "el.blur()")
	assert.Contains(t, script, `"mama gedhara yanavaa."`)
}

func TestBuildInjectScriptEditableRegionUsesTextContent(t *testing.T) {
	script, err := buildInjectScript(surfaceOfKind(EditableRegion), "api heta enavaa")
	require.NoError(t, err)
	assert.Contains(t, script, "el.textContent = text")
	assert.Contains(t, script, "new Event('input'")
	assert.NotContains(t, script, "el.blur()")
}

func TestBuildInjectScriptEscapesHostileText(t *testing.T) {
	hostile := "line1\nline2 \"quoted\" </script>"
	script, err := buildInjectScript(surfaceOfKind(ValueField), hostile)
	require.NoError(t, err)
	// raw newlines or unescaped quotes would break the script
	assert.Contains(t, script, `\n`)
	assert.Contains(t, script, `\"quoted\"`)
	assert.NotContains(t, script, "\nline2")
}

func TestBuildInjectScriptRejectsUnknownKind(t *testing.T) {
	_, err := buildInjectScript(surfaceOfKind(ElementKind("mystery")), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown element kind")
}
