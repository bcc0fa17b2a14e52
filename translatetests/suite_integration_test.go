//go:build integration

package translatetests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinhala-qa/singlish-contract-tests/browser"
	"github.com/sinhala-qa/singlish-contract-tests/config"
	"github.com/sinhala-qa/singlish-contract-tests/evidence"
	"github.com/sinhala-qa/singlish-contract-tests/scenarios"
)

// A stand-in translator page that behaves like the real target: a textarea
// input, an output panel carrying the expected style classes, and delayed
// asynchronous "translation" driven by a change listener.
const fakeTranslatorPage = `<!DOCTYPE html>
<html><body>
<textarea placeholder="Type Singlish here"></textarea>
<div class="result-panel sinhala-text"></div>
<script>
var table = {
	"mama gedhara yanavaa.": "මම ගෙදර යනවා.",
	"mamagedharayanavaa": "මමගෙදරයනවා"
};
document.querySelector('textarea').addEventListener('change', function(e) {
	var out = document.querySelector('.result-panel.sinhala-text');
	setTimeout(function() { out.textContent = table[e.target.value] || '?'; }, 200);
});
</script>
</body></html>`

func TestSuiteEndToEndAgainstFakeTranslator(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/html; charset=utf-8")
	server := httptest.NewServer(httphelpers.HandlerWithResponse(200, headers, []byte(fakeTranslatorPage)))
	defer server.Close()

	profile := config.LocalProfile()
	profile.TargetURL = server.URL
	profile.SettleDelay = 100 * time.Millisecond
	profile.OutputTimeout = 3 * time.Second
	profile.PollInterval = 50 * time.Millisecond
	profile.StabilizeDelay = 100 * time.Millisecond

	list := []scenarios.Scenario{
		{
			ID:         "basic-sentence",
			Name:       "simple sentence with word spacing",
			Input:      "mama gedhara yanavaa.",
			Expected:   "මම ගෙදර යනවා.",
			ShouldPass: true,
		},
		{
			ID:         "degraded-case",
			Name:       "documents a wrong translation",
			Input:      "mamagedharayanavaa",
			Expected:   "this is not what the translator produces",
			ShouldPass: false,
		},
	}
	require.NoError(t, scenarios.Validate(list))

	recorder, err := evidence.NewRecorder(t.TempDir(), profile.TargetURL)
	require.NoError(t, err)

	driver := browser.NewDriver(context.Background(), profile)
	defer driver.Close()

	results := RunTestSuite(driver, profile, list, nil, nil, recorder)

	// the degraded scenario must fail the run; ShouldPass never inverts it
	assert.False(t, results.OK())
	require.Len(t, results.Tests, 2)
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].TestID.String(), "degraded-case")

	// exactly one screenshot per executed scenario, pass and fail alike
	for _, sc := range list {
		_, err := os.Stat(filepath.Join(recorder.Dir(), sc.ID+".png"))
		assert.NoError(t, err, "screenshot for %s must exist", sc.ID)
	}

	entries := recorder.Entries()
	require.Len(t, entries, 2)
	byID := map[string]evidence.Entry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	assert.True(t, byID["basic-sentence"].Match)
	assert.Equal(t, "", byID["basic-sentence"].FailureKind)
	assert.False(t, byID["degraded-case"].Match)
	assert.Equal(t, "assertion", byID["degraded-case"].FailureKind)

	require.NoError(t, recorder.WriteReport())
	_, err = os.Stat(filepath.Join(recorder.Dir(), "report.html"))
	assert.NoError(t, err)
}

func TestSuiteIdempotenceAgainstUnchangedTarget(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/html; charset=utf-8")
	server := httptest.NewServer(httphelpers.HandlerWithResponse(200, headers, []byte(fakeTranslatorPage)))
	defer server.Close()

	profile := config.LocalProfile()
	profile.TargetURL = server.URL
	profile.SettleDelay = 100 * time.Millisecond
	profile.OutputTimeout = 3 * time.Second
	profile.PollInterval = 50 * time.Millisecond
	profile.StabilizeDelay = 100 * time.Millisecond

	list := []scenarios.Scenario{{
		ID:         "basic-sentence",
		Name:       "simple sentence with word spacing",
		Input:      "mama gedhara yanavaa.",
		Expected:   "මම ගෙදර යනවා.",
		ShouldPass: true,
	}}

	driver := browser.NewDriver(context.Background(), profile)
	defer driver.Close()

	var actuals []string
	for i := 0; i < 2; i++ {
		recorder, err := evidence.NewRecorder(t.TempDir(), profile.TargetURL)
		require.NoError(t, err)
		results := RunTestSuite(driver, profile, list, nil, nil, recorder)
		require.True(t, results.OK())
		entries := recorder.Entries()
		require.Len(t, entries, 1)
		actuals = append(actuals, entries[0].Actual)
	}
	assert.Equal(t, actuals[0], actuals[1])
}
