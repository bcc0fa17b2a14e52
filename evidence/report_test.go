package evidence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorderWithEntries(t *testing.T) *Recorder {
	rec, err := NewRecorder(t.TempDir(), "http://example.test/")
	require.NoError(t, err)
	rec.Record(Entry{
		ID:         "basic-sentence",
		Name:       "simple sentence with word spacing",
		Input:      "mama gedhara yanavaa.",
		Expected:   "මම ගෙදර යනවා.",
		Actual:     "මම ගෙදර යනවා.",
		Match:      true,
		ShouldPass: true,
		Screenshot: "basic-sentence.png",
	})
	rec.Record(Entry{
		ID:          "no-word-spacing",
		Name:        "sentence without word spacing",
		Input:       "mamagedharayanavaa",
		Expected:    "මම ගෙදර යනවා",
		Actual:      "මමගෙදරයනවා",
		Match:       false,
		ShouldPass:  false,
		FailureKind: "assertion",
		Screenshot:  "no-word-spacing.png",
	})
	rec.Record(Entry{
		ID:          "marker-gone",
		Name:        "structural failure case",
		Input:       "mama",
		Expected:    "මම",
		Match:       false,
		ShouldPass:  true,
		FailureKind: "setup",
		Error:       "output marker not found in page",
	})
	return rec
}

func TestRenderMarkdownSummarizesRun(t *testing.T) {
	rec := recorderWithEntries(t)
	md := rec.RenderMarkdown()

	assert.Contains(t, md, rec.RunID())
	assert.Contains(t, md, "1/3 scenarios passed")
	assert.Contains(t, md, "| `basic-sentence` |")
	assert.Contains(t, md, "FAIL (setup)")
	assert.Contains(t, md, "expected to fail")
	// failed scenarios get a details section, passing ones do not
	assert.Contains(t, md, "## no-word-spacing")
	assert.NotContains(t, md, "## basic-sentence")
}

func TestWriteReportProducesMarkdownAndHTML(t *testing.T) {
	rec := recorderWithEntries(t)
	require.NoError(t, rec.WriteReport())

	mdData, err := os.ReadFile(filepath.Join(rec.Dir(), "report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(mdData), "# Singlish translation run report")

	htmlFile, err := os.Open(filepath.Join(rec.Dir(), "report.html"))
	require.NoError(t, err)
	defer htmlFile.Close()

	doc, err := goquery.NewDocumentFromReader(htmlFile)
	require.NoError(t, err)

	assert.Equal(t, "Singlish translation run report", doc.Find("h1").First().Text())

	// one header row plus one row per scenario
	rows := doc.Find("table tr")
	assert.Equal(t, 4, rows.Length())

	var statuses []string
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		statuses = append(statuses, strings.TrimSpace(row.Find("td").Eq(2).Text()))
	})
	assert.Equal(t, []string{"PASS", "FAIL (setup)", "FAIL"}, statuses)
}
