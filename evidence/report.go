package evidence

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const reportTimeFormat = "2006-01-02 15:04:05 MST"

var reportRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown produces the run report as GitHub-flavored markdown: a
// summary header, a result table, and a details section per failed scenario.
func (r *Recorder) RenderMarkdown() string {
	entries := r.Entries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	passed := 0
	for _, e := range entries {
		if e.Match && e.FailureKind == "" {
			passed++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Singlish translation run report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", r.runID)
	fmt.Fprintf(&b, "- Started: %s\n", r.started.Format(reportTimeFormat))
	fmt.Fprintf(&b, "- Target: %s\n", r.target)
	fmt.Fprintf(&b, "- Result: %d/%d scenarios passed\n\n", passed, len(entries))

	b.WriteString("| Scenario | Name | Status | Author intent | Match |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range entries {
		status := "PASS"
		if !e.Match || e.FailureKind != "" {
			status = "FAIL"
			if e.FailureKind != "" && e.FailureKind != "assertion" {
				status = "FAIL (" + e.FailureKind + ")"
			}
		}
		intent := "should pass"
		if !e.ShouldPass {
			intent = "expected to fail"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %v |\n", e.ID, e.Name, status, intent, e.Match)
	}

	for _, e := range entries {
		if e.Match && e.FailureKind == "" {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", e.ID)
		fmt.Fprintf(&b, "- Input: `%s`\n", e.Input)
		fmt.Fprintf(&b, "- Expected: `%s`\n", e.Expected)
		fmt.Fprintf(&b, "- Actual: `%s`\n", e.Actual)
		if e.Error != "" {
			fmt.Fprintf(&b, "- Error: %s\n", e.Error)
		}
		if e.Screenshot != "" {
			fmt.Fprintf(&b, "- Screenshot: [%s](%s)\n", filepath.Base(e.Screenshot), filepath.Base(e.Screenshot))
		}
	}
	return b.String()
}

// WriteReport writes report.md and its HTML rendering, report.html, into the
// evidence directory.
func (r *Recorder) WriteReport() error {
	md := r.RenderMarkdown()
	mdPath := filepath.Join(r.dir, "report.md")
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mdPath, err)
	}

	var html bytes.Buffer
	html.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Singlish translation run report</title></head><body>\n")
	if err := reportRenderer.Convert([]byte(md), &html); err != nil {
		return fmt.Errorf("rendering report HTML: %w", err)
	}
	html.WriteString("</body></html>\n")

	htmlPath := filepath.Join(r.dir, "report.html")
	if err := os.WriteFile(htmlPath, html.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	return nil
}
