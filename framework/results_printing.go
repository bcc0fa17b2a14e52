package framework

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	passColor    = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed, color.Bold)
	skipColor    = color.New(color.FgYellow)
	detailsColor = color.New(color.Faint)
)

// PrintResults writes a human-readable summary of the run to standard output:
// totals, then every failed test with its errors.
func PrintResults(results Results) {
	executed := len(results.Tests) - len(results.Skipped)
	if results.OK() {
		passColor.Printf("All tests passed (%d tests", executed)
	} else {
		failColor.Printf("%d tests failed (out of %d", len(results.Failures), executed)
	}
	if len(results.Skipped) > 0 {
		skipColor.Printf(", %d skipped", len(results.Skipped))
	}
	fmt.Println(")")

	for _, f := range results.Failures {
		fmt.Println()
		failColor.Printf("FAILED: %s\n", f.TestID)
		for _, err := range f.Errors {
			detailsColor.Println(indentLines(err.Error(), "  "))
		}
	}
}

func indentLines(s, indent string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// reformatError cleans up multi-line assertion failure messages (such as the
// ones testify produces, which assume they will be printed by the Go test
// runner) so they are readable in our console output.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var out []string
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// testify prefixes every line with tab-aligned padding
		out = append(out, strings.TrimLeft(line, " \t"))
	}
	return fmt.Errorf("%s", strings.Join(out, "\n"))
}
