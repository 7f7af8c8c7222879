// Package diagfmt renders a diag.Bag for humans: colorized terminal output
// keyed off github.com/fatih/color and golang.org/x/term.IsTerminal for the
// CLI, plus the plain golden-file rendering diag.FormatGoldenDiagnostics
// already covers for tests.
package diagfmt

// PrettyOpts configures Pretty's rendering.
type PrettyOpts struct {
	// Color enables ANSI coloring of severities and the caret underline.
	Color bool
	// Context is the number of source lines to show around the primary
	// span. 0 shows only the offending line.
	Context int
	// Max caps how many diagnostics are rendered; 0 means unlimited.
	Max int
}
