package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ash/internal/diag"
	"ash/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.FgHiBlack)
	caretColor   = color.New(color.FgRed, color.Bold)
)

// Pretty renders every diagnostic in bag to w as
//
//	path:line:col: SEVERITY CODE: message
//	    <source line>
//	    ^~~~~~
//	    note: ...
//
// Callers are expected to have called bag.Sort() first so output order is
// deterministic. opts.Color gates ANSI escapes; the CLI sets it from
// `--color on|off`, else from ashconfig.toml's [output].color, else from
// golang.org/x/term.IsTerminal on the destination.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && n > opts.Max {
		n = opts.Max
	}
	for i := 0; i < n; i++ {
		printDiagnostic(w, &items[i], fs, opts)
	}
	if opts.Max > 0 && len(items) > opts.Max {
		fmt.Fprintf(w, "... %d more diagnostic(s) omitted\n", len(items)-opts.Max)
	}
}

func printDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sevLabel, sevColor := severityLabel(d.Severity)
	path := file.FormatPath("auto", fs.BaseDir())

	header := fmt.Sprintf("%s:%d:%d: ", path, start.Line, start.Col)
	fmt.Fprint(w, header)
	writeColored(w, opts.Color, sevColor, sevLabel)
	fmt.Fprint(w, " ")
	writeColored(w, opts.Color, codeColor, d.Code.ID())
	fmt.Fprintf(w, ": %s\n", d.Message)

	printSourceContext(w, file, start, end, opts)

	for _, note := range d.Notes {
		nStart, _ := fs.Resolve(note.Span)
		nFile := fs.Get(note.Span.File)
		fmt.Fprintf(w, "    %s:%d:%d: note: %s\n", nFile.FormatPath("auto", fs.BaseDir()), nStart.Line, nStart.Col, note.Msg)
	}
}

func printSourceContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	ctx := opts.Context
	firstLine := start.Line
	if uint32(ctx) < firstLine {
		firstLine -= uint32(ctx)
	} else {
		firstLine = 1
	}
	lastLine := end.Line + uint32(ctx)

	for line := firstLine; line <= lastLine; line++ {
		text := file.GetLine(line)
		if text == "" && line != start.Line {
			continue
		}
		fmt.Fprintf(w, "%5d | %s\n", line, text)
		if line == start.Line {
			printCaret(w, text, start, end, opts)
		}
	}
}

func printCaret(w io.Writer, line string, start, end source.LineCol, opts PrettyOpts) {
	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	width := int(end.Col) - int(start.Col)
	if end.Line != start.Line || width < 1 {
		width = 1
	}

	pad := strings.Repeat(" ", col-1)
	caret := "^" + strings.Repeat("~", width-1)
	fmt.Fprint(w, "      | ", pad)
	writeColored(w, opts.Color, caretColor, caret)
	fmt.Fprintln(w)
}

func severityLabel(sev diag.Severity) (string, *color.Color) {
	switch sev {
	case diag.SevError:
		return "error", errorColor
	case diag.SevWarning:
		return "warning", warningColor
	default:
		return "info", infoColor
	}
}

func writeColored(w io.Writer, useColor bool, c *color.Color, s string) {
	if !useColor {
		fmt.Fprint(w, s)
		return
	}
	c.Fprint(w, s)
}
