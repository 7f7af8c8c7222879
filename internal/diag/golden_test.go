package diag

import (
	"testing"

	"ash/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/main.ash", []byte("let a = 1;\nlet b = a;\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SemaDuplicateDefinition,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 main.ash:1:1 first line second\n" +
		"note SYN2001 main.ash:1:3 note line\n" +
		"warning SEM3001 main.ash:1:3 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatGoldenDiagnosticsEmpty(t *testing.T) {
	fs := source.NewFileSet()
	if got := FormatGoldenDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("expected empty string for no diagnostics, got %q", got)
	}
}

func TestFormatGoldenDiagnosticsOmitsNotes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	file := fs.Add("/workspace/main.ash", []byte("let a = 1;\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SemaUndefinedVariable,
			Message:  "undefined variable 'x'",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes:    []Note{{Span: source.Span{File: file, Start: 4, End: 5}, Msg: "did you mean 'a'?"}},
		},
	}

	expected := "error SEM3005 main.ash:1:1 undefined variable 'x'"
	if got := FormatGoldenDiagnostics(diags, fs, false); got != expected {
		t.Fatalf("unexpected output with includeNotes=false:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
