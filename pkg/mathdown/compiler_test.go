package mathdown

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/CTAG07/texforge/pkg/config"
)

func setupCompiler(tb testing.TB) (*Compiler, *config.Resolver) {
	tb.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := config.NewResolver(logger)
	return NewCompiler(logger, NewCatalog(), resolver), resolver
}

func TestCompilePreview(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#problem\nSolve 2x=4\n#eq\nx=2", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "\\medskip\\mydefaultsize\nSolve 2x=4\\par\n\\vspace{1em}" +
		"\n\n" +
		"\\medskip\\mydefaultsize\n$$ x=2 $$"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompileExportFontSizes(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#problem\nP\n#text\nT", ContextExport)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "\\medskip\\mydefaultsize\n\\fontsize{14pt}{21pt}\\selectfont\nP\\par\n\\vspace{1em}" +
		"\n\n" +
		"\\medskip\\mydefaultsize\n\\fontsize{12pt}{18pt}\\selectfont\nT\\par\n\\vspace{1em}"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompileExplicitFontSizeWins(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#problem{fontsize:10}\nP", ContextExport)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if !strings.Contains(got, "\\fontsize{10pt}{15pt}\\selectfont") {
		t.Errorf("Compile() = %q, want explicit 10pt size", got)
	}
}

func TestCompileParamOverrides(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#text{indent:2, vspace:0.5}\nT", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "\\medskip\\mydefaultsize\n\\hspace{2em}T\\par\n\\vspace{0.5em}"
	if got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}

func TestCompileGrouping(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#enum\nfirst\n#enum\nsecond\n#text\nafter", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "\\begin{enumerate}[label={\\alph*)}]" +
		"\n\n\\item first\n\\vspace{1em}" +
		"\n\n\\item second\n\\vspace{1em}" +
		"\n\n\\end{enumerate}" +
		"\n\n\\medskip\\mydefaultsize\nafter\\par\n\\vspace{1em}"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompileGroupClosedAtEOF(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#bullet\none", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "\\begin{itemize}\n\n\\item one\n\\vspace{1em}\n\n\\end{itemize}"
	if got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
	if strings.Count(got, "\\begin{itemize}") != 1 || strings.Count(got, "\\end{itemize}") != 1 {
		t.Errorf("Compile() = %q, want exactly one wrapper pair", got)
	}
}

func TestCompileGroupSwitch(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#enum\na\n#bullet\nb", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "\\begin{enumerate}[label={\\alph*)}]" +
		"\n\n\\item a\n\\vspace{1em}" +
		"\n\n\\end{enumerate}\n\n\\begin{itemize}" +
		"\n\n\\item b\n\\vspace{1em}" +
		"\n\n\\end{itemize}"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompileEnumNumericFormat(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#enum{format:\"1.\"}\nfirst", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if !strings.HasPrefix(got, "\\begin{enumerate}[label={\\arabic*.}]") {
		t.Errorf("Compile() = %q, want arabic label", got)
	}
}

func TestCompileEnumCounterPerCall(t *testing.T) {
	c, _ := setupCompiler(t)

	// Counters are session scoped; a second call starts over, so both
	// outputs are identical.
	first, err := c.Compile("#enum\na\n#enum\nb", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	second, err := c.Compile("#enum\na\n#enum\nb", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if first != second {
		t.Errorf("repeated compile diverged:\n%q\n%q", first, second)
	}
}

func TestCompileUnknownCommand(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#problem\nok\n#nope\nx", ContextPreview)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command: #nope") {
		t.Errorf("error = %v, want to name #nope", err)
	}
	if got != "" {
		t.Errorf("Compile() = %q, want no partial output", got)
	}
}

func TestCompileConfigBlock(t *testing.T) {
	c, resolver := setupCompiler(t)

	input := "#config\n" +
		`{"variables": {"default_format": "\\tiny"}, "commands": {"note": {"latex_template": "\\fbox{#CONTENT#}"}}}` +
		"\n#note\nHello\n#text\nT"
	got, err := c.Compile(input, ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "\\fbox{Hello}\n\n\\tiny\nT\\par\n\\vspace{1em}"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}
	if !resolver.HasCommand("note") {
		t.Error("config block did not register note with the resolver")
	}
}

func TestCompileRuntimeRegisteredCommand(t *testing.T) {
	c, resolver := setupCompiler(t)
	resolver.RegisterCommand("note", config.CommandDef{Template: "#CONTENT#"})

	got, err := c.Compile("#note\nHello\n", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if got != "Hello" {
		t.Errorf("Compile() = %q, want Hello", got)
	}
}

func TestCompileMalformedConfigBlock(t *testing.T) {
	c, resolver := setupCompiler(t)
	before := resolver.Snapshot()

	_, err := c.Compile("#config\n{not json\n#text\nT", ContextPreview)
	if err == nil {
		t.Fatal("expected error for malformed config block")
	}
	after := resolver.Snapshot()
	if before.Variables["default_format"] != after.Variables["default_format"] {
		t.Error("failed compile mutated resolver state")
	}
}

func TestCompilePercentEscaping(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("#text\n50% off, already \\% escaped", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if !strings.Contains(got, "50\\% off, already \\% escaped") {
		t.Errorf("Compile() = %q, want percent signs escaped exactly once", got)
	}
}

func TestCompileEmptyInput(t *testing.T) {
	c, _ := setupCompiler(t)

	got, err := c.Compile("", ContextPreview)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if got != "" {
		t.Errorf("Compile(\"\") = %q, want empty output", got)
	}
}
