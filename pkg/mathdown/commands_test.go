package mathdown

import (
	"strings"
	"testing"
)

func previewContext(template string) *RenderContext {
	return &RenderContext{
		Context:  ContextPreview,
		Template: template,
		Enum:     &EnumState{},
	}
}

func TestEnumMarkers(t *testing.T) {
	cases := []struct {
		pattern string
		n       int
		want    string
	}{
		{"a)", 1, "a)"},
		{"a)", 2, "b)"},
		{"a.", 26, "z."},
		{"1.", 1, "1."},
		{"1)", 12, "12)"},
		{"-", 3, "-"},
	}
	for _, tc := range cases {
		if got := markerText(tc.pattern, tc.n); got != tc.want {
			t.Errorf("markerText(%q, %d) = %q, want %q", tc.pattern, tc.n, got, tc.want)
		}
	}
}

func TestEnumLabels(t *testing.T) {
	cases := []struct{ pattern, want string }{
		{"a)", "\\alph*)"},
		{"a.", "\\alph*."},
		{"1.", "\\arabic*."},
		{"1)", "\\arabic*)"},
		{"-", "-"},
	}
	for _, tc := range cases {
		if got := enumLabel(tc.pattern); got != tc.want {
			t.Errorf("enumLabel(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestEnumStateAdvancesAndResets(t *testing.T) {
	cmd := newEnumCommand()
	rc := previewContext("\\item #CONTENT#")

	if got := cmd.RenderText("first", nil, rc); got != "a) first" {
		t.Errorf("first item = %q", got)
	}
	if got := cmd.RenderText("second", nil, rc); got != "b) second" {
		t.Errorf("second item = %q", got)
	}

	rc.Enum.Reset()
	if got := cmd.RenderText("again", nil, rc); got != "a) again" {
		t.Errorf("item after reset = %q", got)
	}
}

func TestEnumLaTeXAdvancesCounter(t *testing.T) {
	cmd := newEnumCommand()
	rc := previewContext("\\item #CONTENT#")

	if got := cmd.RenderLaTeX("x", nil, rc); got != "\\item x\n\\vspace{1em}" {
		t.Errorf("RenderLaTeX() = %q", got)
	}
	if rc.Enum.Counter != 1 {
		t.Errorf("counter = %d, want 1", rc.Enum.Counter)
	}
}

func TestContentFontDirective(t *testing.T) {
	cmd := newTextCommand()

	got := cmd.RenderLaTeX("T", Params{"fontsize": 11.0}, previewContext("#CONTENT#"))
	if !strings.Contains(got, "\\fontsize{11pt}{17pt}\\selectfont") {
		t.Errorf("RenderLaTeX() = %q, want derived 17pt line spacing", got)
	}

	got = cmd.RenderLaTeX("T", Params{"fontsize": 11.0, "linespacing": 13.0}, previewContext("#CONTENT#"))
	if !strings.Contains(got, "\\fontsize{11pt}{13pt}\\selectfont") {
		t.Errorf("RenderLaTeX() = %q, want explicit 13pt line spacing", got)
	}

	got = cmd.RenderLaTeX("T", Params{"fontfamily": "mono"}, previewContext("#CONTENT#"))
	if !strings.Contains(got, "\\ttfamily") {
		t.Errorf("RenderLaTeX() = %q, want \\ttfamily", got)
	}
	if strings.Contains(got, "\\fontsize") {
		t.Errorf("RenderLaTeX() = %q, family alone must not set a size", got)
	}
}

func TestContentSpacingParams(t *testing.T) {
	cmd := newTextCommand()

	got := cmd.RenderLaTeX("T", Params{"spaceabove": 2.0, "spacebelow": 1.5}, previewContext("#CONTENT#"))
	want := "\\vspace{2em}\nT\\par\n\\vspace{1em}\n\\vspace{1.5em}"
	if got != want {
		t.Errorf("RenderLaTeX() = %q, want %q", got, want)
	}
}

func TestProblemBold(t *testing.T) {
	cmd := newProblemCommand()
	rc := previewContext("#CONTENT#")

	if got := cmd.RenderLaTeX("P", Params{"bold": true}, rc); !strings.Contains(got, "\\textbf{P}") {
		t.Errorf("RenderLaTeX() = %q, want bold content", got)
	}
	if got := cmd.RenderText("P", Params{"bold": true}, rc); got != "**P**" {
		t.Errorf("RenderText() = %q", got)
	}
	if got := cmd.RenderLaTeX("P", nil, rc); strings.Contains(got, "\\textbf") {
		t.Errorf("RenderLaTeX() = %q, bold off by default", got)
	}
}

func TestRenderMarkdownEchoesSource(t *testing.T) {
	for _, cmd := range []Command{newTextCommand(), newEqCommand(), newBulletCommand()} {
		want := "#" + cmd.Name() + "\ncontent"
		if got := cmd.RenderMarkdown("content", nil); got != want {
			t.Errorf("%s markdown = %q, want %q", cmd.Name(), got, want)
		}
	}
}

func TestRenderTextIndent(t *testing.T) {
	cmd := newTextCommand()
	rc := previewContext("")

	if got := cmd.RenderText("T", Params{"indent": 2.0}, rc); got != "    T" {
		t.Errorf("RenderText() = %q", got)
	}
}

func TestApplyTemplatePlaceholders(t *testing.T) {
	params := Params{"align": "center", "numbering": true}

	got := applyTemplate("[#ALIGN#|#numbering#] #CONTENT#", params, "x=2")
	if got != "[center|true] x=2" {
		t.Errorf("applyTemplate() = %q", got)
	}
	if got = applyTemplate("", params, "x=2"); got != "x=2" {
		t.Errorf("applyTemplate(empty) = %q, want bare body", got)
	}
}

func TestMissingContentRendersStructure(t *testing.T) {
	cmd := newEqCommand()
	rc := previewContext("$$ #CONTENT# $$")

	if got := cmd.RenderLaTeX("", nil, rc); got != "$$  $$" {
		t.Errorf("RenderLaTeX(\"\") = %q", got)
	}
}

func TestCatalogBuiltins(t *testing.T) {
	c := NewCatalog()

	for _, name := range []string{"problem", "solution", "question", "text", "eq", "math", "align", "config", "bullet", "enum"} {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("builtin %q missing from catalog", name)
		}
	}
	if _, ok := c.Lookup("nope"); ok {
		t.Error("unexpected catalog entry nope")
	}
	names := c.Names()
	if len(names) != 10 {
		t.Errorf("Names() = %v, want 10 builtins", names)
	}
}
