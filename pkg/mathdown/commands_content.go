package mathdown

import (
	"fmt"
	"math"
	"strings"
)

// exportFontSizes is the fixed (context, command) font size table
// consulted when no explicit fontsize override is supplied. Only the
// canonical export context has entries; sizes are in points and match
// the 14pt export document default.
var exportFontSizes = map[string]map[string]float64{
	ContextExport: {
		"problem": 14,
		"text":    12,
	},
}

// contentCommand implements the text-like commands (text, question,
// solution): plain content with layout parameters for indentation,
// font and vertical spacing.
type contentCommand struct {
	name   string
	params map[string]ParamSpec
}

func newTextCommand() *contentCommand {
	return &contentCommand{name: "text", params: contentParams()}
}

func newQuestionCommand() *contentCommand {
	return &contentCommand{name: "question", params: contentParams()}
}

func newSolutionCommand() *contentCommand {
	return &contentCommand{name: "solution", params: contentParams()}
}

func (c *contentCommand) Name() string { return c.name }

func (c *contentCommand) Params() map[string]ParamSpec { return c.params }

func (c *contentCommand) RenderMarkdown(content string, _ Params) string {
	return "#" + c.name + "\n" + content
}

func (c *contentCommand) RenderText(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	indent := strings.Repeat(" ", int(l.float("indent")*2))
	return indent + content
}

func (c *contentCommand) RenderLaTeX(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	return applyTemplate(rc.Template, l.all(), c.body(content, l, rc))
}

// body lays the content out between its vertical spacing, font
// directive and indentation.
func (c *contentCommand) body(content string, l paramLookup, rc *RenderContext) string {
	var b strings.Builder
	if above := l.float("spaceabove"); above > 0 {
		fmt.Fprintf(&b, "\\vspace{%sem}\n", formatFloat(above))
	}
	if dir := c.fontDirective(l, rc); dir != "" {
		b.WriteString(dir)
		b.WriteString("\n")
	}
	if indent := l.float("indent"); indent > 0 {
		fmt.Fprintf(&b, "\\hspace{%sem}", formatFloat(indent))
	}
	b.WriteString(content)
	fmt.Fprintf(&b, "\\par\n\\vspace{%sem}", formatFloat(l.float("vspace")))
	if below := l.float("spacebelow"); below > 0 {
		fmt.Fprintf(&b, "\n\\vspace{%sem}", formatFloat(below))
	}
	return b.String()
}

// fontDirective derives the LaTeX font switch for this block. The
// line spacing defaults to round(fontsize * 1.5) when not supplied.
func (c *contentCommand) fontDirective(l paramLookup, rc *RenderContext) string {
	size := c.fontSize(l, rc)
	family := familyDirective(l.str("fontfamily"))
	if size <= 0 {
		return family
	}
	spacing := l.float("linespacing")
	if spacing <= 0 {
		spacing = math.Round(size * 1.5)
	}
	return fmt.Sprintf("\\fontsize{%spt}{%spt}\\selectfont", formatFloat(size), formatFloat(spacing)) + family
}

// fontSize resolves the effective font size: an explicit override
// wins, then the (context, command) table, then the parameter default.
func (c *contentCommand) fontSize(l paramLookup, rc *RenderContext) float64 {
	if l.explicit("fontsize") {
		return l.float("fontsize")
	}
	if sizes, ok := exportFontSizes[rc.Context]; ok {
		if size, ok := sizes[c.name]; ok {
			return size
		}
	}
	return l.float("fontsize")
}

func familyDirective(family string) string {
	switch strings.ToLower(family) {
	case "serif", "roman":
		return "\\rmfamily"
	case "sans", "sans-serif":
		return "\\sffamily"
	case "mono", "typewriter":
		return "\\ttfamily"
	default:
		return ""
	}
}

// problemCommand is a content command with an extra bold switch.
type problemCommand struct {
	contentCommand
}

func newProblemCommand() *problemCommand {
	p := contentParams()
	p["bold"] = ParamSpec{
		Type:        "boolean",
		Description: "Whether to bold the problem statement",
		Default:     false,
	}
	return &problemCommand{contentCommand{name: "problem", params: p}}
}

func (c *problemCommand) RenderText(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	if l.boolean("bold") {
		return "**" + content + "**"
	}
	return c.contentCommand.RenderText(content, params, rc)
}

func (c *problemCommand) RenderLaTeX(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	if l.boolean("bold") {
		content = "\\textbf{" + content + "}"
	}
	return applyTemplate(rc.Template, l.all(), c.body(content, l, rc))
}

// configCommand is the document-level configuration directive. It
// produces no output in any format beyond the markdown echo; the
// compiler intercepts its block and applies the content to the
// resolver's document layer.
type configCommand struct{}

func newConfigCommand() *configCommand { return &configCommand{} }

func (c *configCommand) Name() string { return "config" }

func (c *configCommand) Params() map[string]ParamSpec { return map[string]ParamSpec{} }

func (c *configCommand) RenderMarkdown(content string, _ Params) string {
	return "#config\n" + content
}

func (c *configCommand) RenderText(string, Params, *RenderContext) string { return "" }

func (c *configCommand) RenderLaTeX(string, Params, *RenderContext) string { return "" }
