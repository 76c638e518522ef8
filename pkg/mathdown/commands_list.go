package mathdown

import (
	"fmt"
	"strconv"
	"strings"
)

// bulletCommand is the grouping bullet item. The itemize wrapper is
// emitted by the compiler, once per run of consecutive items.
type bulletCommand struct {
	name   string
	params map[string]ParamSpec
}

func newBulletCommand() *bulletCommand {
	return &bulletCommand{name: "bullet", params: baseParams()}
}

func (c *bulletCommand) Name() string { return c.name }

func (c *bulletCommand) Params() map[string]ParamSpec { return c.params }

func (c *bulletCommand) RenderMarkdown(content string, _ Params) string {
	return "#" + c.name + "\n" + content
}

func (c *bulletCommand) RenderText(content string, _ Params, _ *RenderContext) string {
	return "- " + content
}

func (c *bulletCommand) RenderLaTeX(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	body := fmt.Sprintf("%s\n\\vspace{%sem}", content, formatFloat(l.float("vspace")))
	return applyTemplate(rc.Template, l.all(), body)
}

func (c *bulletCommand) GroupEnv(_ Params) (string, string) {
	return "\\begin{itemize}", "\\end{itemize}"
}

// enumCommand is the grouping enumerated item. It advances the
// session counter on every render call; the marker pattern only shows
// up in text rendering, while LaTeX items take their labels from the
// enumerate wrapper.
type enumCommand struct {
	bulletCommand
}

func newEnumCommand() *enumCommand {
	p := baseParams()
	p["format"] = ParamSpec{
		Type:        "string",
		Description: "Enumeration marker format (a), 1., ...)",
		Default:     "a)",
	}
	return &enumCommand{bulletCommand{name: "enum", params: p}}
}

func (c *enumCommand) RenderText(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	marker := markerText(l.str("format"), rc.Enum.Next())
	return marker + " " + content
}

func (c *enumCommand) RenderLaTeX(content string, params Params, rc *RenderContext) string {
	rc.Enum.Next()
	return c.bulletCommand.RenderLaTeX(content, params, rc)
}

func (c *enumCommand) GroupEnv(params Params) (string, string) {
	format := toString(params["format"], "a)")
	return "\\begin{enumerate}[label={" + enumLabel(format) + "}]", "\\end{enumerate}"
}

// markerText substitutes the counter into a marker pattern: a literal
// 'a' becomes the counter as a lowercase letter, a literal '1' its
// decimal value; a pattern with neither is used unchanged.
func markerText(pattern string, n int) string {
	switch {
	case strings.Contains(pattern, "a"):
		return strings.Replace(pattern, "a", string(rune('a'+n-1)), 1)
	case strings.Contains(pattern, "1"):
		return strings.Replace(pattern, "1", strconv.Itoa(n), 1)
	default:
		return pattern
	}
}

// enumLabel maps a marker pattern to an enumitem label specification.
func enumLabel(pattern string) string {
	switch {
	case strings.Contains(pattern, "a"):
		return strings.Replace(pattern, "a", "\\alph*", 1)
	case strings.Contains(pattern, "1"):
		return strings.Replace(pattern, "1", "\\arabic*", 1)
	default:
		return pattern
	}
}
