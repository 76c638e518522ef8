package mathdown

// mathCommand implements the equation commands (eq, math, align).
// Layout lives entirely in their configuration templates; the body is
// the raw math content, never escaped.
type mathCommand struct {
	name   string
	params map[string]ParamSpec
}

func newEqCommand() *mathCommand {
	p := baseParams()
	p["align"] = ParamSpec{
		Type:        "string",
		Description: "Text alignment",
		Default:     "left",
	}
	p["numbering"] = ParamSpec{
		Type:        "boolean",
		Description: "Whether the equation is numbered",
		Default:     false,
	}
	return &mathCommand{name: "eq", params: p}
}

func newMathCommand() *mathCommand {
	return &mathCommand{name: "math", params: baseParams()}
}

func newAlignCommand() *mathCommand {
	return &mathCommand{name: "align", params: baseParams()}
}

func (c *mathCommand) Name() string { return c.name }

func (c *mathCommand) Params() map[string]ParamSpec { return c.params }

func (c *mathCommand) RenderMarkdown(content string, _ Params) string {
	return "#" + c.name + "\n" + content
}

func (c *mathCommand) RenderText(content string, _ Params, _ *RenderContext) string {
	return content
}

func (c *mathCommand) RenderLaTeX(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	return applyTemplate(rc.Template, l.all(), content)
}
