package mathdown

import "github.com/CTAG07/texforge/pkg/config"

// templateCommand backs commands registered at runtime through the
// configuration layer. It has no behavior of its own beyond template
// application; everything it does is driven by its registered
// definition.
type templateCommand struct {
	name   string
	params map[string]ParamSpec
}

// newTemplateCommand builds a catalog entry from a registered command
// definition. The declared parameters are carried over so overrides
// and placeholder substitution behave like they do for builtins.
func newTemplateCommand(name string, def config.CommandDef) *templateCommand {
	params := baseParams()
	for pname, pdef := range def.Parameters {
		params[pname] = ParamSpec{
			Type:        pdef.Type,
			Description: pdef.Description,
			Default:     pdef.Default,
		}
	}
	return &templateCommand{name: name, params: params}
}

func (c *templateCommand) Name() string { return c.name }

func (c *templateCommand) Params() map[string]ParamSpec { return c.params }

func (c *templateCommand) RenderMarkdown(content string, _ Params) string {
	return "#" + c.name + "\n" + content
}

func (c *templateCommand) RenderText(content string, _ Params, _ *RenderContext) string {
	return content
}

func (c *templateCommand) RenderLaTeX(content string, params Params, rc *RenderContext) string {
	l := newLookup(c.params, params, rc)
	return applyTemplate(rc.Template, l.all(), content)
}
