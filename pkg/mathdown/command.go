package mathdown

import "strings"

// Rendering context tags. Export is the canonical context; it selects
// fixed font sizes for some commands (see exportFontSizes).
const (
	ContextExport  = "export"
	ContextPreview = "preview"
)

// EnumState is the enumeration counter shared by the enum renderer
// within one compile session. Sessions own their own state, so
// repeated or concurrent parses never leak counters into each other.
type EnumState struct {
	Counter int
}

// Next advances the counter and returns its new value.
func (s *EnumState) Next() int {
	s.Counter++
	return s.Counter
}

// Reset rewinds the counter to zero.
func (s *EnumState) Reset() {
	s.Counter = 0
}

// RenderContext carries the per-call rendering inputs that are not
// part of the block itself: the context tag, the command's resolved
// LaTeX template, configuration-level parameter defaults, and the
// session enumeration state.
type RenderContext struct {
	Context  string
	Template string
	Defaults Params
	Enum     *EnumState
}

// Command is the contract every catalog entry satisfies: a declared
// parameter set plus one render function per target format. Only the
// LaTeX contract performs nontrivial computation; markdown echoes the
// source form and text produces a plain rendition. Missing content
// never fails; it renders as an empty region inside the command's
// structural output.
type Command interface {
	Name() string
	Params() map[string]ParamSpec
	RenderMarkdown(content string, params Params) string
	RenderText(content string, params Params, rc *RenderContext) string
	RenderLaTeX(content string, params Params, rc *RenderContext) string
}

// GroupCommand marks commands whose consecutive blocks share one
// wrapper environment, and supplies that environment's opening and
// closing text.
type GroupCommand interface {
	Command
	GroupEnv(params Params) (open, close string)
}

// applyTemplate substitutes the single supported placeholder syntax
// into a resolved template: #param#/#PARAM# placeholders first, then
// the #CONTENT# placeholder. An empty template yields the body alone.
func applyTemplate(template string, params Params, body string) string {
	if template == "" {
		return body
	}
	result := template
	for name, value := range params {
		v := formatValue(value)
		result = strings.ReplaceAll(result, "#"+strings.ToLower(name)+"#", v)
		result = strings.ReplaceAll(result, "#"+strings.ToUpper(name)+"#", v)
	}
	return strings.ReplaceAll(result, "#CONTENT#", body)
}
