package mathdown

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CTAG07/texforge/pkg/config"
)

// Compiler converts a raw block-markup document into one concatenated
// LaTeX string. The catalog supplies render logic, the resolver the
// templates and configuration-level parameter defaults. Each Compile
// call owns its own session state, so calls are independent.
type Compiler struct {
	logger   *slog.Logger
	catalog  *Catalog
	resolver *config.Resolver
}

func NewCompiler(logger *slog.Logger, catalog *Catalog, resolver *config.Resolver) *Compiler {
	return &Compiler{logger: logger, catalog: catalog, resolver: resolver}
}

// Compile parses input and renders every block to LaTeX in source
// order, joined by blank lines, without a document preamble. A config
// block's content is applied to the resolver's document layer before
// any rendering. An unknown command name fails the whole call with no
// output and no resolver mutation.
func (c *Compiler) Compile(input, context string) (string, error) {
	blocks := splitBlocks(preprocess(input))

	doc, err := collectDocConfig(blocks)
	if err != nil {
		return "", err
	}
	for _, b := range blocks {
		if c.known(b.Command, doc) {
			continue
		}
		return "", fmt.Errorf("unknown command: #%s", b.Command)
	}
	if doc != nil {
		c.resolver.SetDocument(*doc)
		c.logger.Debug("applied document configuration",
			slog.Int("variables", len(doc.Variables)),
			slog.Int("commands", len(doc.Commands)),
		)
	}

	var (
		fragments []string
		sess      session
	)
	for _, b := range blocks {
		if b.Command == "config" {
			continue
		}
		cmd := c.lookup(b.Command)
		rc := &RenderContext{
			Context:  context,
			Template: c.resolver.Template(b.Command),
			Defaults: c.configDefaults(b.Command),
			Enum:     &sess.enum,
		}
		if gc, ok := cmd.(GroupCommand); ok {
			open, close := gc.GroupEnv(rc.Defaults.merged(b.Params))
			if wrap := sess.enterGroup(open, close); wrap != "" {
				fragments = append(fragments, wrap)
			}
		} else if wrap := sess.leaveGroup(); wrap != "" {
			fragments = append(fragments, wrap)
		}
		fragments = append(fragments, cmd.RenderLaTeX(b.Content, b.Params, rc))
	}
	if wrap := sess.leaveGroup(); wrap != "" {
		fragments = append(fragments, wrap)
	}

	return strings.Join(fragments, "\n\n"), nil
}

// known reports whether name is renderable: a catalog entry, a
// resolved configuration command, or a command the pending document
// configuration is about to register.
func (c *Compiler) known(name string, doc *config.Data) bool {
	if _, ok := c.catalog.Lookup(name); ok {
		return true
	}
	if c.resolver.HasCommand(name) {
		return true
	}
	if doc != nil {
		_, ok := doc.Commands[name]
		return ok
	}
	return false
}

// lookup returns the render logic for a command: the catalog entry
// when one exists, otherwise a template command synthesized from the
// resolved configuration. Compile validated the name already.
func (c *Compiler) lookup(name string) Command {
	if cmd, ok := c.catalog.Lookup(name); ok {
		return cmd
	}
	def, _ := c.resolver.Command(name)
	return newTemplateCommand(name, def)
}

// configDefaults extracts the configuration-level parameter defaults
// for one command. They sit between explicit overrides and the
// command's declared defaults in the lookup chain.
func (c *Compiler) configDefaults(name string) Params {
	def, ok := c.resolver.Command(name)
	if !ok || len(def.Parameters) == 0 {
		return nil
	}
	defaults := make(Params, len(def.Parameters))
	for pname, p := range def.Parameters {
		if p.Default != nil {
			defaults[pname] = p.Default
		}
	}
	return defaults
}

// collectDocConfig parses every config block into one document
// configuration. Later blocks overlay earlier ones. A malformed block
// fails the call before any state changes.
func collectDocConfig(blocks []Block) (*config.Data, error) {
	var doc *config.Data
	for _, b := range blocks {
		if b.Command != "config" {
			continue
		}
		var data config.Data
		if err := json.Unmarshal([]byte(b.Content), &data); err != nil {
			return nil, fmt.Errorf("parse document config block: %w", err)
		}
		if doc == nil {
			doc = &config.Data{
				Variables: map[string]string{},
				Commands:  map[string]config.CommandDef{},
			}
		}
		for name, value := range data.Variables {
			doc.Variables[name] = value
		}
		for name, cmd := range data.Commands {
			doc.Commands[name] = cmd
		}
	}
	return doc, nil
}

// merged overlays explicit overrides on the configuration defaults.
// Used only for group environment selection, where the wrapper is
// shared and takes the first item's parameters.
func (p Params) merged(overrides Params) Params {
	if len(overrides) == 0 {
		return p
	}
	out := make(Params, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// session is the per-compile grouping state machine plus the shared
// enumeration counter.
type session struct {
	enum      EnumState
	groupOpen string
	close     string
}

// enterGroup transitions into a wrapper environment. Returns the
// wrapper text to emit before the item: the opening wrapper on a new
// group, preceded by the previous group's closer when the environment
// changes, or nothing while the group continues. A new group resets
// the enumeration counter.
func (s *session) enterGroup(open, close string) string {
	if s.groupOpen == open {
		return ""
	}
	prev := ""
	if s.groupOpen != "" {
		prev = s.close + "\n\n"
	}
	s.groupOpen = open
	s.close = close
	s.enum.Reset()
	return prev + open
}

// leaveGroup closes any open wrapper and returns its closing text.
func (s *session) leaveGroup() string {
	if s.groupOpen == "" {
		return ""
	}
	close := s.close
	s.groupOpen, s.close = "", ""
	return close
}

// preprocess strips trailing whitespace per line and escapes every
// unescaped % so stray comment characters cannot swallow output.
func preprocess(input string) string {
	if input == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] == '%' && (i == 0 || input[i-1] != '\\') {
			b.WriteString("\\%")
			continue
		}
		b.WriteByte(input[i])
	}
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
