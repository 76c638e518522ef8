package mathdown

import (
	"sort"
	"sync"

	"github.com/CTAG07/texforge/pkg/config"
)

// Catalog holds the renderable command set: the builtins plus any
// commands registered through the configuration layer.
type Catalog struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewCatalog returns a catalog populated with the builtin commands.
func NewCatalog() *Catalog {
	c := &Catalog{commands: make(map[string]Command)}
	for _, cmd := range []Command{
		newProblemCommand(),
		newSolutionCommand(),
		newQuestionCommand(),
		newTextCommand(),
		newEqCommand(),
		newMathCommand(),
		newAlignCommand(),
		newConfigCommand(),
		newBulletCommand(),
		newEnumCommand(),
	} {
		c.commands[cmd.Name()] = cmd
	}
	return c
}

// Lookup returns the command registered under name.
func (c *Catalog) Lookup(name string) (Command, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cmd, ok := c.commands[name]
	return cmd, ok
}

// Register adds or replaces a template-driven command built from a
// configuration definition. Builtins may be shadowed; their resolved
// templates still apply, so shadowing only swaps the render logic.
func (c *Catalog) Register(name string, def config.CommandDef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands[name] = newTemplateCommand(name, def)
}

// Names returns the registered command names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
