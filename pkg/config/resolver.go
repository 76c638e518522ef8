package config

import (
	"log/slog"
	"regexp"
	"sync"
)

// varRefPattern matches $variables.<name>$ references inside templates.
var varRefPattern = regexp.MustCompile(`\$variables\.([a-zA-Z0-9_]+)\$`)

// Resolver owns the three configuration tiers and the single resolved
// configuration produced from them. Queries always read the last
// successfully resolved configuration and never fail; absence yields a
// fallback or empty value. All methods are concurrent-safe, though
// callers racing on mutations still see them applied in an arbitrary
// order.
type Resolver struct {
	logger   *slog.Logger
	system   Data
	document Data
	resolved Data
	warnings []string
	mu       sync.RWMutex
}

// NewResolver returns a resolver seeded with the built-in system
// defaults and an empty document layer, fully merged and ready to
// answer queries.
func NewResolver(logger *slog.Logger) *Resolver {
	r := &Resolver{
		logger:   logger,
		system:   DefaultSystemConfig(),
		document: NewData(),
	}
	r.remerge()
	return r
}

// ApplySystem merges an externally loaded definition into the system
// layer: variables and commands replace same-named system entries
// wholesale. Unknown top-level keys in the source were already
// discarded by the typed unmarshal. Triggers a full re-merge.
func (r *Resolver) ApplySystem(data Data) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, value := range data.Variables {
		r.system.Variables[name] = value
	}
	for name, cmd := range data.Commands {
		r.system.Commands[name] = cmd.clone()
	}
	r.remerge()
}

// SetDocument replaces the document layer. A nil variable or command
// map leaves the corresponding half of the layer untouched, so a
// configuration block that only overrides commands keeps earlier
// document variables. Triggers a full re-merge.
func (r *Resolver) SetDocument(data Data) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if data.Variables != nil {
		vars := make(map[string]string, len(data.Variables))
		for name, value := range data.Variables {
			vars[name] = value
		}
		r.document.Variables = vars
	}
	if data.Commands != nil {
		cmds := make(map[string]CommandDef, len(data.Commands))
		for name, cmd := range data.Commands {
			cmds[name] = cmd.clone()
		}
		r.document.Commands = cmds
	}
	r.remerge()
}

// RegisterCommand registers or re-registers one command at runtime.
// Registrations are always document-scoped and never touch the system
// layer. Re-registering replaces the description and template and
// merges the parameters key-by-key with the earlier registration, so
// unmentioned parameters survive.
func (r *Resolver) RegisterCommand(name string, def CommandDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.document.Commands[name]
	if !ok {
		r.document.Commands[name] = def.clone()
		r.remerge()
		return
	}
	existing.Description = def.Description
	existing.Template = def.Template
	if existing.Parameters == nil {
		existing.Parameters = make(map[string]ParamDef, len(def.Parameters))
	}
	for pname, p := range def.Parameters {
		existing.Parameters[pname] = mergeParam(existing.Parameters[pname], p)
	}
	r.document.Commands[name] = existing
	r.remerge()
}

// RegisterVariable sets one document-scoped variable at runtime and
// triggers a full re-merge.
func (r *Resolver) RegisterVariable(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.document.Variables[name] = value
	r.remerge()
}

// remerge rebuilds the resolved configuration from scratch: a fresh
// deep copy of the system layer, the document layer overlaid on top,
// then variable substitution in every template. Substitution runs
// after all structural merging so document and runtime variables can
// override tokens in system-level templates. Requires mu held for
// writing (or exclusive access during construction).
func (r *Resolver) remerge() {
	merged := r.system.Clone()

	for name, value := range r.document.Variables {
		merged.Variables[name] = value
	}
	for name, cmd := range r.document.Commands {
		if base, ok := merged.Commands[name]; ok {
			mergeCommand(&base, cmd)
			merged.Commands[name] = base
		} else {
			merged.Commands[name] = cmd.clone()
		}
	}

	r.warnings = r.warnings[:0]
	for name, cmd := range merged.Commands {
		cmd.Template = varRefPattern.ReplaceAllStringFunc(cmd.Template, func(token string) string {
			varName := varRefPattern.FindStringSubmatch(token)[1]
			if value, ok := merged.Variables[varName]; ok {
				return value
			}
			// Unresolved references stay verbatim so the document
			// structure never breaks; the warning is the only signal.
			r.warnings = append(r.warnings, varName)
			r.logger.Warn("unresolved variable reference in template",
				slog.String("command", name),
				slog.String("variable", varName),
			)
			return token
		})
		merged.Commands[name] = cmd
	}

	r.resolved = merged
}

// Template returns the fully resolved LaTeX template for a command,
// or the empty string if the command is unknown.
func (r *Resolver) Template(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolved.Commands[name].Template
}

// Command returns a copy of the resolved definition for one command.
func (r *Resolver) Command(name string) (CommandDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.resolved.Commands[name]
	if !ok {
		return CommandDef{}, false
	}
	return cmd.clone(), true
}

// HasCommand reports whether a command exists in the resolved
// configuration.
func (r *Resolver) HasCommand(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.resolved.Commands[name]
	return ok
}

// ParamDefault returns the default value for one parameter of a
// command, or nil if the command or parameter is unknown.
func (r *Resolver) ParamDefault(command, param string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.resolved.Commands[command]
	if !ok {
		return nil
	}
	p, ok := cmd.Parameters[param]
	if !ok {
		return nil
	}
	return p.Default
}

// Variable returns the resolved value of a variable, or fallback if
// it is not defined.
func (r *Resolver) Variable(name, fallback string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if value, ok := r.resolved.Variables[name]; ok {
		return value
	}
	return fallback
}

// Commands returns a deep copy of all resolved command definitions.
func (r *Resolver) Commands() map[string]CommandDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]CommandDef, len(r.resolved.Commands))
	for name, cmd := range r.resolved.Commands {
		out[name] = cmd.clone()
	}
	return out
}

// Variables returns a copy of all resolved variables.
func (r *Resolver) Variables() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.resolved.Variables))
	for name, value := range r.resolved.Variables {
		out[name] = value
	}
	return out
}

// Snapshot returns a deep copy of the whole resolved configuration
// for read-only use by renderers and the compiler.
func (r *Resolver) Snapshot() Data {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolved.Clone()
}

// Warnings returns the names of variables that could not be resolved
// during the last re-merge, in encounter order.
func (r *Resolver) Warnings() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}
