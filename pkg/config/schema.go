package config

// ParamDef describes a single command parameter: its declared type, a
// human-readable description, and the default used when a render call
// supplies no override. Type is one of "string", "float" or "boolean"
// and is descriptive only; override values are never coerced.
type ParamDef struct {
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Default     any    `json:"default" yaml:"default"`
}

// CommandDef is the configurable half of a command: its description,
// parameter schema, and LaTeX output template. Templates contain a
// single #CONTENT# placeholder and may reference variables with
// $variables.<name>$ tokens.
type CommandDef struct {
	Description string              `json:"description" yaml:"description"`
	Parameters  map[string]ParamDef `json:"parameters" yaml:"parameters"`
	Template    string              `json:"latex_template" yaml:"latex_template"`
}

// Data is one configuration layer: a flat variable map plus a command
// map. It is also the shape of external configuration files and of the
// resolved configuration.
type Data struct {
	Variables map[string]string     `json:"variables" yaml:"variables"`
	Commands  map[string]CommandDef `json:"commands" yaml:"commands"`
}

// NewData returns an empty layer with both maps allocated.
func NewData() Data {
	return Data{
		Variables: make(map[string]string),
		Commands:  make(map[string]CommandDef),
	}
}

// Clone returns a deep copy of the layer. Re-merges always start from
// a fresh copy of the system layer, so stale state from an earlier
// merge can never leak into the next one.
func (d Data) Clone() Data {
	out := Data{
		Variables: make(map[string]string, len(d.Variables)),
		Commands:  make(map[string]CommandDef, len(d.Commands)),
	}
	for name, value := range d.Variables {
		out.Variables[name] = value
	}
	for name, cmd := range d.Commands {
		out.Commands[name] = cmd.clone()
	}
	return out
}

func (c CommandDef) clone() CommandDef {
	out := CommandDef{
		Description: c.Description,
		Template:    c.Template,
		Parameters:  make(map[string]ParamDef, len(c.Parameters)),
	}
	for name, p := range c.Parameters {
		out.Parameters[name] = p
	}
	return out
}

// mergeCommand overlays a document-layer definition onto a base
// definition field-by-field: description and template are replaced
// when provided, parameters are merged key-by-key with per-field
// overwrite rather than wholesale map replacement.
func mergeCommand(base *CommandDef, overlay CommandDef) {
	if overlay.Description != "" {
		base.Description = overlay.Description
	}
	if overlay.Template != "" {
		base.Template = overlay.Template
	}
	if len(overlay.Parameters) == 0 {
		return
	}
	if base.Parameters == nil {
		base.Parameters = make(map[string]ParamDef, len(overlay.Parameters))
	}
	for name, p := range overlay.Parameters {
		base.Parameters[name] = mergeParam(base.Parameters[name], p)
	}
}

// mergeParam overwrites only the fields the overlay actually carries.
func mergeParam(base, overlay ParamDef) ParamDef {
	if overlay.Description != "" {
		base.Description = overlay.Description
	}
	if overlay.Type != "" {
		base.Type = overlay.Type
	}
	if overlay.Default != nil {
		base.Default = overlay.Default
	}
	return base
}
