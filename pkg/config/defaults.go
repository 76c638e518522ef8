package config

// DefaultSystemConfig returns the built-in system layer: the closed
// command vocabulary with its LaTeX templates and the variables those
// templates reference. A loaded system file merges on top of this
// layer; document and runtime registrations never touch it.
//
// The bullet and enum templates are item-level: the surrounding list
// environment is emitted once per run of consecutive items by the
// compiler, not by the template.
func DefaultSystemConfig() Data {
	return Data{
		Variables: map[string]string{
			"default_format": `\medskip\mydefaultsize`,
		},
		Commands: map[string]CommandDef{
			"problem": {
				Description: "Problem statement",
				Parameters:  map[string]ParamDef{},
				Template:    "$variables.default_format$\n#CONTENT#",
			},
			"solution": {
				Description: "Solution heading",
				Parameters:  map[string]ParamDef{},
				Template:    "$variables.default_format$\n\\section*{Solution}\n#CONTENT#",
			},
			"question": {
				Description: "Question text",
				Parameters:  map[string]ParamDef{},
				Template:    "$variables.default_format$\n#CONTENT#",
			},
			"text": {
				Description: "Regular text content",
				Parameters:  map[string]ParamDef{},
				Template:    "$variables.default_format$\n#CONTENT#",
			},
			"eq": {
				Description: "Displayed equation",
				Parameters: map[string]ParamDef{
					"align": {
						Description: "Text alignment",
						Type:        "string",
						Default:     "left",
					},
					"numbering": {
						Description: "Whether the equation is numbered",
						Type:        "boolean",
						Default:     false,
					},
				},
				Template: "$variables.default_format$\n$$ #CONTENT# $$",
			},
			"math": {
				Description: "Inline equation",
				Parameters:  map[string]ParamDef{},
				Template:    `\( #CONTENT# \)`,
			},
			"align": {
				Description: "Aligned equations",
				Parameters:  map[string]ParamDef{},
				Template:    "$variables.default_format$\n\\begin{align*}\n#CONTENT#\n\\end{align*}",
			},
			"config": {
				Description: "Document-level configuration",
				Parameters:  map[string]ParamDef{},
				// No output, the block only updates the document layer.
				Template: "",
			},
			"bullet": {
				Description: "Bullet item",
				Parameters:  map[string]ParamDef{},
				Template:    "\\item #CONTENT#",
			},
			"enum": {
				Description: "Enumerated item",
				Parameters: map[string]ParamDef{
					"format": {
						Description: "Enumeration marker format (a), 1., ...)",
						Type:        "string",
						Default:     "a)",
					},
				},
				Template: "\\item #CONTENT#",
			},
		},
	}
}
