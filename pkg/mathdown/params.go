package mathdown

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is a per-render parameter override map. Present keys replace
// command defaults; absent keys fall back to them. Values are used as
// supplied, without type coercion.
type Params map[string]any

// ParamSpec declares one parameter of a command: its descriptive type
// (string/float/boolean), description, and default value.
type ParamSpec struct {
	Type        string
	Description string
	Default     any
}

// baseParams returns the parameter set shared by every command.
func baseParams() map[string]ParamSpec {
	return map[string]ParamSpec{
		"vspace": {
			Type:        "float",
			Description: "Vertical space after content in em units",
			Default:     1.0,
		},
	}
}

// contentParams extends baseParams with the layout parameters of
// content commands.
func contentParams() map[string]ParamSpec {
	p := baseParams()
	p["indent"] = ParamSpec{
		Type:        "float",
		Description: "Left indentation in em units",
		Default:     0.0,
	}
	p["fontsize"] = ParamSpec{
		Type:        "float",
		Description: "Font size in points (0 inherits the document size)",
		Default:     0.0,
	}
	p["fontfamily"] = ParamSpec{
		Type:        "string",
		Description: "Font family directive (serif, sans, mono)",
		Default:     "",
	}
	p["spaceabove"] = ParamSpec{
		Type:        "float",
		Description: "Vertical space before content in em units",
		Default:     0.0,
	}
	p["spacebelow"] = ParamSpec{
		Type:        "float",
		Description: "Extra vertical space below content in em units",
		Default:     0.0,
	}
	p["linespacing"] = ParamSpec{
		Type:        "float",
		Description: "Line spacing in points (0 derives from fontsize)",
		Default:     0.0,
	}
	return p
}

// paramLookup resolves parameter values for one render call: explicit
// overrides first, then configuration-level defaults carried by the
// render context, then the command's own declared defaults.
type paramLookup struct {
	spec      map[string]ParamSpec
	overrides Params
	defaults  Params
}

func newLookup(spec map[string]ParamSpec, overrides Params, rc *RenderContext) paramLookup {
	l := paramLookup{spec: spec, overrides: overrides}
	if rc != nil {
		l.defaults = rc.Defaults
	}
	return l
}

// explicit reports whether the caller supplied an override for key.
func (l paramLookup) explicit(key string) bool {
	_, ok := l.overrides[key]
	return ok
}

func (l paramLookup) value(key string) any {
	if v, ok := l.overrides[key]; ok {
		return v
	}
	if v, ok := l.defaults[key]; ok {
		return v
	}
	if p, ok := l.spec[key]; ok {
		return p.Default
	}
	return nil
}

func (l paramLookup) float(key string) float64 { return toFloat(l.value(key), 0) }

func (l paramLookup) str(key string) string { return toString(l.value(key), "") }

func (l paramLookup) boolean(key string) bool { return toBool(l.value(key), false) }

// all returns the fully resolved parameter set for placeholder
// substitution: declared defaults, configuration defaults, then
// overrides.
func (l paramLookup) all() Params {
	out := make(Params, len(l.spec)+len(l.overrides))
	for name, p := range l.spec {
		out[name] = p.Default
	}
	for name, v := range l.defaults {
		out[name] = v
	}
	for name, v := range l.overrides {
		out[name] = v
	}
	return out
}

// toFloat accepts the numeric types an override, a JSON default or a
// YAML default may carry.
func toFloat(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return fallback
}

func toBool(v any, fallback bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if strings.EqualFold(b, "true") {
			return true
		}
		if strings.EqualFold(b, "false") {
			return false
		}
	}
	return fallback
}

func toString(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return formatValue(v)
}

// formatValue renders a parameter value for placeholder substitution.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return formatFloat(t)
	case float32:
		return formatFloat(float64(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// formatFloat prints whole values without a decimal point, so a
// vspace of 1.0 becomes \vspace{1em} rather than \vspace{1.000000em}.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
