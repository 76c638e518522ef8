package mathdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Block is one (command, content, overrides) unit extracted from raw
// input. Blocks are ephemeral; nothing holds them past a compile call.
type Block struct {
	Command string
	Content string
	Params  Params
}

// markerPattern matches a block marker line: the marker character, a
// command name, and an optional brace-delimited parameter list.
var markerPattern = regexp.MustCompile(`^#\s*([A-Za-z_][A-Za-z0-9_]*)\s*(?:\{(.*)\})?\s*$`)

// splitBlocks scans the document line by line. A marker line opens a
// new block; following non-marker lines accumulate as its content. A
// block whose trimmed content is empty is dropped. Lines before the
// first marker are ignored.
func splitBlocks(input string) []Block {
	var (
		blocks  []Block
		current *Block
		lines   []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(lines, "\n"))
		if current.Content != "" {
			blocks = append(blocks, *current)
		}
		current, lines = nil, nil
	}
	for _, line := range strings.Split(input, "\n") {
		if name, params, ok := parseMarker(line); ok {
			flush()
			current = &Block{Command: name, Params: params}
			continue
		}
		if current != nil {
			lines = append(lines, line)
		}
	}
	flush()
	return blocks
}

// parseMarker splits a marker line into its command name and
// parameter overrides. Non-marker lines report ok=false.
func parseMarker(line string) (string, Params, bool) {
	m := markerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", nil, false
	}
	return m[1], parseParams(m[2]), true
}

// parseParams parses a comma-separated key:value override list.
// Values are typed literals: quoted strings, booleans, numbers;
// anything else stays a raw string.
func parseParams(raw string) Params {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	params := make(Params)
	for _, part := range splitTopLevel(raw, ',') {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		params[key] = parseLiteral(strings.TrimSpace(value))
	}
	return params
}

// splitTopLevel splits on sep outside of quotes and braces, so
// parameter values may themselves contain commas.
func splitTopLevel(s string, sep rune) []string {
	var (
		parts   []string
		start   int
		depth   int
		inQuote rune
	)
	for i, r := range s {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			}
		case r == '"' || r == '\'':
			inQuote = r
		case r == '{' || r == '[':
			depth++
		case r == '}' || r == ']':
			depth--
		case r == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseLiteral interprets one override value.
func parseLiteral(s string) any {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	switch s {
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
