package mathdown

import "strings"

// escapeSegment escapes the LaTeX special characters in a non-math
// segment, one pass so replacements never re-trigger on each other.
// '%' is absent because the compiler preprocessor already escapes it
// document-wide.
func escapeSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString("\\textbackslash{}")
		case '#':
			b.WriteString("\\#")
		case '$':
			b.WriteString("\\$")
		case '&':
			b.WriteString("\\&")
		case '_':
			b.WriteString("\\_")
		case '{':
			b.WriteString("\\{")
		case '}':
			b.WriteString("\\}")
		case '~':
			b.WriteString("\\textasciitilde{}")
		case '^':
			b.WriteString("\\textasciicircum{}")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeLaTeX escapes LaTeX special characters in text while leaving
// math segments ($...$ and \[...\] delimited) untouched. Text that is
// entirely one math segment passes through unchanged.
func EscapeLaTeX(text string) string {
	if text == "" {
		return text
	}
	if strings.HasPrefix(text, "$") && strings.HasSuffix(text, "$") {
		return text
	}
	if strings.HasPrefix(text, "\\[") && strings.HasSuffix(text, "\\]") {
		return text
	}

	var b strings.Builder
	var segment strings.Builder
	inMath := false
	emit := func() {
		if inMath {
			b.WriteString(segment.String())
		} else {
			b.WriteString(escapeSegment(segment.String()))
		}
		segment.Reset()
	}
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "\\[") || strings.HasPrefix(text[i:], "\\]") {
			emit()
			inMath = !inMath
			if inMath {
				segment.WriteString(text[i : i+2])
			} else {
				b.WriteString(text[i : i+2])
			}
			i += 2
			continue
		}
		if text[i] == '$' {
			emit()
			inMath = !inMath
			if inMath {
				segment.WriteByte('$')
			} else {
				b.WriteByte('$')
			}
			i++
			continue
		}
		segment.WriteByte(text[i])
		i++
	}
	emit()
	return b.String()
}
