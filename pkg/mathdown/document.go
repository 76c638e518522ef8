package mathdown

import "strings"

// DocumentOptions selects the document-wide appearance for the static
// skeleton. The zero value produces a 14pt Computer Modern document.
type DocumentOptions struct {
	FontSize   int
	FontFamily string
}

// sizeCommand maps a point size to the closest standard LaTeX size
// switch.
func sizeCommand(size int) string {
	switch {
	case size <= 8:
		return "\\small"
	case size <= 10:
		return "\\normalsize"
	case size <= 12:
		return "\\large"
	case size <= 14:
		return "\\Large"
	case size <= 17:
		return "\\LARGE"
	case size <= 20:
		return "\\huge"
	default:
		return "\\Huge"
	}
}

// fontSetup maps a font family name to its package lines and the
// family switch emitted after \begin{document}. Unknown families fall
// back to fontspec so system fonts still work under a Unicode engine.
func fontSetup(family string) (packages, command string) {
	switch family {
	case "", "Computer Modern":
		return "", ""
	case "Times New Roman":
		return "\\usepackage{times}", "\\rmfamily"
	case "Helvetica":
		return "\\usepackage{helvet}\n\\renewcommand{\\familydefault}{\\sfdefault}", ""
	case "Courier":
		return "\\usepackage{courier}", "\\ttfamily"
	case "Palatino":
		return "\\usepackage{palatino}", ""
	case "Bookman":
		return "\\usepackage{bookman}", ""
	case "Carlito":
		return "\\usepackage{carlito}", ""
	default:
		return "\\usepackage{fontspec}\n\\setmainfont{" + family + "}", ""
	}
}

// WrapDocument substitutes compiled content into the static document
// skeleton: math and layout packages, the configured size and family,
// and the \mydefaultsize command referenced by the default templates.
func WrapDocument(content string, opts DocumentOptions) string {
	size := opts.FontSize
	if size <= 0 {
		size = 14
	}
	fontPackages, fontCommand := fontSetup(opts.FontFamily)

	var b strings.Builder
	b.WriteString(`\documentclass{article}
\usepackage{amsmath}
\usepackage{amssymb}
\usepackage{graphicx}
\graphicspath{{./}{./images/}}
\usepackage{geometry}
\usepackage{xcolor}
\usepackage{mdframed}
\usepackage{enumitem}
`)
	if fontPackages != "" {
		b.WriteString(fontPackages)
		b.WriteString("\n")
	}
	b.WriteString(`
\geometry{margin=1in}
\setlength{\parindent}{0pt}

\newcommand{\mydefaultsize}{\fontsize{14pt}{16pt}\selectfont}
\begin{document}

`)
	b.WriteString(sizeCommand(size))
	b.WriteString(fontCommand)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n\n\\end{document}\n")
	return b.String()
}
