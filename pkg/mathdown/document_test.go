package mathdown

import (
	"strings"
	"testing"
)

func TestSizeCommand(t *testing.T) {
	cases := []struct {
		size int
		want string
	}{
		{8, "\\small"},
		{10, "\\normalsize"},
		{12, "\\large"},
		{14, "\\Large"},
		{17, "\\LARGE"},
		{20, "\\huge"},
		{28, "\\Huge"},
	}
	for _, tc := range cases {
		if got := sizeCommand(tc.size); got != tc.want {
			t.Errorf("sizeCommand(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestWrapDocument(t *testing.T) {
	doc := WrapDocument("CONTENT HERE", DocumentOptions{})

	for _, want := range []string{
		"\\documentclass{article}",
		"\\usepackage{amsmath}",
		"\\usepackage{enumitem}",
		"\\newcommand{\\mydefaultsize}{\\fontsize{14pt}{16pt}\\selectfont}",
		"\\begin{document}",
		"\\Large",
		"CONTENT HERE",
		"\\end{document}",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("WrapDocument() missing %q", want)
		}
	}
	if strings.Index(doc, "\\begin{document}") > strings.Index(doc, "CONTENT HERE") {
		t.Error("content placed before \\begin{document}")
	}
}

func TestWrapDocumentFontFamilies(t *testing.T) {
	cases := []struct {
		family string
		want   string
	}{
		{"Times New Roman", "\\usepackage{times}"},
		{"Helvetica", "\\usepackage{helvet}"},
		{"Courier", "\\usepackage{courier}"},
		{"Calibri", "\\setmainfont{Calibri}"},
	}
	for _, tc := range cases {
		doc := WrapDocument("x", DocumentOptions{FontFamily: tc.family})
		if !strings.Contains(doc, tc.want) {
			t.Errorf("WrapDocument(%s) missing %q", tc.family, tc.want)
		}
	}

	doc := WrapDocument("x", DocumentOptions{FontFamily: "Computer Modern"})
	if strings.Contains(doc, "\\usepackage{fontspec}") {
		t.Error("default font must not pull in fontspec")
	}
}
