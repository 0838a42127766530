// Package classify maps clipboard text to a content category using ordered
// heuristic checks. First match wins: URL, Code, LaTeX, Quote, Plaintext.
package classify

import (
	"strings"

	"github.com/inovacc/clipr/internal/model"
)

// codeSignalThreshold is the number of independent code signals required
// before text is labeled as code.
const codeSignalThreshold = 2

var urlPrefixes = []string{
	"http://",
	"https://",
	"ftp://",
	"ftps://",
	"mailto:",
	"www.",
}

var codeKeywords = []string{
	"def ",
	"func ",
	"function",
	"class ",
	"import ",
	"from ",
	"public ",
	"private ",
	"#include",
	"package ",
	"return ",
}

var latexDelimiters = []string{
	"\\begin{",
	"\\end{",
	"\\frac",
	"\\sum",
	"\\int",
	"\\lim",
	"\\mathbb",
	"\\documentclass",
	"$$",
	"\\[",
}

// Classify assigns a category to the given text. It is deterministic and
// total: every input maps to exactly one category.
func Classify(text string) model.Category {
	trimmed := strings.TrimSpace(text)

	switch {
	case isURL(trimmed):
		return model.CategoryURL
	case isCode(trimmed):
		return model.CategoryCode
	case isLaTeX(trimmed):
		return model.CategoryLaTeX
	case isQuote(trimmed):
		return model.CategoryQuote
	default:
		return model.CategoryPlaintext
	}
}

// isURL matches a single token starting with a known scheme or www prefix.
func isURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	lower := strings.ToLower(s)
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(lower, prefix) && len(s) > len(prefix) {
			return true
		}
	}

	return false
}

// isCode counts independent signals (brace pairs, semicolon line endings,
// indented lines, language keywords) and requires at least two of them.
func isCode(s string) bool {
	if s == "" {
		return false
	}

	signals := 0

	if strings.Contains(s, "{") && strings.Contains(s, "}") {
		signals++
	}

	lines := strings.Split(s, "\n")

	semicolons := 0
	indented := 0

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.HasSuffix(trimmed, ";") {
			semicolons++
		}

		if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			indented++
		}
	}

	if semicolons > 0 {
		signals++
	}

	if indented > 0 {
		signals++
	}

	for _, kw := range codeKeywords {
		if strings.Contains(s, kw) {
			signals++
			break
		}
	}

	return signals >= codeSignalThreshold
}

func isLaTeX(s string) bool {
	for _, delim := range latexDelimiters {
		if strings.Contains(s, delim) {
			return true
		}
	}

	return false
}

// isQuote matches text wrapped in quotation marks, or short sentence-like
// text containing a quoted span.
func isQuote(s string) bool {
	if len(s) < 2 {
		return false
	}

	pairs := [][2]string{
		{`"`, `"`},
		{"'", "'"},
		{"“", "”"},
		{"‘", "’"},
	}

	for _, pair := range pairs {
		if strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) && len(s) > len(pair[0])+len(pair[1]) {
			return true
		}
	}

	// A short passage with an embedded quoted span still reads as a quote.
	if len([]rune(s)) <= 280 && strings.Count(s, `"`) >= 2 {
		return true
	}

	return false
}
