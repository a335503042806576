package rendering

import "strings"

// latexReplacements maps characters that are special in LaTeX to safe forms.
var latexReplacements = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'_':  `\_`,
	'^':  `\^{}`,
	'~':  `\textasciitilde{}`,
	'<':  `\textless{}`,
	'>':  `\textgreater{}`,
}

// EscapeLaTeX escapes LaTeX special characters in text.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/4)
	for _, r := range text {
		if replacement, ok := latexReplacements[r]; ok {
			sb.WriteString(replacement)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
