package code

import (
	"strings"
	"unicode"
)

// Words splits a code into words.
// Separators ("_", "-", " " and any rune in extra) always split; camelCase
// boundaries split only when camel is set.
// Examples:
//   - "in-progress" -> ["in", "progress"]
//   - "dateTime" (camel) -> ["date", "Time"]
//   - "PractitionerRole" (camel) -> ["Practitioner", "Role"]
//   - "HTTPHeader" (camel) -> ["HTTP", "Header"]
func Words(s, extra string, camel bool) []string {
	if s == "" {
		return nil
	}

	isSep := func(r rune) bool {
		return isSeparator(r) || strings.ContainsRune(extra, r)
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSep(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if camel && i > 0 && shouldStartNewWord(runes, i, isSep) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// Screaming joins words as SCREAMING_SNAKE_CASE.
func Screaming(words []string) string {
	return strings.ToUpper(strings.Join(words, "_"))
}

// Snake converts a CamelCase identifier into snake_case,
// e.g. "PractitionerRole" -> "practitioner_role".
func Snake(s string) string {
	return strings.ToLower(strings.Join(Words(s, "", true), "_"))
}

// LowerCamel joins words as lowerCamelCase, e.g. ["DATE", "TIME"] -> "dateTime".
func LowerCamel(words []string) string {
	var b strings.Builder

	for i, w := range words {
		lw := strings.ToLower(w)
		if i == 0 || lw == "" {
			b.WriteString(lw)
			continue
		}

		r := []rune(lw)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}

	return b.String()
}

// UpperCamel joins words as UpperCamelCase, e.g. ["practitioner", "role"] -> "PractitionerRole".
func UpperCamel(words []string) string {
	var b strings.Builder

	for _, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) == 0 {
			continue
		}

		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}

	return b.String()
}

// Strip removes every "_" from a constant name, e.g. "IN_PROGRESS" -> "INPROGRESS".
func Strip(name string) string {
	return strings.ReplaceAll(name, "_", "")
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewWord determines if a new word should start at position i.
func shouldStartNewWord(runes []rune, i int, isSep func(rune) bool) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSep(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
