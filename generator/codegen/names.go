// Package codegen contains the pure transformation passes that turn a
// schema document into Kysely TypeScript definition text.
package codegen

import (
	"strings"
	"unicode"
)

// ToPascalCase converts snake_case, kebab-case, camelCase or PascalCase
// input to PascalCase. It is total over any string, maps "" to "", and is
// idempotent: word interiors are preserved, only the first rune of each
// word is upper-cased.
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}
	var out strings.Builder
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	}) {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		out.WriteString(string(runes))
	}
	return out.String()
}

// ToSnakeCase converts PascalCase or camelCase to snake_case. Word
// boundaries are inferred from case transitions; runs of upper-case letters
// stay one word (HTTPServer -> http_server). Single lower-case words map to
// themselves.
func ToSnakeCase(s string) string {
	var out strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				out.WriteRune('_')
			}
		}
		out.WriteRune(unicode.ToLower(r))
	}
	return out.String()
}
