package spec

import (
	"strings"
	"unicode"
)

// PascalCase converts a display name to the canonical header form used in
// the source table: "Transaction Date" becomes "TransactionDate".
func PascalCase(name string) string {
	var b strings.Builder
	for _, word := range splitWords(name) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

// SnakeCase converts a display name to the mangled header form used by
// column renaming: "Txn Date" becomes "txn_date".
func SnakeCase(name string) string {
	words := splitWords(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
}
