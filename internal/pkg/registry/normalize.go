package registry

import (
	"strings"
	"unicode"
)

// NormalizeKey lower-cases a raw device key and collapses every maximal run
// of characters outside [a-z0-9] to a single underscore, stripping leading
// and trailing underscores. The result is the lookup key into the metadata
// table and is idempotent: NormalizeKey(NormalizeKey(k)) == NormalizeKey(k).
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	pending := false
	for _, r := range strings.ToLower(key) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// fallbackName turns a raw key into a presentable name when no curated name
// exists: separators become spaces and each word is capitalized.
func fallbackName(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
