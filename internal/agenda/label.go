package agenda

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decorative affixes the page wraps around event names.
var (
	affixPrefixes = []string{"Semana de"}
	affixSuffixes = []string{"de cuatrimestre"}
)

// StripAffixes removes known decorative prefixes and suffixes from an
// event name and trims the leftover whitespace.
func StripAffixes(name string) string {
	name = strings.TrimSpace(name)
	for _, prefix := range affixPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
		}
	}
	for _, suffix := range affixSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(name[:len(name)-len(suffix)])
		}
	}
	return name
}

// NormalizeCasing lowercases an event name and capitalizes its first rune.
// Idempotent: applying it twice yields the same result.
func NormalizeCasing(name string) string {
	lowered := strings.ToLower(name)
	r, size := utf8.DecodeRuneInString(lowered)
	if size == 0 {
		return lowered
	}
	return string(unicode.ToUpper(r)) + lowered[size:]
}
