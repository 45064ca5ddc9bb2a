package dialogue

import (
	"strings"
	"unicode"
)

// IsSpace считает пробельными также разделители \x1c-\x1f
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// TrimSpace обрезает пробельные символы в смысле IsSpace
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}
