package scoring

import (
	"strings"
	"unicode"
)

// cleanKeep lists the punctuation preserved by Clean beyond letters,
// digits, underscore and spaces. The set is wide enough that contact
// details, money, percentages and quoted phrases survive cleaning.
const cleanKeep = ".,;:()-@+%$&/'"

// Clean normalizes raw extracted text for analysis: all whitespace
// runs collapse to a single space and characters outside the safe set
// are dropped. The result is trimmed.
func Clean(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	var b strings.Builder
	b.Grow(len(collapsed))
	for _, r := range collapsed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == ' ':
			b.WriteRune(r)
		case strings.ContainsRune(cleanKeep, r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
