package services

import (
	"strings"
	"unicode"

	"deal-formatter/models"
)

// Normalizer derives the clean title/description fields of a DealRow from
// the raw CSV values. It is pure string work with no failure modes.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize fills in CleanTitle and CleanDescription on the row in place.
func (n *Normalizer) Normalize(row *models.DealRow) {
	row.CleanTitle = titleCase(row.RawTitle)
	row.CleanDescription = collapseWhitespace(row.RawDescription)
}

// collapseWhitespace reduces every run of whitespace (including newlines and
// tabs) to a single space and strips leading/trailing whitespace.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleCase collapses whitespace, then capitalizes the first letter of each
// word and lowercases the rest, e.g. "  wireless   MOUSE " → "Wireless Mouse".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(runes)
}
