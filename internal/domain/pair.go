package domain

import "strings"

// Language is a detected language tag.
type Language string

const (
	LangRussian Language = "ru"
	LangEnglish Language = "en"
)

// Pair is a russian-english vocabulary pair. Identical text content is
// stored once and shared across users via memberships.
type Pair struct {
	ID          int64
	RussianWord string
	EnglishWord string
}

// NormalizeWord brings a word to its stored form. Both dictionary writes
// and lookups go through it, so matching is case- and whitespace-insensitive.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
