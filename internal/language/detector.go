package language

import (
	"fmt"

	"pairbot/internal/domain"

	"github.com/abadojack/whatlanggo"
)

// Detector classifies a single word as russian or english.
type Detector interface {
	Detect(word string) (domain.Language, error)
}

// WhatlangDetector detects language with whatlanggo, restricted to the
// russian/english whitelist so script alone decides for short words.
type WhatlangDetector struct {
	options whatlanggo.Options
}

// NewWhatlangDetector creates the production detector.
func NewWhatlangDetector() *WhatlangDetector {
	return &WhatlangDetector{
		options: whatlanggo.Options{
			Whitelist: map[whatlanggo.Lang]bool{
				whatlanggo.Rus: true,
				whatlanggo.Eng: true,
			},
		},
	}
}

// Detect returns the language tag for a word, or an error when the word
// cannot be classified as russian or english.
func (d *WhatlangDetector) Detect(word string) (domain.Language, error) {
	if word == "" {
		return "", fmt.Errorf("detect language: empty word")
	}

	info := whatlanggo.DetectWithOptions(word, d.options)

	switch info.Lang {
	case whatlanggo.Rus:
		return domain.LangRussian, nil
	case whatlanggo.Eng:
		return domain.LangEnglish, nil
	default:
		return "", fmt.Errorf("detect language: %q is neither russian nor english", word)
	}
}
