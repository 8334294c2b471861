package service

import (
	"pairbot/internal/domain"
	"pairbot/internal/language"
)

// Normalizer resolves an unordered two-word input into an ordered
// (russian, english) pair.
type Normalizer struct {
	detector language.Detector
}

// NewNormalizer creates a new pair normalizer
func NewNormalizer(detector language.Detector) *Normalizer {
	return &Normalizer{detector: detector}
}

// Normalize classifies both words and returns them as (russian, english)
// regardless of input order. Both words classifying the same way, a word
// in neither language, or a detector failure all leave a slot unfilled
// and yield domain.ErrAmbiguousPair. Words must already be normalized by
// the caller.
func (n *Normalizer) Normalize(a, b string) (string, string, error) {
	slots := make(map[domain.Language]string, 2)

	for _, word := range []string{a, b} {
		lang, err := n.detector.Detect(word)
		if err != nil {
			continue
		}
		if _, taken := slots[lang]; !taken {
			slots[lang] = word
		}
	}

	russianWord, okRu := slots[domain.LangRussian]
	englishWord, okEn := slots[domain.LangEnglish]
	if !okRu || !okEn {
		return "", "", domain.ErrAmbiguousPair
	}

	return russianWord, englishWord, nil
}
