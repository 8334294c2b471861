package testutil

import (
	"time"

	"pairbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, chatID int64, name string) *domain.User {
	return &domain.User{
		ID:        id,
		ChatID:    chatID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// NewTestPair creates a test pair
func NewTestPair(id int64, russianWord, englishWord string) *domain.Pair {
	return &domain.Pair{
		ID:          id,
		RussianWord: russianWord,
		EnglishWord: englishWord,
	}
}

// CyrillicDetector stubs language.Detector with a script check: any word
// containing a cyrillic letter is russian, everything else is english.
type CyrillicDetector struct{}

func (CyrillicDetector) Detect(word string) (domain.Language, error) {
	for _, r := range word {
		if r >= 'а' && r <= 'я' || r >= 'А' && r <= 'Я' || r == 'ё' || r == 'Ё' {
			return domain.LangRussian, nil
		}
	}
	return domain.LangEnglish, nil
}
