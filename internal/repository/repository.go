package repository

import (
	"pairbot/internal/domain"
)

// UserRepository defines user data operations.
// GetUser returns (nil, nil) when the user does not exist.
type UserRepository interface {
	GetUser(chatID int64) (*domain.User, error)
	CreateUser(chatID int64, name string) (*domain.User, error)
}

// PairRepository defines pair and membership data operations.
// The find-or-create methods report whether a new row was created, so
// callers can distinguish a fresh insert from an existing one. Lookups
// that find nothing return (nil, nil).
type PairRepository interface {
	FindOrCreatePair(russianWord, englishWord string) (*domain.Pair, bool, error)
	FindOrCreateMembership(userID, pairID int64) (bool, error)
	PairsForUser(userID int64) ([]domain.Pair, error)
	FindPairForUser(userID int64, words []string) (*domain.Pair, error)
	FindExactPairForUser(userID int64, russianWord, englishWord string) (*domain.Pair, error)
	UpdatePairFields(pairID int64, russianWord, englishWord string) error
	DeletePair(pairID int64) error
}
