package testutil

import (
	"pairbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(chatID int64) (*domain.User, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(chatID int64, name string) (*domain.User, error) {
	args := m.Called(chatID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPairRepository is a mock for repository.PairRepository
type MockPairRepository struct {
	mock.Mock
}

func (m *MockPairRepository) FindOrCreatePair(russianWord, englishWord string) (*domain.Pair, bool, error) {
	args := m.Called(russianWord, englishWord)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Pair), args.Bool(1), args.Error(2)
}

func (m *MockPairRepository) FindOrCreateMembership(userID, pairID int64) (bool, error) {
	args := m.Called(userID, pairID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPairRepository) PairsForUser(userID int64) ([]domain.Pair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pair), args.Error(1)
}

func (m *MockPairRepository) FindPairForUser(userID int64, words []string) (*domain.Pair, error) {
	args := m.Called(userID, words)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pair), args.Error(1)
}

func (m *MockPairRepository) FindExactPairForUser(userID int64, russianWord, englishWord string) (*domain.Pair, error) {
	args := m.Called(userID, russianWord, englishWord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pair), args.Error(1)
}

func (m *MockPairRepository) UpdatePairFields(pairID int64, russianWord, englishWord string) error {
	args := m.Called(pairID, russianWord, englishWord)
	return args.Error(0)
}

func (m *MockPairRepository) DeletePair(pairID int64) error {
	args := m.Called(pairID)
	return args.Error(0)
}

// MockDetector is a mock for language.Detector
type MockDetector struct {
	mock.Mock
}

func (m *MockDetector) Detect(word string) (domain.Language, error) {
	args := m.Called(word)
	return args.Get(0).(domain.Language), args.Error(1)
}
