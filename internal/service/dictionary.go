package service

import (
	"fmt"

	"pairbot/internal/domain"
	"pairbot/internal/repository"

	"go.uber.org/zap"
)

// Verdict is the outcome of an /answer check.
type Verdict struct {
	Correct  bool
	Expected domain.Pair
}

// DictionaryService implements the per-command business rules against
// the dictionary store. All lookups work on normalized words.
type DictionaryService struct {
	userRepo   repository.UserRepository
	pairRepo   repository.PairRepository
	normalizer *Normalizer
	logger     *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(
	userRepo repository.UserRepository,
	pairRepo repository.PairRepository,
	normalizer *Normalizer,
	logger *zap.Logger,
) *DictionaryService {
	return &DictionaryService{
		userRepo:   userRepo,
		pairRepo:   pairRepo,
		normalizer: normalizer,
		logger:     logger,
	}
}

// AddPair adds a pair to the user's dictionary, creating the user on
// first use with its first-seen display name. The pair text is shared
// across users; only the membership is per-user. Returns whether the
// membership is new.
func (s *DictionaryService) AddPair(chatID int64, name, w1, w2 string) (bool, error) {
	russianWord, englishWord, err := s.normalizer.Normalize(w1, w2)
	if err != nil {
		return false, err
	}

	user, err := s.userRepo.GetUser(chatID)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		user, err = s.userRepo.CreateUser(chatID, name)
		if err != nil {
			return false, fmt.Errorf("create user: %w", err)
		}
		s.logger.Info("User created",
			zap.Int64("chat_id", chatID),
			zap.String("name", name),
		)
	}

	pair, _, err := s.pairRepo.FindOrCreatePair(russianWord, englishWord)
	if err != nil {
		return false, fmt.Errorf("find or create pair: %w", err)
	}

	created, err := s.pairRepo.FindOrCreateMembership(user.ID, pair.ID)
	if err != nil {
		return false, fmt.Errorf("find or create membership: %w", err)
	}

	return created, nil
}

// UpdatePair locates a pair in the user's dictionary matching either of
// the supplied words and overwrites both of its fields with the
// normalized pair, keeping its identity and membership links.
func (s *DictionaryService) UpdatePair(chatID int64, w1, w2 string) error {
	user, err := s.userRepo.GetUser(chatID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return domain.ErrNoDictionary
	}

	target, err := s.pairRepo.FindPairForUser(user.ID, []string{w1, w2})
	if err != nil {
		return fmt.Errorf("find pair: %w", err)
	}
	if target == nil {
		return domain.ErrPairNotFound
	}

	russianWord, englishWord, err := s.normalizer.Normalize(w1, w2)
	if err != nil {
		return err
	}

	if err := s.pairRepo.UpdatePairFields(target.ID, russianWord, englishWord); err != nil {
		return err
	}

	return nil
}

// DeletePair removes the pair with exactly the supplied normalized text
// from the store. Memberships cascade with it.
func (s *DictionaryService) DeletePair(chatID int64, w1, w2 string) error {
	user, err := s.userRepo.GetUser(chatID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return domain.ErrNoDictionary
	}

	russianWord, englishWord, err := s.normalizer.Normalize(w1, w2)
	if err != nil {
		return err
	}

	target, err := s.pairRepo.FindExactPairForUser(user.ID, russianWord, englishWord)
	if err != nil {
		return fmt.Errorf("find pair: %w", err)
	}
	if target == nil {
		return domain.ErrPairNotFound
	}

	if err := s.pairRepo.DeletePair(target.ID); err != nil {
		return err
	}

	return nil
}

// ListPairs returns the user's dictionary in insertion order. A user
// without a dictionary gets an empty listing, not an error.
func (s *DictionaryService) ListPairs(chatID int64) ([]domain.Pair, error) {
	user, err := s.userRepo.GetUser(chatID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	pairs, err := s.pairRepo.PairsForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("list pairs: %w", err)
	}

	return pairs, nil
}

// CheckAnswer grades the supplied pair against the first stored pair
// matching either of its words. Grading is exact equality of both
// normalized fields.
func (s *DictionaryService) CheckAnswer(chatID int64, w1, w2 string) (*Verdict, error) {
	user, err := s.userRepo.GetUser(chatID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNoDictionary
	}

	russianWord, englishWord, err := s.normalizer.Normalize(w1, w2)
	if err != nil {
		return nil, err
	}

	expected, err := s.pairRepo.FindPairForUser(user.ID, []string{russianWord, englishWord})
	if err != nil {
		return nil, fmt.Errorf("find pair: %w", err)
	}
	if expected == nil {
		return nil, domain.ErrPairNotFound
	}

	return &Verdict{
		Correct:  expected.RussianWord == russianWord && expected.EnglishWord == englishWord,
		Expected: *expected,
	}, nil
}
