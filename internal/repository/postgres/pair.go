package postgres

import (
	"database/sql"
	"errors"

	"pairbot/internal/domain"

	"github.com/lib/pq"
)

// Postgres error codes used to map constraint violations.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// PairRepo implements repository.PairRepository
type PairRepo struct {
	db *sql.DB
}

// NewPairRepo creates a new pair repository
func NewPairRepo(db *sql.DB) *PairRepo {
	return &PairRepo{db: db}
}

// FindOrCreatePair returns the pair with the exact normalized text,
// creating it if needed. Pairs are shared across users, so the text
// content is stored exactly once. The bool reports a fresh insert.
func (r *PairRepo) FindOrCreatePair(russianWord, englishWord string) (*domain.Pair, bool, error) {
	var p domain.Pair
	insert := `
		INSERT INTO pairs (russian_word, english_word)
		VALUES ($1, $2)
		ON CONFLICT (russian_word, english_word) DO NOTHING
		RETURNING id, russian_word, english_word
	`
	err := r.db.QueryRow(insert, russianWord, englishWord).Scan(&p.ID, &p.RussianWord, &p.EnglishWord)
	if err == nil {
		return &p, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	query := `SELECT id, russian_word, english_word FROM pairs WHERE russian_word = $1 AND english_word = $2`
	err = r.db.QueryRow(query, russianWord, englishWord).Scan(&p.ID, &p.RussianWord, &p.EnglishWord)
	if err != nil {
		return nil, false, err
	}

	return &p, false, nil
}

// FindOrCreateMembership links a user to a pair. The bool reports whether
// the link is new; an existing link is left untouched.
func (r *PairRepo) FindOrCreateMembership(userID, pairID int64) (bool, error) {
	query := `
		INSERT INTO users_pairs (user_id, pair_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, pair_id) DO NOTHING
	`
	res, err := r.db.Exec(query, userID, pairID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return false, domain.ErrNoDictionary
		}
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// PairsForUser returns all pairs in the user's dictionary in insertion order.
func (r *PairRepo) PairsForUser(userID int64) ([]domain.Pair, error) {
	query := `
		SELECT p.id, p.russian_word, p.english_word
		FROM pairs p
		JOIN users_pairs up ON up.pair_id = p.id
		WHERE up.user_id = $1
		ORDER BY up.id
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []domain.Pair
	for rows.Next() {
		var p domain.Pair
		if err := rows.Scan(&p.ID, &p.RussianWord, &p.EnglishWord); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, rows.Err()
}

// FindPairForUser returns the first of the user's pairs whose russian or
// english word matches any of the supplied words. Ties resolve to the
// lowest pair id, i.e. creation order. Returns nil if nothing matches.
func (r *PairRepo) FindPairForUser(userID int64, words []string) (*domain.Pair, error) {
	var p domain.Pair
	query := `
		SELECT p.id, p.russian_word, p.english_word
		FROM pairs p
		JOIN users_pairs up ON up.pair_id = p.id
		WHERE up.user_id = $1
			AND (p.russian_word = ANY($2) OR p.english_word = ANY($2))
		ORDER BY p.id
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID, pq.Array(words)).Scan(&p.ID, &p.RussianWord, &p.EnglishWord)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// FindExactPairForUser returns the user's pair with exactly the given
// normalized text, or nil if the user doesn't have it.
func (r *PairRepo) FindExactPairForUser(userID int64, russianWord, englishWord string) (*domain.Pair, error) {
	var p domain.Pair
	query := `
		SELECT p.id, p.russian_word, p.english_word
		FROM pairs p
		JOIN users_pairs up ON up.pair_id = p.id
		WHERE up.user_id = $1 AND p.russian_word = $2 AND p.english_word = $3
	`
	err := r.db.QueryRow(query, userID, russianWord, englishWord).Scan(&p.ID, &p.RussianWord, &p.EnglishWord)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdatePairFields overwrites both words of a pair in place, preserving
// its identity and membership links.
func (r *PairRepo) UpdatePairFields(pairID int64, russianWord, englishWord string) error {
	query := `UPDATE pairs SET russian_word = $2, english_word = $3 WHERE id = $1`
	res, err := r.db.Exec(query, pairID, russianWord, englishWord)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			// The new text collides with another stored pair
			return domain.ErrNotPersisted
		}
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotPersisted
	}

	return nil
}

// DeletePair removes a pair; memberships cascade at the schema level.
func (r *PairRepo) DeletePair(pairID int64) error {
	query := `DELETE FROM pairs WHERE id = $1`
	res, err := r.db.Exec(query, pairID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotPersisted
	}

	return nil
}
