package postgres

import (
	"database/sql"

	"pairbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns the user for a chat id, or nil if it doesn't exist
func (r *UserRepo) GetUser(chatID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, chat_id, name, created_at FROM users WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&u.ID, &u.ChatID, &u.Name, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// CreateUser inserts the user if it doesn't exist yet and returns the
// stored row. An existing user keeps its first-seen name.
func (r *UserRepo) CreateUser(chatID int64, name string) (*domain.User, error) {
	var u domain.User
	query := `
		INSERT INTO users (chat_id, name)
		VALUES ($1, $2)
		ON CONFLICT (chat_id) DO NOTHING
		RETURNING id, chat_id, name, created_at
	`
	err := r.db.QueryRow(query, chatID, name).Scan(&u.ID, &u.ChatID, &u.Name, &u.CreatedAt)

	if err == sql.ErrNoRows {
		// Lost the insert race or the user already existed
		return r.GetUser(chatID)
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
