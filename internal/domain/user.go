package domain

import "time"

// User is a bot user identified by the Telegram chat id.
// Created lazily on the first successful dictionary mutation.
// Name keeps the first-seen display name and is never overwritten.
type User struct {
	ID        int64
	ChatID    int64
	Name      string
	CreatedAt time.Time
}
