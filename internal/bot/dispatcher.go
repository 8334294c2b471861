package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// UpdateSource yields batches of chat updates via long polling.
type UpdateSource interface {
	Poll(ctx context.Context, offset int) ([]tgbotapi.Update, error)
}

// ReplySender delivers a text reply to a chat.
type ReplySender interface {
	Send(chatID int64, text string) error
}

// MessageHandler produces the reply for one incoming message.
type MessageHandler interface {
	Handle(chatID int64, name, text string) string
}

const defaultRetryDelay = 3 * time.Second

// Dispatcher drives the update loop: it owns the offset cursor, routes
// each update through the handler and sends the reply back.
type Dispatcher struct {
	source     UpdateSource
	sender     ReplySender
	handler    MessageHandler
	logger     *zap.Logger
	retryDelay time.Duration

	offset int
}

// NewDispatcher creates a new dispatcher instance
func NewDispatcher(source UpdateSource, sender ReplySender, handler MessageHandler, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		source:     source,
		sender:     sender,
		handler:    handler,
		logger:     logger,
		retryDelay: defaultRetryDelay,
	}
}

// Run polls for updates until the context is cancelled or the source
// reports a semantic failure. Connection errors are transient: the poll
// is retried with the same offset. An API-level rejection (ok=false) is
// fatal and stops the loop.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		updates, err := d.source.Poll(ctx, d.offset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			var apiErr *tgbotapi.Error
			if errors.As(err, &apiErr) {
				d.logger.Error("Update source rejected the poll",
					zap.Int("code", apiErr.Code),
					zap.String("message", apiErr.Message),
				)
				return fmt.Errorf("poll updates: %w", err)
			}

			d.logger.Warn("Poll failed, retrying", zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.retryDelay):
			}
			continue
		}

		for _, update := range updates {
			d.processUpdate(update)
		}
	}
}

// processUpdate advances the offset past the update before handling it,
// so a crash mid-handling never causes a redelivery on restart.
func (d *Dispatcher) processUpdate(update tgbotapi.Update) {
	d.offset = update.UpdateID + 1

	if update.Message == nil || update.Message.Chat == nil {
		return
	}

	chatID := update.Message.Chat.ID
	reply := d.handler.Handle(chatID, displayName(update.Message.Chat), update.Message.Text)

	// Telegram rejects empty message text, so an empty reply body
	// (e.g. an empty dictionary listing) is simply not sent.
	if reply == "" {
		return
	}

	if err := d.sender.Send(chatID, reply); err != nil {
		d.logger.Error("Failed to send reply",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// displayName picks a best-effort name for the chat: first name, then
// username, else empty.
func displayName(chat *tgbotapi.Chat) string {
	if chat.FirstName != "" {
		return chat.FirstName
	}
	return chat.UserName
}
