package telegram

import (
	"context"

	"gopkg.in/telebot.v3"
)

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendText(ctx context.Context, recipientID int64, text string) error
}

// UpdateSource is a lazy, unbounded and non-restartable sequence of updates.
// Next blocks until an update arrives. It returns io.EOF when the sequence
// ends; any other error is terminal for the consumer.
type UpdateSource interface {
	Next(ctx context.Context) (telebot.Update, error)
}
