// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"
)

const requestGrace = 30 * time.Second

// NewBot builds the authenticated bot handle shared by both workflows.
// Updates are consumed through UpdateStream, so no poller is attached.
func NewBot(token, apiURL string, pollTimeout time.Duration) (*telebot.Bot, error) {
	pref := telebot.Settings{
		URL:   apiURL,
		Token: token,
		// Offline skips the getMe round trip; a bad token surfaces on the first call.
		Offline: true,
		// The HTTP deadline must outlive a long-poll request.
		Client: &http.Client{Timeout: pollTimeout + requestGrace},
	}
	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return b, nil
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendText sends a text message to the given user, group or channel id.
// telebot calls are not cancellable; ctx is only checked before the request.
func (tba *TelebotAdapter) SendText(ctx context.Context, recipientID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := tba.bot.Send(telebot.ChatID(recipientID), text); err != nil {
		return fmt.Errorf("send message to %d: %w", recipientID, err)
	}
	return nil
}
