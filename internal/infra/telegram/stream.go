// internal/infra/telegram/stream.go
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"
)

type rawAPI interface {
	Raw(method string, payload interface{}) ([]byte, error)
}

// UpdateStream long-polls getUpdates and yields updates one at a time in
// delivery order. Unlike telebot.LongPoller it does not retry: the first
// failed poll is returned and the stream must not be used afterwards.
type UpdateStream struct {
	api     rawAPI
	timeout time.Duration
	offset  int
	pending []telebot.Update
	err     error
}

func NewUpdateStream(b *telebot.Bot, timeout time.Duration) *UpdateStream {
	return newUpdateStream(b, timeout)
}

func newUpdateStream(api rawAPI, timeout time.Duration) *UpdateStream {
	return &UpdateStream{api: api, timeout: timeout}
}

// Next returns the next update, polling as many times as needed.
func (s *UpdateStream) Next(ctx context.Context) (telebot.Update, error) {
	for len(s.pending) == 0 {
		if s.err != nil {
			return telebot.Update{}, s.err
		}
		if err := ctx.Err(); err != nil {
			return telebot.Update{}, err
		}
		updates, err := s.poll()
		if err != nil {
			s.err = err
			return telebot.Update{}, err
		}
		s.pending = updates
	}

	upd := s.pending[0]
	s.pending = s.pending[1:]
	return upd, nil
}

func (s *UpdateStream) poll() ([]telebot.Update, error) {
	params := map[string]string{
		"offset":  strconv.Itoa(s.offset),
		"timeout": strconv.Itoa(int(s.timeout / time.Second)),
	}
	data, err := s.api.Raw("getUpdates", params)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	var resp struct {
		Result []telebot.Update `json:"result"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	for _, upd := range resp.Result {
		if upd.ID >= s.offset {
			s.offset = upd.ID + 1
		}
	}
	return resp.Result, nil
}
