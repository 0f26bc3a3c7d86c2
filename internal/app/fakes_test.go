package app

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/telebot.v3"
)

type sentMessage struct {
	RecipientID int64
	Text        string
}

// fakeClient records sends and fails the call numbered failAt (1-based).
type fakeClient struct {
	mu          sync.Mutex
	sent        []sentMessage
	failAt      int
	failErr     error
	inFlight    int
	maxInFlight int
}

func (c *fakeClient) SendText(_ context.Context, recipientID int64, text string) error {
	c.mu.Lock()
	c.inFlight++
	if c.inFlight > c.maxInFlight {
		c.maxInFlight = c.inFlight
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight--
		c.mu.Unlock()
	}()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAt > 0 && len(c.sent)+1 == c.failAt {
		return c.failErr
	}
	c.sent = append(c.sent, sentMessage{RecipientID: recipientID, Text: text})
	return nil
}

func (c *fakeClient) texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.sent))
	for _, m := range c.sent {
		out = append(out, m.Text)
	}
	return out
}

// fakeUpdates yields updates in order, then err (io.EOF when nil).
type fakeUpdates struct {
	updates []telebot.Update
	err     error
	calls   int
}

func (f *fakeUpdates) Next(context.Context) (telebot.Update, error) {
	f.calls++
	if len(f.updates) == 0 {
		if f.err != nil {
			return telebot.Update{}, f.err
		}
		return telebot.Update{}, io.EOF
	}
	upd := f.updates[0]
	f.updates = f.updates[1:]
	return upd, nil
}

type readChunk struct {
	data string
	err  error
}

// scriptedReader returns each chunk from a single Read call, then io.EOF.
type scriptedReader struct {
	chunks []readChunk
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	c := r.chunks[0]
	r.chunks = r.chunks[1:]
	n := copy(p, c.data)
	return n, c.err
}

// recordingWriter keeps every Write call separately.
type recordingWriter struct {
	writes []string
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func newTestLogger() (*logrus.Entry, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(l), hook
}

func textUpdate(id int, sender *telebot.User, chatID, date int64, text string) telebot.Update {
	return telebot.Update{
		ID: id,
		Message: &telebot.Message{
			Sender:   sender,
			Chat:     &telebot.Chat{ID: chatID},
			Unixtime: date,
			Text:     text,
		},
	}
}
