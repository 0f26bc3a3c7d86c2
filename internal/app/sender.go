// internal/app/sender.go
package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	domainTelegram "tgpipe/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Sender forwards each line of its input as a text message to one recipient.
type Sender struct {
	client domainTelegram.Client
	input  io.Reader
	logger *logrus.Entry
}

func NewSender(client domainTelegram.Client, input io.Reader, logger *logrus.Entry) *Sender {
	return &Sender{
		client: client,
		input:  input,
		logger: logger.WithField("workflow", "sender"),
	}
}

// Run sends every input line to recipientID, one at a time and in order,
// until the input is exhausted. A recipient id that is not an int64 disables
// sending: the error is logged and Run returns nil without reading input.
func (s *Sender) Run(ctx context.Context, recipientID string) error {
	chatID, err := strconv.ParseInt(recipientID, 10, 64)
	if err != nil {
		s.logger.WithError(err).WithField("recipient_id", recipientID).Error("Invalid id! Sending disabled.")
		return nil
	}

	log := s.logger.WithField("recipient_id", chatID)
	log.Debug("Reading input")

	reader := bufio.NewReader(s.input)
	sent := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			if line == "" {
				// Nothing consumed: the input is broken rather than one bad line.
				log.WithError(readErr).Warn("Input read failed, treating input as exhausted")
				break
			}
			log.WithError(readErr).Warn("Skipping unreadable input line")
			continue
		}
		if readErr != nil && line == "" {
			break
		}

		text := trimLineEnding(line)
		if !utf8.ValidString(text) {
			log.Warn("Skipping input line that is not valid UTF-8")
		} else {
			if err := s.client.SendText(ctx, chatID, text); err != nil {
				log.WithError(err).WithField("sent", sent).Error("Failed to send message")
				return err
			}
			sent++
		}

		if readErr != nil {
			break
		}
	}

	log.WithField("sent", sent).Info("Input exhausted")
	return nil
}

func trimLineEnding(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
