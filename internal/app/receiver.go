// internal/app/receiver.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	domainTelegram "tgpipe/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Receiver writes every incoming text message as one record line.
type Receiver struct {
	updates domainTelegram.UpdateSource
	out     *bufio.Writer
	logger  *logrus.Entry
}

func NewReceiver(updates domainTelegram.UpdateSource, output io.Writer, logger *logrus.Entry) *Receiver {
	return &Receiver{
		updates: updates,
		out:     bufio.NewWriter(output),
		logger:  logger.WithField("workflow", "receiver"),
	}
}

// Run consumes the update source until it ends (io.EOF) or fails. Each record
// is flushed as soon as it is written. Non-text updates produce no output.
func (r *Receiver) Run(ctx context.Context) error {
	r.logger.Debug("Waiting for updates")
	for {
		upd, err := r.updates.Next(ctx)
		if errors.Is(err, io.EOF) {
			r.logger.Info("Update stream ended")
			return nil
		}
		if err != nil {
			r.logger.WithError(err).Error("Update stream failed")
			return err
		}

		msg, ok := textMessage(upd)
		if !ok {
			r.logger.WithField("update_id", upd.ID).Debug("Skipping non-text update")
			continue
		}

		if _, err := r.out.WriteString(FormatRecord(msg)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := r.out.Flush(); err != nil {
			return fmt.Errorf("flush record: %w", err)
		}
	}
}
