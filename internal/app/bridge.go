// internal/app/bridge.go
package app

import (
	"context"
	"sync"

	"tgpipe/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Workflow is one of the two halves of the bridge.
type Workflow interface {
	Run(ctx context.Context) error
}

// WorkflowFunc adapts a function to Workflow.
type WorkflowFunc func(ctx context.Context) error

func (f WorkflowFunc) Run(ctx context.Context) error { return f(ctx) }

// Bridge dispatches a run to the sender, the receiver, or both.
type Bridge struct {
	send    Workflow
	receive Workflow
	logger  *logrus.Entry
}

func NewBridge(send, receive Workflow, logger *logrus.Entry) *Bridge {
	return &Bridge{send: send, receive: receive, logger: logger}
}

// NewBridgeFromConfig wires a Sender bound to the configured recipient and a Receiver.
func NewBridgeFromConfig(cfg *config.AppConfig, sender *Sender, receiver *Receiver, logger *logrus.Entry) *Bridge {
	send := WorkflowFunc(func(ctx context.Context) error {
		return sender.Run(ctx, cfg.ReceiverID)
	})
	return NewBridge(send, receiver, logger)
}

// Run executes the workflows selected by mode. In ModeBoth both run
// concurrently and Run waits for both; a sender error takes priority over a
// receiver error.
func (b *Bridge) Run(ctx context.Context, mode config.Mode) error {
	b.logger.WithField("mode", mode.String()).Info("Bridge starting")

	switch mode {
	case config.ModeSendOnly:
		return b.send.Run(ctx)
	case config.ModeReceiveOnly:
		return b.receive.Run(ctx)
	}

	var wg sync.WaitGroup
	var sendErr, receiveErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		sendErr = b.send.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		receiveErr = b.receive.Run(ctx)
	}()
	wg.Wait()

	if sendErr != nil {
		return sendErr
	}
	return receiveErr
}
