// Package messagehandler guards goroutines that process untrusted,
// network-derived input against panics, so one malformed message can't take
// down a long-running service loop.
package messagehandler

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "messagehandler")

// SafelyHandleMessage will recover and log any panic that occurs from the
// input message handler, and logs the handler's error otherwise; it
// returns nothing.
func SafelyHandleMessage(ctx context.Context, fn func(context.Context, interface{}) error, msg interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{
				"r":     r,
				"stack": string(debug.Stack()),
			}).Error("Panic occurred while handling message")
		}
	}()
	if err := fn(ctx, msg); err != nil {
		log.WithError(err).Error("Could not handle message")
	}
}

// HandlePanic recovers and logs any panic that occurs while validating or
// processing a gossip message, without halting the message loop.
func HandlePanic(ctx context.Context, msg interface{}) {
	if r := recover(); r != nil {
		log.WithFields(logrus.Fields{
			"r":     r,
			"stack": string(debug.Stack()),
			"msg":   msg,
		}).Error("Panic occurred")
	}
}
