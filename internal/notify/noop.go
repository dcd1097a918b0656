package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used when Telegram is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendDecision logs and discards a single notification.
func (n *NoOpNotifier) SendDecision(_ context.Context, note *Notification) error {
	n.log.Debug("notification discarded (no backend configured)",
		"search_id", note.SearchID,
		"search", note.SearchTitle,
		"reason", note.Reason,
	)
	return nil
}

// SendBatch logs and discards a batch of notifications.
func (n *NoOpNotifier) SendBatch(_ context.Context, ns []Notification, searchTitle string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"search", searchTitle,
		"count", len(ns),
	)
	return nil
}
