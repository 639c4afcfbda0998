// Package notify publishes domain events to downstream consumers.
package notify

import (
	"context"

	"estate/internal/model"
)

// Notifier receives inquiry lifecycle events
type Notifier interface {
	InquiryCreated(ctx context.Context, event model.InquiryEvent) error
}

// NoopNotifier drops every event. Used when no broker is configured.
type NoopNotifier struct{}

func (NoopNotifier) InquiryCreated(context.Context, model.InquiryEvent) error { return nil }
