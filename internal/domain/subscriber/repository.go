package subscriber

import (
	"context"
)

// Repository defines the operations for persisting and retrieving Subscriber
// records. The daily evaluation only ever reads; writes happen solely through
// Upsert when a user selects a category.
type Repository interface {
	All(ctx context.Context) ([]*Subscriber, error)
	GetByChatID(ctx context.Context, chatID int64) (*Subscriber, error)
	// Upsert creates the subscriber as active with the given category, or
	// updates the category and last-updated timestamp when the chat id is
	// already known.
	Upsert(ctx context.Context, chatID int64, categoryKey string) error
}
