package subscriber

import (
	"database/sql"
	"time"
)

// Subscriber is a Telegram chat registered for deadline reminders.
type Subscriber struct {
	ChatID        int64
	Category      sql.NullString // catalog key; NULL until the user picks one
	Active        bool
	RegisteredAt  time.Time
	LastUpdatedAt time.Time
}
