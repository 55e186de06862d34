package database

import (
	"context"
	"database/sql"
	"fmt"

	"tax_deadline_bot/internal/domain/subscriber"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var ErrSubscriberNotFound = fmt.Errorf("subscriber not found")

type PostgresSubscriberRepository struct {
	db *sql.DB
}

func NewPostgresSubscriberRepository(db *sql.DB) *PostgresSubscriberRepository {
	return &PostgresSubscriberRepository{db: db}
}

func (r *PostgresSubscriberRepository) All(ctx context.Context) ([]*subscriber.Subscriber, error) {
	query := `SELECT chat_id, category, active, registered_at, last_updated_at
               FROM subscribers ORDER BY registered_at, chat_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]*subscriber.Subscriber, 0)
	for rows.Next() {
		s := &subscriber.Subscriber{}
		if err := rows.Scan(&s.ChatID, &s.Category, &s.Active, &s.RegisteredAt, &s.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribers: %w", err)
	}
	return subs, nil
}

func (r *PostgresSubscriberRepository) GetByChatID(ctx context.Context, chatID int64) (*subscriber.Subscriber, error) {
	query := `SELECT chat_id, category, active, registered_at, last_updated_at
               FROM subscribers WHERE chat_id = $1`

	s := &subscriber.Subscriber{}
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(&s.ChatID, &s.Category, &s.Active, &s.RegisteredAt, &s.LastUpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("error getting subscriber by chat ID: %w", err)
	}
	return s, nil
}

// Upsert keeps exactly one record per chat id. A fresh selection creates the
// subscriber as active; a re-selection only moves category and the
// last-updated timestamp, leaving active and registered_at untouched.
func (r *PostgresSubscriberRepository) Upsert(ctx context.Context, chatID int64, categoryKey string) error {
	query := `INSERT INTO subscribers (chat_id, category, active)
               VALUES ($1, $2, TRUE)
               ON CONFLICT (chat_id) DO UPDATE
               SET category = EXCLUDED.category, last_updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, chatID, categoryKey); err != nil {
		return fmt.Errorf("error upserting subscriber %d: %w", chatID, err)
	}
	return nil
}
