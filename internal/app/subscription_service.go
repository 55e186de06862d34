package app

import (
	"context"
	"errors"
	"fmt"

	"tax_deadline_bot/internal/domain/catalog"
	"tax_deadline_bot/internal/domain/subscriber"
	idb "tax_deadline_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// ErrNoCategorySelected is returned when a chat has not picked a taxpayer
// category yet.
var ErrNoCategorySelected = errors.New("no taxpayer category selected")

// SubscriptionService handles category selection and lookup for chats.
type SubscriptionService struct {
	rules          *catalog.Catalog
	subscriberRepo subscriber.Repository
	logger         *logrus.Entry
}

func NewSubscriptionService(rules *catalog.Catalog, subscriberRepo subscriber.Repository, logger *logrus.Entry) *SubscriptionService {
	return &SubscriptionService{
		rules:          rules,
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

// ChooseCategory registers or re-registers a chat under the given category.
// Unknown keys surface catalog.ErrUnknownCategory without touching the store.
func (s *SubscriptionService) ChooseCategory(ctx context.Context, chatID int64, key string) (catalog.Category, error) {
	cat, err := s.rules.Category(key)
	if err != nil {
		return catalog.Category{}, err
	}

	if err := s.subscriberRepo.Upsert(ctx, chatID, cat.Key); err != nil {
		return catalog.Category{}, fmt.Errorf("failed to save category selection for chat %d: %w", chatID, err)
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id":  chatID,
		"category": cat.Key,
	}).Info("Category selection saved")
	return cat, nil
}

// CurrentCategory resolves the category the chat is registered under.
func (s *SubscriptionService) CurrentCategory(ctx context.Context, chatID int64) (catalog.Category, error) {
	sub, err := s.subscriberRepo.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, idb.ErrSubscriberNotFound) {
			return catalog.Category{}, ErrNoCategorySelected
		}
		return catalog.Category{}, fmt.Errorf("failed to load subscriber %d: %w", chatID, err)
	}
	if !sub.Category.Valid {
		return catalog.Category{}, ErrNoCategorySelected
	}
	return s.rules.Category(sub.Category.String)
}
