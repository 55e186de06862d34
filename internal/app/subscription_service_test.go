package app

import (
	"context"
	"errors"
	"testing"

	"tax_deadline_bot/internal/domain/catalog"
	"tax_deadline_bot/internal/domain/subscriber"
)

func newTestSubscriptionService(t *testing.T, repo subscriber.Repository) *SubscriptionService {
	t.Helper()
	rules, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New error: %v", err)
	}
	return NewSubscriptionService(rules, repo, testLogger())
}

func TestChooseCategorySavesSelection(t *testing.T) {
	t.Parallel()

	repo := &fakeSubscriberRepo{}
	svc := newTestSubscriptionService(t, repo)

	cat, err := svc.ChooseCategory(context.Background(), 42, catalog.KeyCompany)
	if err != nil {
		t.Fatalf("ChooseCategory error: %v", err)
	}
	if cat.Key != catalog.KeyCompany {
		t.Fatalf("returned category %q, want %q", cat.Key, catalog.KeyCompany)
	}
	if len(repo.upserts) != 1 {
		t.Fatalf("recorded %d upserts, want 1", len(repo.upserts))
	}
	if got := repo.upserts[0]; got.chatID != 42 || got.categoryKey != catalog.KeyCompany {
		t.Fatalf("upsert = %+v, want chat 42 with %q", got, catalog.KeyCompany)
	}
}

func TestChooseCategoryRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	repo := &fakeSubscriberRepo{}
	svc := newTestSubscriptionService(t, repo)

	if _, err := svc.ChooseCategory(context.Background(), 42, "freelancer"); !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("ChooseCategory error = %v, want ErrUnknownCategory", err)
	}
	if len(repo.upserts) != 0 {
		t.Fatalf("recorded %d upserts for an unknown key, want 0", len(repo.upserts))
	}
}

func TestCurrentCategory(t *testing.T) {
	t.Parallel()

	repo := &fakeSubscriberRepo{subs: []*subscriber.Subscriber{
		activeSubscriber(1, catalog.KeyIndividual),
		activeSubscriber(2, ""), // registered but never picked
	}}
	svc := newTestSubscriptionService(t, repo)

	cat, err := svc.CurrentCategory(context.Background(), 1)
	if err != nil {
		t.Fatalf("CurrentCategory(1) error: %v", err)
	}
	if cat.Key != catalog.KeyIndividual {
		t.Fatalf("CurrentCategory(1) = %q, want %q", cat.Key, catalog.KeyIndividual)
	}

	if _, err := svc.CurrentCategory(context.Background(), 2); !errors.Is(err, ErrNoCategorySelected) {
		t.Fatalf("CurrentCategory(2) error = %v, want ErrNoCategorySelected", err)
	}
	if _, err := svc.CurrentCategory(context.Background(), 99); !errors.Is(err, ErrNoCategorySelected) {
		t.Fatalf("CurrentCategory(99) error = %v, want ErrNoCategorySelected", err)
	}
}
