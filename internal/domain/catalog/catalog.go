package catalog

import (
	"errors"
	"fmt"
)

// Category keys form a closed set, fixed at process start.
const (
	KeyIndividual    = "individual"
	KeySmallBusiness = "smallBusiness"
	KeyCompany       = "company"
)

var ErrUnknownCategory = errors.New("unknown taxpayer category")

// Obligation is a single statutory filing or payment requirement.
// A zero Month/Day/MonthlyDay means the corresponding due-date pattern is
// absent; a valid obligation carries at most one of the two patterns.
// Non-recurring obligations are display-only and never evaluated.
type Obligation struct {
	Title           string
	TaxType         string
	DueDateText     string // human-readable, display only
	Description     string // optional
	PenaltyText     string
	Recurring       bool
	Month           int   // annual pattern: 1-12
	Day             int   // annual pattern: 1-31
	MonthlyDay      int   // monthly pattern: 1-31
	ReminderOffsets []int // days-before-due at which a reminder fires
}

// Category bundles the obligations of one taxpayer classification.
type Category struct {
	Key         string
	Name        string
	Description string
	Obligations []Obligation
}

// Catalog is the process-wide immutable rule table. Build it once in main
// and share it; there are no mutation operations.
type Catalog struct {
	ordered []Category
	byKey   map[string]Category
}

// New builds the catalog from the static rule data and validates every
// obligation. Invalid rule data is a startup failure.
func New() (*Catalog, error) {
	ordered := taxDeadlines()
	byKey := make(map[string]Category, len(ordered))
	for _, cat := range ordered {
		for i, ob := range cat.Obligations {
			if err := validateObligation(ob); err != nil {
				return nil, fmt.Errorf("category %q, obligation %d (%s): %w", cat.Key, i+1, ob.Title, err)
			}
		}
		byKey[cat.Key] = cat
	}
	return &Catalog{ordered: ordered, byKey: byKey}, nil
}

// Categories returns all categories in their defined order.
func (c *Catalog) Categories() []Category {
	return c.ordered
}

// Category looks up a category by its key.
func (c *Catalog) Category(key string) (Category, error) {
	cat, ok := c.byKey[key]
	if !ok {
		return Category{}, ErrUnknownCategory
	}
	return cat, nil
}

func validateObligation(ob Obligation) error {
	annual := ob.Month != 0 || ob.Day != 0
	monthly := ob.MonthlyDay != 0

	if annual && monthly {
		return errors.New("obligation carries both an annual and a monthly pattern")
	}
	if annual {
		if ob.Month < 1 || ob.Month > 12 {
			return fmt.Errorf("annual pattern month %d out of range", ob.Month)
		}
		if ob.Day < 1 || ob.Day > 31 {
			return fmt.Errorf("annual pattern day %d out of range", ob.Day)
		}
	}
	if monthly && (ob.MonthlyDay < 1 || ob.MonthlyDay > 31) {
		return fmt.Errorf("monthly pattern day %d out of range", ob.MonthlyDay)
	}
	if !ob.Recurring && (annual || monthly) {
		return errors.New("non-recurring obligation must not carry a due-date pattern")
	}

	seen := make(map[int]bool, len(ob.ReminderOffsets))
	for _, offset := range ob.ReminderOffsets {
		if offset < 0 {
			return fmt.Errorf("negative reminder offset %d", offset)
		}
		if seen[offset] {
			return fmt.Errorf("duplicate reminder offset %d", offset)
		}
		seen[offset] = true
	}
	return nil
}
