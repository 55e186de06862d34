package deadline

import (
	"testing"
	"time"

	"tax_deadline_bot/internal/domain/catalog"
)

func annualObligation(month, day int, offsets ...int) catalog.Obligation {
	return catalog.Obligation{
		Title:           "annual filing",
		Recurring:       true,
		Month:           month,
		Day:             day,
		ReminderOffsets: offsets,
	}
}

func monthlyObligation(day int, offsets ...int) catalog.Obligation {
	return catalog.Obligation{
		Title:           "monthly remittance",
		Recurring:       true,
		MonthlyDay:      day,
		ReminderOffsets: offsets,
	}
}

func singleObligationCategory(ob catalog.Obligation) catalog.Category {
	return catalog.Category{Key: "test", Obligations: []catalog.Obligation{ob}}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDueRemindersAnnual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		today         time.Time
		obligation    catalog.Obligation
		wantRemaining int
		wantFires     bool
	}{
		{
			name:          "one day before fires with offset 1",
			today:         date(2025, time.January, 30),
			obligation:    annualObligation(1, 31, 30, 14, 7, 3, 1),
			wantRemaining: 1,
			wantFires:     true,
		},
		{
			name:          "due today fires only with explicit zero offset",
			today:         date(2025, time.June, 10),
			obligation:    annualObligation(6, 10, 0),
			wantRemaining: 0,
			wantFires:     true,
		},
		{
			name:       "due today without zero offset stays silent",
			today:      date(2025, time.June, 10),
			obligation: annualObligation(6, 10, 7, 3, 1),
			wantFires:  false,
		},
		{
			name:          "passed date rolls to next year",
			today:         date(2025, time.February, 1),
			obligation:    annualObligation(1, 31, 364),
			wantRemaining: 364,
			wantFires:     true,
		},
		{
			name:       "exact membership, not threshold",
			today:      date(2025, time.January, 16),
			obligation: annualObligation(1, 31, 30, 14, 7, 3, 1),
			wantFires:  false, // 15 days remain, 15 is not an offset
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DueReminders(tt.today, singleObligationCategory(tt.obligation))
			if !tt.wantFires {
				if len(got) != 0 {
					t.Fatalf("DueReminders = %v, want no reminders", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("DueReminders returned %d reminders, want 1", len(got))
			}
			if got[0].DaysRemaining != tt.wantRemaining {
				t.Fatalf("DaysRemaining = %d, want %d", got[0].DaysRemaining, tt.wantRemaining)
			}
		})
	}
}

func TestDueRemindersAnnualCountdownIsMonotonic(t *testing.T) {
	t.Parallel()

	offsets := make([]int, 15)
	for i := range offsets {
		offsets[i] = i
	}
	cat := singleObligationCategory(annualObligation(3, 15, offsets...))

	want := 14
	for today := date(2025, time.March, 1); !today.After(date(2025, time.March, 15)); today = today.AddDate(0, 0, 1) {
		got := DueReminders(today, cat)
		if len(got) != 1 {
			t.Fatalf("day %s: got %d reminders, want 1", today.Format("2006-01-02"), len(got))
		}
		if got[0].DaysRemaining != want {
			t.Fatalf("day %s: DaysRemaining = %d, want %d", today.Format("2006-01-02"), got[0].DaysRemaining, want)
		}
		want--
	}
}

func TestDueRemindersMonthly(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		today         time.Time
		obligation    catalog.Obligation
		wantRemaining int
		wantFires     bool
	}{
		{
			name:          "seven days before the 21st fires",
			today:         date(2025, time.March, 14),
			obligation:    monthlyObligation(21, 14, 7, 3, 1),
			wantRemaining: 7,
			wantFires:     true,
		},
		{
			name:       "target day already passed never fires",
			today:      date(2025, time.March, 20),
			obligation: monthlyObligation(14, 10, 7, 3, 1),
			wantFires:  false, // daysUntil = -6
		},
		{
			name:          "ten days before the 14th fires",
			today:         date(2025, time.March, 4),
			obligation:    monthlyObligation(14, 10, 7, 3, 1),
			wantRemaining: 10,
			wantFires:     true,
		},
		{
			name:       "nine days before the 14th has no matching offset",
			today:      date(2025, time.March, 5),
			obligation: monthlyObligation(14, 10, 7, 3, 1),
			wantFires:  false,
		},
		{
			name:          "day 31 target in a 30 day month still uses plain subtraction",
			today:         date(2025, time.April, 30),
			obligation:    monthlyObligation(31, 1, 0),
			wantRemaining: 1, // April 31st does not exist, the subtraction does not care
			wantFires:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DueReminders(tt.today, singleObligationCategory(tt.obligation))
			if !tt.wantFires {
				if len(got) != 0 {
					t.Fatalf("DueReminders = %v, want no reminders", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("DueReminders returned %d reminders, want 1", len(got))
			}
			if got[0].DaysRemaining != tt.wantRemaining {
				t.Fatalf("DaysRemaining = %d, want %d", got[0].DaysRemaining, tt.wantRemaining)
			}
		})
	}
}

func TestDueRemindersSkipsNonEvaluable(t *testing.T) {
	t.Parallel()

	cat := catalog.Category{Key: "test", Obligations: []catalog.Obligation{
		{Title: "display only", Recurring: false},
		{Title: "recurring without pattern", Recurring: true, ReminderOffsets: []int{30, 14, 7}},
		{Title: "empty offsets", Recurring: true, Month: 1, Day: 31},
	}}

	if got := DueReminders(date(2025, time.January, 17), cat); len(got) != 0 {
		t.Fatalf("DueReminders = %v, want no reminders", got)
	}
}

func TestDueRemindersIsPureAndOrderPreserving(t *testing.T) {
	t.Parallel()

	cat := catalog.Category{Key: "test", Obligations: []catalog.Obligation{
		annualObligation(1, 31, 14),
		monthlyObligation(21, 4),
		annualObligation(1, 31, 30, 14),
	}}
	today := date(2025, time.January, 17)

	first := DueReminders(today, cat)
	second := DueReminders(today, cat)

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("got %d and %d reminders, want 3 and 3", len(first), len(second))
	}
	for i := range first {
		if first[i].Obligation.Title != cat.Obligations[i].Title {
			t.Fatalf("reminder %d is %q, want category order preserved", i, first[i].Obligation.Title)
		}
		if first[i].Obligation.Title != second[i].Obligation.Title || first[i].DaysRemaining != second[i].DaysRemaining {
			t.Fatalf("reminder %d differs between identical calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestDueRemindersAgainstShippedCatalog(t *testing.T) {
	t.Parallel()

	rules, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New error: %v", err)
	}

	individual, err := rules.Category(catalog.KeyIndividual)
	if err != nil {
		t.Fatalf("Category(individual) error: %v", err)
	}
	got := DueReminders(date(2025, time.January, 17), individual)
	if len(got) != 2 {
		t.Fatalf("individual on 2025-01-17: got %d reminders, want 2 (both 31 January filings)", len(got))
	}
	for _, rem := range got {
		if rem.DaysRemaining != 14 {
			t.Fatalf("%s: DaysRemaining = %d, want 14", rem.Obligation.Title, rem.DaysRemaining)
		}
	}

	company, err := rules.Category(catalog.KeyCompany)
	if err != nil {
		t.Fatalf("Category(company) error: %v", err)
	}
	fires := func(today time.Time, title string) bool {
		for _, rem := range DueReminders(today, company) {
			if rem.Obligation.Title == title {
				return true
			}
		}
		return false
	}
	if !fires(date(2025, time.March, 4), "Monthly VAT Remittance") {
		t.Fatal("VAT remittance should fire 10 days before the 14th")
	}
	if fires(date(2025, time.March, 5), "Monthly VAT Remittance") {
		t.Fatal("VAT remittance must not fire 9 days before the 14th")
	}
}

func TestUrgencyFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		daysRemaining int
		want          Urgency
	}{
		{0, UrgencyUrgent},
		{1, UrgencyUrgent},
		{2, UrgencyImportant},
		{3, UrgencyImportant},
		{4, UrgencyStandard},
		{7, UrgencyStandard},
		{60, UrgencyStandard},
	}

	for _, tt := range tests {
		if got := UrgencyFor(tt.daysRemaining); got != tt.want {
			t.Fatalf("UrgencyFor(%d) = %s, want %s", tt.daysRemaining, got, tt.want)
		}
	}
}
