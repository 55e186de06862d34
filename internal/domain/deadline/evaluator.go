// Package deadline decides which reminder offsets fire for the obligations of
// a category on a given day. Evaluation is pure: the same today and category
// always yield the same result, with no hidden state and no I/O.
package deadline

import (
	"time"

	"tax_deadline_bot/internal/domain/catalog"
)

// Reminder pairs an obligation with the number of whole days left before its
// due date at the moment of evaluation.
type Reminder struct {
	Obligation    catalog.Obligation
	DaysRemaining int
}

// DueReminders evaluates every recurring obligation of cat against today and
// returns the reminders whose days-remaining value is an exact member of the
// obligation's offset set. The result preserves the obligation order of the
// category, and an obligation contributes at most one entry per populated
// pattern.
//
// Annual patterns roll over to next year once this year's date has strictly
// passed. Monthly patterns use plain day-of-month subtraction: a target day
// already behind today yields a negative value that matches no offset, and
// the target day is not validated against the length of the current month.
func DueReminders(today time.Time, cat catalog.Category) []Reminder {
	day := dateOnly(today)

	var due []Reminder
	for _, ob := range cat.Obligations {
		if !ob.Recurring {
			continue
		}

		if ob.Month != 0 && ob.Day != 0 {
			dueDate := time.Date(day.Year(), time.Month(ob.Month), ob.Day, 0, 0, 0, 0, time.UTC)
			if dueDate.Before(day) {
				dueDate = time.Date(day.Year()+1, time.Month(ob.Month), ob.Day, 0, 0, 0, 0, time.UTC)
			}
			remaining := int(dueDate.Sub(day) / (24 * time.Hour))
			if hasOffset(ob.ReminderOffsets, remaining) {
				due = append(due, Reminder{Obligation: ob, DaysRemaining: remaining})
			}
		}

		if ob.MonthlyDay != 0 {
			until := ob.MonthlyDay - day.Day()
			if until >= 0 && hasOffset(ob.ReminderOffsets, until) {
				due = append(due, Reminder{Obligation: ob, DaysRemaining: until})
			}
		}
	}
	return due
}

// dateOnly rebuilds t as midnight UTC so day differences are exact multiples
// of 24 hours regardless of the caller's zone or DST.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func hasOffset(offsets []int, days int) bool {
	for _, offset := range offsets {
		if offset == days {
			return true
		}
	}
	return false
}
