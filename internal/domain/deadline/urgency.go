package deadline

// Urgency classifies how pressing a reminder is.
type Urgency string

const (
	UrgencyUrgent    Urgency = "URGENT"    // due today or tomorrow
	UrgencyImportant Urgency = "IMPORTANT" // due within three days
	UrgencyStandard  Urgency = "REMINDER"
)

// UrgencyFor derives the urgency tier from the days remaining before the due
// date.
func UrgencyFor(daysRemaining int) Urgency {
	switch {
	case daysRemaining <= 1:
		return UrgencyUrgent
	case daysRemaining <= 3:
		return UrgencyImportant
	default:
		return UrgencyStandard
	}
}
