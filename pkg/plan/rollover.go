package plan

import "time"

// Rollover holds the unused balance carried from an expiring plan into a new
// purchase.
type Rollover struct {
	BonusDays  int
	BonusSlots int
}

// DaysRemaining returns the number of whole days between now and expiresAt.
// Both timestamps are truncated to midnight UTC before subtracting, so a plan
// expiring late tonight and one expiring early tomorrow morning count the
// same number of days. The result is floored at 0.
func DaysRemaining(expiresAt, now time.Time) int {
	days := int(dateOnly(expiresAt).Sub(dateOnly(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// ComputeRollover calculates the bonus carried from the active plan at the
// given instant. A nil plan yields a zero rollover. Days and slots carry
// independently: a plan with time left but no slots still contributes its
// remaining days.
func ComputeRollover(active *Plan, now time.Time) Rollover {
	if active == nil {
		return Rollover{}
	}
	return Rollover{
		BonusDays:  DaysRemaining(active.ExpiresAt, now),
		BonusSlots: max(active.SlotsAvailable, 0),
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
