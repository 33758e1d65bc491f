package plan

import "context"

// Summary is the dashboard projection of a user's active plan. A user without
// an active plan gets HasPlan false with zeroed fields, never an error.
type Summary struct {
	HasPlan        bool
	Plan           *Plan
	DaysRemaining  int
	SlotsRemaining int
	PercentUsed    int
	ExpiringSoon   bool
}

// Summary projects the user's active plan for display. Pure read; calling it
// twice without an intervening mutation yields identical output.
func (s *Service) Summary(ctx context.Context, userID string) Summary {
	now := s.now()
	active := s.activePlanAt(ctx, userID, now)
	if active == nil {
		return Summary{}
	}

	days := DaysRemaining(active.ExpiresAt, now)
	return Summary{
		HasPlan:        true,
		Plan:           active,
		DaysRemaining:  days,
		SlotsRemaining: active.SlotsAvailable,
		PercentUsed:    active.PercentUsed(),
		ExpiringSoon:   days > 0 && days <= 7,
	}
}
