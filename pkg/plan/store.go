package plan

import "context"

// Store defines the interface for plan persistence. Implementations carry no
// business logic; every lifecycle decision lives in the Service.
type Store interface {
	// Insert persists a new plan record.
	Insert(ctx context.Context, p *Plan) error

	// Update replaces the stored record with the same ID.
	// Returns ErrPlanNotFound if no such record exists.
	Update(ctx context.Context, p *Plan) error

	// ListByUser returns every plan record owned by the user, unordered.
	ListByUser(ctx context.Context, userID string) ([]Plan, error)
}
