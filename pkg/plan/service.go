package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Locker serializes operations per key. The engine uses it, when configured,
// to hold a per-user lock across its multi-step read-compute-write sequences.
type Locker interface {
	// Acquire takes the lock for key, returning a release function.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// PurchaseSpec describes a new plan purchase before any rollover is applied.
type PurchaseSpec struct {
	Tipo         string
	Slots        int
	DurationDays int
	Price        float64
}

// Validate rejects specs that nothing downstream checks: non-positive slot
// and duration counts and negative prices.
func (spec PurchaseSpec) Validate() error {
	if spec.Slots <= 0 {
		return errors.Join(ErrInvalidPurchase, fmt.Errorf("slots must be positive, got %d", spec.Slots))
	}
	if spec.DurationDays <= 0 {
		return errors.Join(ErrInvalidPurchase, fmt.Errorf("duration days must be positive, got %d", spec.DurationDays))
	}
	if spec.Price < 0 {
		return errors.Join(ErrInvalidPurchase, fmt.Errorf("price must not be negative, got %v", spec.Price))
	}
	return nil
}

// Receipt is returned by Commit and rendered by the purchase UI.
type Receipt struct {
	PlanID        string
	DaysBonified  int
	SlotsBonified int
}

// Preview is returned by Simulate: the totals the user would end up with if
// they confirmed the purchase right now. It can diverge from the eventual
// Commit if the user's plans change in between; no reservation is held.
type Preview struct {
	BonusDays     int
	BonusSlots    int
	SlotsTotal    int
	DurationDays  int
	ExpiresAt     time.Time
	TotalInvested float64
}

// Service is the plan lifecycle engine: it decides which plan is active,
// folds unused balance from an expiring plan into a new purchase, tracks slot
// consumption, and projects dashboard summaries.
type Service struct {
	store  Store
	log    *slog.Logger
	locker Locker
	now    func() time.Time
}

// NewService creates the engine around a Store.
// Panics if store is nil to fail fast during initialization.
func NewService(store Store, opts ...Option) *Service {
	if store == nil {
		panic("plan: store is required")
	}

	s := &Service{
		store: store,
		log:   slog.Default(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plans returns every plan record owned by the user, unordered.
//
// Persistence failures are absorbed and reported as an empty list, matching
// what every caller of this layer has historically relied on: absence of
// plans and an unreachable store look identical from the outside. The
// distinction is logged here.
func (s *Service) Plans(ctx context.Context, userID string) []Plan {
	plans, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "listing plans failed, reporting none",
			slog.String("user_id", userID), slog.Any("error", err))
		return nil
	}
	return plans
}

// ActivePlan returns the user's single active plan, or nil if none qualifies.
// Active means not yet expired with at least one slot remaining; when several
// records qualify the one with the latest expiry wins.
func (s *Service) ActivePlan(ctx context.Context, userID string) *Plan {
	return s.activePlanAt(ctx, userID, s.now())
}

func (s *Service) activePlanAt(ctx context.Context, userID string, now time.Time) *Plan {
	var active *Plan
	for _, p := range s.Plans(ctx, userID) {
		if !p.IsActiveAt(now) {
			continue
		}
		if active == nil || p.ExpiresAt.After(active.ExpiresAt) {
			active = &p
		}
	}
	return active
}

// rolloverSourceAt picks the plan whose balance a new purchase absorbs.
// Normally that is the active plan, but a plan whose slots ran out before its
// time did still carries its remaining days: days and slots roll over
// independently. Falls back to the latest not-yet-expired record when no plan
// satisfies the strict active predicate.
func (s *Service) rolloverSourceAt(ctx context.Context, userID string, now time.Time) *Plan {
	var active, current *Plan
	for _, p := range s.Plans(ctx, userID) {
		if p.ExpiresAt.Before(now) {
			continue
		}
		if current == nil || p.ExpiresAt.After(current.ExpiresAt) {
			current = &p
		}
		if p.SlotsAvailable > 0 && (active == nil || p.ExpiresAt.After(active.ExpiresAt)) {
			active = &p
		}
	}
	if active != nil {
		return active
	}
	return current
}

// Commit purchases a new plan for the user, folding in the unused balance of
// the currently active plan. The active plan, if any, is retired: its
// available slots drop to zero and its expiry is forced to now. Rollover is
// strictly additive; buying early never costs the user days or slots.
//
// The sequence read active, retire, insert runs without a store transaction.
// A Locker, when configured, serializes it per user; without one, concurrent
// commits can both absorb the same balance.
func (s *Service) Commit(ctx context.Context, userID string, spec PurchaseSpec) (*Receipt, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, userKey(userID))
		if err != nil {
			return nil, errors.Join(ErrConcurrentUpdate, err)
		}
		defer release()
	}

	now := s.now()
	active := s.rolloverSourceAt(ctx, userID, now)
	ro := ComputeRollover(active, now)

	var prevInvested float64
	if active != nil {
		prevInvested = active.TotalInvested

		retired := *active
		retired.SlotsAvailable = 0
		retired.ExpiresAt = now
		if err := s.store.Update(ctx, &retired); err != nil {
			return nil, fmt.Errorf("retire plan %s: %w", active.ID, err)
		}
	}

	merged := &Plan{
		ID:             uuid.NewString(),
		UserID:         userID,
		Tipo:           spec.Tipo,
		SlotsTotal:     spec.Slots + ro.BonusSlots,
		SlotsUsed:      0,
		SlotsAvailable: spec.Slots + ro.BonusSlots,
		Price:          spec.Price,
		TotalInvested:  spec.Price + prevInvested,
		DurationDays:   spec.DurationDays + ro.BonusDays,
		PurchasedAt:    now,
		ExpiresAt:      now.AddDate(0, 0, spec.DurationDays+ro.BonusDays),
		DaysBonified:   ro.BonusDays,
		SlotsBonified:  ro.BonusSlots,
	}
	if err := s.store.Insert(ctx, merged); err != nil {
		// The old plan is already retired at this point; there is no
		// compensation step. The caller must surface the failure.
		s.log.ErrorContext(ctx, "plan purchase failed after retirement",
			slog.String("user_id", userID), slog.Any("error", err))
		return nil, fmt.Errorf("create plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan committed",
		slog.String("user_id", userID),
		slog.String("plan_id", merged.ID),
		slog.String("tipo", merged.Tipo),
		slog.Int("days_bonified", ro.BonusDays),
		slog.Int("slots_bonified", ro.BonusSlots))

	return &Receipt{
		PlanID:        merged.ID,
		DaysBonified:  ro.BonusDays,
		SlotsBonified: ro.BonusSlots,
	}, nil
}

// Simulate computes the same merge a Commit would perform right now, without
// writing anything. The purchase UI shows the result before asking the user
// to confirm payment.
func (s *Service) Simulate(ctx context.Context, userID string, spec PurchaseSpec) (*Preview, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	active := s.rolloverSourceAt(ctx, userID, now)
	ro := ComputeRollover(active, now)

	var prevInvested float64
	if active != nil {
		prevInvested = active.TotalInvested
	}

	return &Preview{
		BonusDays:     ro.BonusDays,
		BonusSlots:    ro.BonusSlots,
		SlotsTotal:    spec.Slots + ro.BonusSlots,
		DurationDays:  spec.DurationDays + ro.BonusDays,
		ExpiresAt:     now.AddDate(0, 0, spec.DurationDays+ro.BonusDays),
		TotalInvested: spec.Price + prevInvested,
	}, nil
}

// ConsumeSlot decrements the active plan's slot balance when a listing is
// published. Returns false when the user has no active plan or no slots left;
// the caller must block the publish action and suggest an upgrade rather than
// report a system error.
func (s *Service) ConsumeSlot(ctx context.Context, userID string) (bool, error) {
	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, userKey(userID))
		if err != nil {
			return false, errors.Join(ErrConcurrentUpdate, err)
		}
		defer release()
	}

	active := s.activePlanAt(ctx, userID, s.now())
	if active == nil || active.SlotsAvailable <= 0 {
		return false, nil
	}

	updated := *active
	updated.SlotsAvailable--
	updated.SlotsUsed++
	if err := s.store.Update(ctx, &updated); err != nil {
		return false, fmt.Errorf("consume slot on plan %s: %w", active.ID, err)
	}

	s.log.DebugContext(ctx, "slot consumed",
		slog.String("user_id", userID),
		slog.String("plan_id", updated.ID),
		slog.Int("slots_available", updated.SlotsAvailable))

	return true, nil
}

func userKey(userID string) string {
	return "plan:user:" + userID
}
