package plan

import (
	"math"
	"time"
)

// Plan represents a purchased bundle of listing slots valid for a fixed
// number of days. The BSON field names match the documents the marketplace
// already stores, so the engine can run against the existing collection.
//
// SlotsAvailable is a stored counter, not a derived value: the consumption
// tracker decrements it directly and retirement overwrites it. After any
// consumption SlotsAvailable == SlotsTotal - SlotsUsed; retirement is the one
// deliberate exception, forcing the counter to zero while leaving SlotsUsed
// untouched.
type Plan struct {
	ID             string    `bson:"_id" json:"id"`
	UserID         string    `bson:"userId" json:"userId"`
	Tipo           string    `bson:"tipo" json:"tipo"`
	SlotsTotal     int       `bson:"slotsTotal" json:"slotsTotal"`
	SlotsUsed      int       `bson:"slotsUsed" json:"slotsUsed"`
	SlotsAvailable int       `bson:"slotsAvailable" json:"slotsAvailable"`
	Price          float64   `bson:"price" json:"price"`
	TotalInvested  float64   `bson:"totalInvested" json:"totalInvested"`
	DurationDays   int       `bson:"durationDays" json:"durationDays"`
	PurchasedAt    time.Time `bson:"purchasedAt" json:"purchasedAt"`
	ExpiresAt      time.Time `bson:"expiresAt" json:"expiresAt"`
	DaysBonified   int       `bson:"daysBonified,omitempty" json:"daysBonified,omitempty"`
	SlotsBonified  int       `bson:"slotsBonified,omitempty" json:"slotsBonified,omitempty"`
}

// Status is derived from timestamps and counters; there is no stored status
// field on the document.
type Status string

const (
	StatusActive    Status = "active"    // valid until expiry with slots remaining
	StatusExhausted Status = "exhausted" // time remains but every slot is used
	StatusExpired   Status = "expired"   // past expiry, naturally or by retirement
)

// IsActiveAt reports whether the plan satisfies the active predicate at the
// given instant: not yet expired and at least one slot remaining.
func (p *Plan) IsActiveAt(now time.Time) bool {
	return !p.ExpiresAt.Before(now) && p.SlotsAvailable > 0
}

// StatusAt derives the plan's lifecycle status at the given instant.
func (p *Plan) StatusAt(now time.Time) Status {
	if p.ExpiresAt.Before(now) {
		return StatusExpired
	}
	if p.SlotsAvailable <= 0 {
		return StatusExhausted
	}
	return StatusActive
}

// DaysRemainingAt returns the whole days left until expiry at the given
// instant, at day granularity.
func (p *Plan) DaysRemainingAt(now time.Time) int {
	return DaysRemaining(p.ExpiresAt, now)
}

// PercentUsed returns slot consumption as a rounded percentage.
// Returns 0 for a plan with no slots at all.
func (p *Plan) PercentUsed() int {
	if p.SlotsTotal == 0 {
		return 0
	}
	return int(math.Round(float64(p.SlotsUsed) / float64(p.SlotsTotal) * 100))
}
