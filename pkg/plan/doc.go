// Package plan implements the marketplace's plan lifecycle and bonification
// engine: which of a user's purchased plans is active, how the unused days
// and slots of an expiring plan fold into a newly purchased one, and how slot
// consumption is tracked as listings are published.
//
// # Model
//
// A Plan is a bundle of listing slots valid for a fixed number of days. There
// is no stored status field: active, exhausted, and expired are all inferred
// from the expiry timestamp and the slot counter against wall-clock time.
// Exactly one plan per user is considered active at any instant -- the
// not-yet-expired record with slots remaining and the latest expiry.
//
// Purchasing while a plan is still active retires the old plan (slots forced
// to zero, expiry forced to now) and creates a new one that absorbs the old
// plan's remaining days and slots on top of what was bought. Days and slots
// carry independently; the carry-over is strictly additive.
//
// # Operations
//
//   - Commit: purchase with rollover, returning the bonified totals
//   - Simulate: the same computation with no writes, for purchase previews
//   - ConsumeSlot: decrement the active plan when a listing is published
//   - Summary: dashboard projection (days left, percent used, expiring soon)
//   - Plans / ActivePlan: the query layer the operations above build on
//
// # Quick Start
//
//	db, err := mongo.NewDatabase(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := plan.NewMongoStore(db.Collection("planes"))
//	svc := plan.NewService(store)
//
//	preview, err := svc.Simulate(ctx, userID, plan.PurchaseSpec{
//		Tipo: "premium", Slots: 20, DurationDays: 30, Price: 5,
//	})
//	// render preview, then on confirmation:
//	receipt, err := svc.Commit(ctx, userID, spec)
//
// # Concurrency
//
// The engine's multi-step sequences run without a store transaction. Query
// failures are absorbed as "no plans" (and logged); partial commit failures
// propagate to the caller. An optional Locker (see pkg/lock) serializes
// Commit and ConsumeSlot per user; without one, two concurrent purchases can
// both absorb the same expiring balance.
package plan
