// Package catalog defines the purchasable visibility tiers
// (destacado, premium, vip) and the sources they are loaded from. The
// purchase UI picks a Tier, converts it with PurchaseSpec, and hands it to
// the plan engine's Simulate and Commit.
//
//	cat, err := catalog.New(ctx, catalog.NewFileSource("tiers.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	tier, err := cat.Get("premium")
//	preview, err := svc.Simulate(ctx, userID, tier.PurchaseSpec())
package catalog
