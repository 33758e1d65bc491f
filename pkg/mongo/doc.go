// Package mongo provides MongoDB connection management for the marketplace
// backend: environment-driven configuration, retrying connect, and a health
// check probe. The plan collection adapter in pkg/plan builds on the client
// returned here.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	db, err := mongo.NewDatabase(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := plan.NewMongoStore(db.Collection("planes"))
package mongo
