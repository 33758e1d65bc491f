// Package lock provides a redis-backed per-key advisory lock.
//
// The plan lifecycle engine performs a multi-step read-compute-write sequence
// with no transaction; two concurrent purchases for the same user can both
// absorb the same expiring balance. Wiring a RedisLocker into the engine via
// plan.WithLocker serializes those sequences per user. The lock is advisory
// and opt-in: without it the engine keeps the store's last-write-wins
// behavior.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc := plan.NewService(store, plan.WithLocker(lock.NewRedisLocker(client)))
package lock
