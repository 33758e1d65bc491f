// Package redis provides redis connection management: environment-driven
// configuration, retrying connect, and a health check probe. Within plankit
// it backs the advisory lock in pkg/lock, which serializes plan purchases per
// user when enabled.
package redis
