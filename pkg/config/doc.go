// Package config loads environment-based configuration structs, combining an
// optional .env file with caarlos0/env struct-tag parsing. All plankit
// connection packages (mongo, redis) define their Config types with env tags
// and are loaded through this package at application startup.
package config
