// Package logger provides a small factory around log/slog with sensible
// production defaults (JSON, INFO) and attribute helpers for the identifiers
// that appear throughout plankit logs (user id, plan id, tier label).
//
// # Usage
//
//	log := logger.New(
//		logger.WithService("marketplace"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("plan committed", logger.UserID(userID), logger.PlanID(planID))
package logger
