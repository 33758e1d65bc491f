package plan

import (
	"log/slog"
	"time"
)

// Option configures a Service instance.
type Option func(*Service)

// WithLogger sets the logger used for internal diagnostics.
// Nil loggers are ignored to keep the slog default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLocker enables per-user serialization of Commit and ConsumeSlot.
// Without a locker the engine keeps the store's last-write-wins behavior
// under contention.
func WithLocker(locker Locker) Option {
	return func(s *Service) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// WithNow overrides the clock. Intended for tests that need a fixed instant
// for expiry and rollover arithmetic.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
