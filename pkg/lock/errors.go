package lock

import "errors"

var (
	ErrNotAcquired = errors.New("lock is held by another caller")
	ErrUnavailable = errors.New("lock backend unavailable")
)
