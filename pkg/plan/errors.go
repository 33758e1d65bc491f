package plan

import "errors"

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidPurchase  = errors.New("invalid plan purchase")
	ErrConcurrentUpdate = errors.New("another operation on this user's plans is in progress")
)
