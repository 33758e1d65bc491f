package catalog

import "errors"

var (
	ErrTierNotFound      = errors.New("catalog tier not found")
	ErrInvalidTier       = errors.New("invalid catalog tier")
	ErrFailedToLoadTiers = errors.New("failed to load catalog tiers")
)
