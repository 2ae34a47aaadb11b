package graphql

import (
	"fmt"

	"github.com/dd0wney/cluso-routerank/pkg/validation"
)

// LimitConfig defines limits for ranking results
type LimitConfig struct {
	DefaultLimit int // Default limit when no limit specified
	MaxLimit     int // Maximum allowed limit
	MaxDepth     int // Maximum selection depth of a query
}

// DefaultLimitConfig returns the limits used when none are configured
func DefaultLimitConfig() *LimitConfig {
	return &LimitConfig{
		DefaultLimit: 10,
		MaxLimit:     validation.MaxRankingLimit,
		MaxDepth:     5,
	}
}

// ValidateLimitConfig validates the limit configuration
func ValidateLimitConfig(config *LimitConfig) error {
	if config.MaxLimit <= 0 {
		return fmt.Errorf("max limit must be greater than 0, got %d", config.MaxLimit)
	}
	if config.DefaultLimit > config.MaxLimit {
		return fmt.Errorf("default limit (%d) cannot exceed max limit (%d)", config.DefaultLimit, config.MaxLimit)
	}
	if config.DefaultLimit <= 0 {
		return fmt.Errorf("default limit must be greater than 0, got %d", config.DefaultLimit)
	}
	if config.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be greater than 0, got %d", config.MaxDepth)
	}
	return nil
}

// applyLimit applies default and max limit constraints to a limit value
func applyLimit(requestedLimit int, config *LimitConfig) int {
	// If no limit specified or negative, use default
	if requestedLimit < 0 {
		return config.DefaultLimit
	}

	// If limit is 0, return 0 (empty results)
	if requestedLimit == 0 {
		return 0
	}

	// Cap at max limit
	if requestedLimit > config.MaxLimit {
		return config.MaxLimit
	}

	return requestedLimit
}
