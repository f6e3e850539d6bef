package contracts

import (
	"context"
	"time"
)

// ApplyResourceLimiterInput configures limiter evaluation.
type ApplyResourceLimiterInput struct {
	// ResourceName is the entity to be limited, e.g. a normalized email.
	ResourceName string
	// LimiterGroupName namespaces the limiter key, e.g. LOGIN.
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
	// NowUTC is optional; if zero, time.Now().UTC() is used.
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error)
}
