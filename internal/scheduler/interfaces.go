package scheduler

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

type ViewSweeper interface {
	SweepIdle(maxIdle time.Duration) int
	Count() int
}
