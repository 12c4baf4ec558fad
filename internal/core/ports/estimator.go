package ports

import (
	"context"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
)

// SegmentEstimator produces a distance/duration estimate for one directed
// segment. Implementations never fail: a provider outage degrades to the
// geometric fallback and is reported through the returned warnings instead.
type SegmentEstimator interface {
	Estimate(ctx context.Context, from, to domain.Point, mode domain.TransportMode) (domain.SegmentEstimate, []string)

	// Configured reports whether at least one external provider has usable
	// credentials. When false every estimate comes from the fallback.
	Configured() bool
}
