package usecases

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/ports"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/geospatial"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/metrics"
)

var tracer = otel.Tracer("planner/usecases")

// PlannerService orders a request's waypoints and estimates every segment of
// the resulting route through the provider chain.
type PlannerService struct {
	estimator ports.SegmentEstimator
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(estimator ports.SegmentEstimator) *PlannerService {
	return &PlannerService{estimator: estimator}
}

// Optimize computes the visiting order for the request's points and estimates
// distance and duration for each consecutive pair. Segments are estimated
// strictly in order, one at a time: that bounds the outbound request rate
// against rate-limited providers and keeps warnings attributable to a segment
// index. Provider failures never fail the request; they surface as warnings
// on a degraded (fallback) result.
func (s *PlannerService) Optimize(ctx context.Context, req domain.RouteRequest) (*domain.RouteResult, error) {
	ctx, span := tracer.Start(ctx, "route.optimize")
	defer span.End()
	span.SetAttributes(
		attribute.String("route.mode", string(req.Mode)),
		attribute.Int("route.waypoints", len(req.Waypoints)),
	)

	sequenced := SequenceWaypoints(req.Origin, req.Waypoints)

	ordered := make([]domain.Point, 0, len(sequenced)+2)
	ordered = append(ordered, req.Origin)
	ordered = append(ordered, sequenced...)

	switch {
	case req.Destination != nil:
		ordered = append(ordered, *req.Destination)
	case req.RoundTrip:
		ordered = append(ordered, req.Origin)
	}

	if len(ordered) < 2 {
		return nil, domain.ErrInsufficientPoints
	}

	warnings := []string{}
	if !s.estimator.Configured() {
		warnings = append(warnings, "no route provider credentials configured; all segments use the geometric estimate")
		slog.Warn("route providers unconfigured, degrading to fallback estimates")
	}

	segments := make([]domain.SegmentEstimate, 0, len(ordered)-1)
	totalKm := 0.0
	totalMin := 0.0

	for i := 0; i < len(ordered)-1; i++ {
		seg, segWarnings := s.estimator.Estimate(ctx, ordered[i], ordered[i+1], req.Mode)
		segments = append(segments, seg)
		warnings = append(warnings, segWarnings...)
		totalKm += seg.DistanceKm
		totalMin += seg.DurationMin
	}

	metrics.RoutesPlanned.WithLabelValues(string(req.Mode)).Inc()

	source := classifySource(segments)
	span.SetAttributes(
		attribute.Int("route.segments", len(segments)),
		attribute.String("route.source", source),
	)

	return &domain.RouteResult{
		OrderedPoints:    ordered,
		Segments:         segments,
		TotalDistanceKm:  geospatial.Round(totalKm, 2),
		TotalDurationMin: geospatial.Round(totalMin, 1),
		Source:           source,
		Warnings:         warnings,
	}, nil
}

// classifySource returns the shared provider identity of all segments, or
// "mixed" when segments came from different providers.
func classifySource(segments []domain.SegmentEstimate) string {
	first := segments[0].Provider
	for _, seg := range segments[1:] {
		if seg.Provider != first {
			return domain.SourceMixed
		}
	}
	return string(first)
}
