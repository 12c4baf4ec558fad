package usecases

import (
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/pkg/geospatial"
)

// SequenceWaypoints orders waypoints into a visiting sequence starting from
// origin using a greedy nearest-neighbor scan. The result contains each input
// waypoint exactly once (origin excluded) and is deterministic: equal
// distances resolve to the earliest input index. The input slice is never
// mutated; points are copied into the result.
//
// O(n²) in the waypoint count, which the upstream validator caps at 25.
func SequenceWaypoints(origin domain.Point, waypoints []domain.Point) []domain.Point {
	if len(waypoints) == 0 {
		return nil
	}

	ordered := make([]domain.Point, 0, len(waypoints))
	visited := make([]bool, len(waypoints))
	current := origin

	for len(ordered) < len(waypoints) {
		nearest := -1
		minDist := 0.0

		for i, wp := range waypoints {
			if visited[i] {
				continue
			}
			d := geospatial.DistanceKm(current.Lat, current.Lng, wp.Lat, wp.Lng)
			// Strict < keeps the earliest index on ties.
			if nearest == -1 || d < minDist {
				nearest = i
				minDist = d
			}
		}

		visited[nearest] = true
		ordered = append(ordered, waypoints[nearest])
		current = waypoints[nearest]
	}

	return ordered
}
