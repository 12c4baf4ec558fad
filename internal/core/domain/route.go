package domain

import (
	"fmt"
	"strings"
)

// Point is a geographic coordinate (WGS 84), optionally carrying the
// identifier and display name of the place it came from. Points are value
// types: they are copied, never aliased, when the planner reorders them.
type Point struct {
	ID   string  `json:"id,omitempty"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Valid reports whether the coordinate is inside the WGS 84 range.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Label returns a human-readable name for warnings and logs.
func (p Point) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lng)
}

// TransportMode selects both the provider priority order and the speed
// assumption used by the geometric fallback.
type TransportMode string

const (
	ModeDriving TransportMode = "driving"
	ModeTransit TransportMode = "transit"
	ModeWalking TransportMode = "walking"
)

// ParseTransportMode maps a textual mode (and its accepted synonyms) to a
// TransportMode. An empty value defaults to driving; any other unrecognized
// value is a validation error.
func ParseTransportMode(s string) (TransportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "driving", "drive", "car":
		return ModeDriving, nil
	case "transit", "public", "bus", "subway":
		return ModeTransit, nil
	case "walking", "walk", "foot":
		return ModeWalking, nil
	default:
		return "", fmt.Errorf("unknown transport mode %q", s)
	}
}

// ProviderID identifies which estimator produced a segment.
type ProviderID string

const (
	ProviderKakao    ProviderID = "kakao"
	ProviderODsay    ProviderID = "odsay"
	ProviderFallback ProviderID = "fallback"
)

// SourceMixed marks a RouteResult whose segments came from more than one provider.
const SourceMixed = "mixed"

// RouteRequest is a validated optimization request. Waypoints carry the
// caller's original order but no visiting order; the planner decides that.
type RouteRequest struct {
	Origin      Point         `json:"origin"`
	Waypoints   []Point       `json:"waypoints"`
	Destination *Point        `json:"destination,omitempty"`
	RoundTrip   bool          `json:"round_trip"`
	Mode        TransportMode `json:"mode"`
}

// SegmentEstimate is one directed leg between consecutive route points.
type SegmentEstimate struct {
	From        Point      `json:"from"`
	To          Point      `json:"to"`
	DistanceKm  float64    `json:"distance_km"`
	DurationMin float64    `json:"duration_min"`
	Provider    ProviderID `json:"provider"`
}

// RouteResult is the aggregated outcome of a route optimization.
type RouteResult struct {
	OrderedPoints    []Point           `json:"ordered_points"`
	Segments         []SegmentEstimate `json:"segments"`
	TotalDistanceKm  float64           `json:"total_distance_km"`
	TotalDurationMin float64           `json:"total_duration_min"`
	Source           string            `json:"source"`
	Warnings         []string          `json:"warnings"`
}
