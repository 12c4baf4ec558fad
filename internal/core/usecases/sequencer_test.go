package usecases_test

import (
	"reflect"
	"testing"

	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/domain"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/usecases"
)

func TestSequenceWaypoints_Empty(t *testing.T) {
	got := usecases.SequenceWaypoints(domain.Point{Lat: 37.5, Lng: 127.0}, nil)
	if len(got) != 0 {
		t.Errorf("expected empty sequence, got %d points", len(got))
	}
}

func TestSequenceWaypoints_NearestFirst(t *testing.T) {
	origin := domain.Point{Name: "hotel", Lat: 37.50, Lng: 127.00}
	far := domain.Point{Name: "far", Lat: 37.60, Lng: 127.10}
	near := domain.Point{Name: "near", Lat: 37.51, Lng: 127.01}

	got := usecases.SequenceWaypoints(origin, []domain.Point{far, near})
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Name != "near" || got[1].Name != "far" {
		t.Errorf("expected [near far], got [%s %s]", got[0].Name, got[1].Name)
	}
}

func TestSequenceWaypoints_ContainsEachInputOnce(t *testing.T) {
	origin := domain.Point{Lat: 37.50, Lng: 127.00}
	waypoints := []domain.Point{
		{ID: "a", Lat: 37.52, Lng: 127.05},
		{ID: "b", Lat: 37.48, Lng: 126.97},
		{ID: "c", Lat: 37.55, Lng: 127.02},
		{ID: "d", Lat: 37.49, Lng: 127.10},
	}

	got := usecases.SequenceWaypoints(origin, waypoints)
	if len(got) != len(waypoints) {
		t.Fatalf("expected %d points, got %d", len(waypoints), len(got))
	}

	seen := make(map[string]int)
	for _, p := range got {
		seen[p.ID]++
	}
	for _, wp := range waypoints {
		if seen[wp.ID] != 1 {
			t.Errorf("waypoint %s appears %d times", wp.ID, seen[wp.ID])
		}
	}
}

func TestSequenceWaypoints_Deterministic(t *testing.T) {
	origin := domain.Point{Lat: 37.50, Lng: 127.00}
	waypoints := []domain.Point{
		{ID: "a", Lat: 37.52, Lng: 127.05},
		{ID: "b", Lat: 37.48, Lng: 126.97},
		{ID: "c", Lat: 37.55, Lng: 127.02},
	}

	first := usecases.SequenceWaypoints(origin, waypoints)
	second := usecases.SequenceWaypoints(origin, waypoints)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("sequencing not deterministic: %v vs %v", first, second)
	}
}

func TestSequenceWaypoints_TieBreaksByInputOrder(t *testing.T) {
	// Both waypoints are exactly one degree from the origin along an axis.
	origin := domain.Point{Lat: 0, Lng: 0}
	waypoints := []domain.Point{
		{ID: "second-axis", Lat: 0, Lng: 1},
		{ID: "first-axis", Lat: 0, Lng: -1},
	}

	got := usecases.SequenceWaypoints(origin, waypoints)
	if got[0].ID != "second-axis" {
		t.Errorf("tie should resolve to the earliest input index, got %s first", got[0].ID)
	}
}

func TestSequenceWaypoints_DoesNotMutateInput(t *testing.T) {
	origin := domain.Point{Lat: 37.50, Lng: 127.00}
	waypoints := []domain.Point{
		{ID: "a", Lat: 37.60, Lng: 127.10},
		{ID: "b", Lat: 37.51, Lng: 127.01},
	}
	snapshot := make([]domain.Point, len(waypoints))
	copy(snapshot, waypoints)

	_ = usecases.SequenceWaypoints(origin, waypoints)

	if !reflect.DeepEqual(waypoints, snapshot) {
		t.Errorf("input slice mutated: %v", waypoints)
	}
}
