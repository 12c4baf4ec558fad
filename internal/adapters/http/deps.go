package http

import (
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/adapters/directions"
	"github.com/dudqks0319-cpu/domestic-travel-schedule-planner-sub001/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Planner      *usecases.PlannerService
	Capabilities directions.Capabilities
}
