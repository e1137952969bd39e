package events

import (
	"time"

	"github.com/wasteflow/wasteflow/core/model"
)

// PlanGeneratedEvent is published when an allocation run produced a plan.
type PlanGeneratedEvent struct {
	Plan *model.RoutePlan
}

// AssignmentEvent is published for each truck that received a route.
type AssignmentEvent struct {
	PlanID        string
	TruckID       string
	Bins          int
	TotalKm       float64
	PriorityRoute bool
}

// TelemetryEvent is published when a sensor report updates the bin snapshot.
type TelemetryEvent struct {
	SensorID  string
	FillLevel float64
	Time      time.Time
}
