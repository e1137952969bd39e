package metrics

import (
	"time"

	"github.com/wasteflow/wasteflow/core/model"
)

// PlanEvent summarizes one allocation run for observability purposes.
type PlanEvent struct {
	PlanID     string
	Mode       model.PlanMode
	Routes     int
	Bins       int
	TotalKm    float64
	Efficiency model.Efficiency
	Time       time.Time
}

// RouteEvent captures one truck route within a plan.
type RouteEvent struct {
	PlanID        string
	TruckID       string
	Bins          int
	TotalKm       float64
	EstimatedMin  int
	PriorityRoute bool
	Time          time.Time
}

// FleetSnapshotEvent is an aggregate view of the bin population, keyed by
// status category.
type FleetSnapshotEvent struct {
	BinsByStatus map[model.BinStatus]int
	Trucks       int
	ActiveTrucks int
	Time         time.Time
}

// MetricsSink records planning results.
type MetricsSink interface {
	RecordPlan(ev PlanEvent) error
	RecordRoutes(evs []RouteEvent) error
}

// FleetRecorder records fleet snapshots. Implemented by sinks that expose
// gauges for the current bin and truck population.
type FleetRecorder interface {
	RecordFleetSnapshot(ev FleetSnapshotEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error                   { return nil }
func (NopSink) RecordRoutes([]RouteEvent) error              { return nil }
func (NopSink) RecordFleetSnapshot(FleetSnapshotEvent) error { return nil }
