package model

import (
	"math"
	"time"
)

// RouteStatus tracks the lifecycle of a generated route.
type RouteStatus string

const (
	RoutePlanned    RouteStatus = "planned"
	RouteDispatched RouteStatus = "dispatched"
	RouteCompleted  RouteStatus = "completed"
)

// PlanMode selects the fill levels the planner works from.
type PlanMode string

const (
	// ModeRealTime plans from the fill levels currently reported by sensors.
	ModeRealTime PlanMode = "real-time"
	// ModePredictive plans from forecast fill levels for the next cycle.
	ModePredictive PlanMode = "predictive"
)

// RouteStop is one ordered visit to a bin's location within a truck's route.
// The final return-to-depot leg is accounted for in the route totals but is
// not a stop.
type RouteStop struct {
	SensorID      string
	Order         int // 1-based, strictly increasing
	EstimatedTime int // minutes
	Location      string
	Priority      bool
}

// Route is the planned visiting order for a single truck.
type Route struct {
	TruckID          string
	TruckPlate       string
	BinSensorIDs     []string // claimed bins in visiting order
	Stops            []RouteStop
	TotalDistance    float64 // kilometers, rounded to 2 decimals
	EstimatedTimeMin int
	Status           RouteStatus
	PriorityRoute    bool
}

// Efficiency quantifies savings of an optimized plan against the naive
// per-bin baseline. All fields are clamped at zero.
type Efficiency struct {
	TimeSavedMin    float64
	DistanceSavedKm float64
	FuelSavedL      float64
}

// RoutePlan is the complete output of one allocation run.
type RoutePlan struct {
	ID           string
	Mode         PlanMode
	Routes       []Route
	Efficiency   Efficiency
	Approved     bool
	GeneratedAt  time.Time
	DispatchedAt *time.Time
	CompletedAt  *time.Time

	// FuelDeductions maps truck IDs to the recommended fuel deduction in
	// liters for executing the plan. The engine never mutates truck fuel
	// itself; applying the deduction is the caller's responsibility.
	FuelDeductions map[string]float64
}

// BinCount returns the total number of bins assigned across all routes.
func (p RoutePlan) BinCount() int {
	n := 0
	for _, r := range p.Routes {
		n += len(r.BinSensorIDs)
	}
	return n
}

// Round2 rounds a value to two decimals, coercing NaN and infinities to 0 so
// that plan output is always finite.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// Finite replaces NaN and infinities with 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
