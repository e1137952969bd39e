package routing

import "math"

// TimeModel derives stop and route time estimates from route distance.
// The estimates are heuristics rather than physical simulation; isolating
// them behind an interface lets deployments swap the model without touching
// route construction.
type TimeModel interface {
	// StopEstimate returns the per-stop time estimate in minutes for a route
	// with the given total distance and number of stops.
	StopEstimate(totalKm float64, numStops int) int
	// RouteEstimate returns the total route time estimate in minutes.
	RouteEstimate(totalKm float64) int
}

// AverageSpeedModel is the default time model. It assumes an average speed
// of 10 km/h including collection time at each stop: 6 minutes per
// kilometer for the route, with the per-stop share scaled by 10.
type AverageSpeedModel struct{}

func (AverageSpeedModel) StopEstimate(totalKm float64, numStops int) int {
	if numStops <= 0 {
		return 0
	}
	v := totalKm / float64(numStops) * 10
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

func (AverageSpeedModel) RouteEstimate(totalKm float64) int {
	v := totalKm * 6
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
