package routing

import "github.com/wasteflow/wasteflow/core/model"

const (
	// maxBinsPerEstimate caps the bin count used in the worst-case distance
	// estimate; no truck is ever assigned more than 10 bins in one cycle.
	maxBinsPerEstimate = 10
	// avgLegKm is the assumed average distance of one leg between stops.
	avgLegKm = 15
)

// FuelCheck is the outcome of a fuel validation for one truck.
type FuelCheck struct {
	Valid        bool
	RequiredFuel float64 // liters, rounded to 2 decimals
	Reason       string
}

// MaxRouteDistance estimates the worst-case route distance in kilometers for
// a truck given the size of the candidate bin set. The estimate is
// independent of the bins actually assigned later: it serves as a
// pre-allocation eligibility filter, not a post-hoc check.
func MaxRouteDistance(candidateBins int) float64 {
	n := candidateBins
	if n > maxBinsPerEstimate {
		n = maxBinsPerEstimate
	}
	if n < 0 {
		n = 0
	}
	return float64(n) * avgLegKm * 2
}

// FilterByFuel keeps trucks whose current fuel covers the worst-case route
// for the candidate set. Trucks with a non-positive fuel efficiency pass the
// filter; their required fuel is treated as zero rather than dividing by
// zero.
func FilterByFuel(trucks []model.Truck, candidateBins int) []model.Truck {
	worstCase := MaxRouteDistance(candidateBins)
	eligible := make([]model.Truck, 0, len(trucks))
	for _, t := range trucks {
		if t.CurrentFuelLevel >= t.FuelFor(worstCase) {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// ValidateFuel checks whether the truck can execute a route of the estimated
// distance on its current fuel.
func ValidateFuel(truck model.Truck, estimatedKm float64) FuelCheck {
	if !truck.IsActive() {
		return FuelCheck{Reason: "Truck is not active"}
	}
	required := truck.FuelFor(estimatedKm)
	if truck.CurrentFuelLevel < required {
		return FuelCheck{RequiredFuel: model.Round2(required), Reason: "Insufficient fuel for estimated route"}
	}
	return FuelCheck{Valid: true, RequiredFuel: model.Round2(required)}
}
