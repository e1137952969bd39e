// Package routing builds single-truck visiting orders and checks fuel
// feasibility. Route construction uses a greedy nearest-neighbor heuristic:
// it minimizes the immediate travel distance at each step and does not
// attempt global optimization. Determinism is guaranteed for stable input
// ordering.
package routing

import (
	"github.com/wasteflow/wasteflow/core/distance"
	"github.com/wasteflow/wasteflow/core/model"
)

// BuiltRoute is the output of route construction for one truck, before the
// allocator attaches truck identity and priority flags.
type BuiltRoute struct {
	Stops            []model.RouteStop
	SensorIDs        []string
	TotalDistanceKm  float64 // rounded to 2 decimals, round trip included
	EstimatedTimeMin int
}

// Builder constructs visiting orders over an assigned bin set.
type Builder struct {
	provider distance.Provider
	times    TimeModel
}

// NewBuilder returns a Builder using the given distance provider. A nil time
// model defaults to AverageSpeedModel.
func NewBuilder(provider distance.Provider, times TimeModel) *Builder {
	if times == nil {
		times = AverageSpeedModel{}
	}
	return &Builder{provider: provider, times: times}
}

// BuildRoute orders the assigned bins by repeatedly visiting the nearest
// remaining one, then closes the round trip back to start. On exact distance
// ties the first-seen bin wins, which keeps the result stable for a given
// input order. An empty bin set yields a trivial route of distance 0.
//
// Complexity is O(n^2) in the number of bins; per-truck bin counts are
// capped by the allocator so this never matters in practice.
func (b *Builder) BuildRoute(start string, bins []model.Bin) BuiltRoute {
	if len(bins) == 0 {
		return BuiltRoute{Stops: []model.RouteStop{}, SensorIDs: []string{}}
	}

	remaining := make([]model.Bin, len(bins))
	copy(remaining, bins)

	current := start
	total := 0.0
	ordered := make([]model.Bin, 0, len(remaining))

	for len(remaining) > 0 {
		bestIdx := 0
		bestKm := model.Finite(b.provider.Distance(current, remaining[0].Location))
		for i := 1; i < len(remaining); i++ {
			km := model.Finite(b.provider.Distance(current, remaining[i].Location))
			if km < bestKm {
				bestKm = km
				bestIdx = i
			}
		}

		best := remaining[bestIdx]
		ordered = append(ordered, best)
		total += bestKm
		current = best.Location
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	// Closing leg back to the start location. It contributes to the totals
	// but is not a stop.
	total += model.Finite(b.provider.Distance(current, start))
	total = model.Round2(total)

	stopEstimate := b.times.StopEstimate(total, len(ordered))
	stops := make([]model.RouteStop, 0, len(ordered))
	sensorIDs := make([]string, 0, len(ordered))
	for i, bin := range ordered {
		stops = append(stops, model.RouteStop{
			SensorID:      bin.SensorID,
			Order:         i + 1,
			EstimatedTime: stopEstimate,
			Location:      bin.Location,
		})
		sensorIDs = append(sensorIDs, bin.SensorID)
	}

	return BuiltRoute{
		Stops:            stops,
		SensorIDs:        sensorIDs,
		TotalDistanceKm:  total,
		EstimatedTimeMin: b.times.RouteEstimate(total),
	}
}
