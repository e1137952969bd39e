// Package dispatch partitions candidate bins across the truck fleet and
// assembles the resulting collection plan. Allocation is greedy and
// per-truck-sequential rather than globally optimal; that trade-off keeps the
// output deterministic and cheap to compute, and callers depend on its exact
// behaviour.
package dispatch

import (
	"sort"

	"github.com/wasteflow/wasteflow/core/distance"
	"github.com/wasteflow/wasteflow/core/logger"
	"github.com/wasteflow/wasteflow/core/model"
	"github.com/wasteflow/wasteflow/core/routing"
)

const (
	// maxPriorityBinsPerTruck caps claims in a priority pass.
	maxPriorityBinsPerTruck = 3
	// maxRegularBinsPerTruck caps claims in a regular pass.
	maxRegularBinsPerTruck = 5
)

// Allocator assigns candidate bins to trucks and builds one route per truck
// that claimed at least one bin.
type Allocator struct {
	builder  *routing.Builder
	provider distance.Provider
	log      logger.Logger
}

// NewAllocator returns an Allocator routing over the given provider. A nil
// logger disables allocation logging.
func NewAllocator(provider distance.Provider, times routing.TimeModel, log logger.Logger) *Allocator {
	if log == nil {
		log = nopLogger{}
	}
	return &Allocator{
		builder:  routing.NewBuilder(provider, times),
		provider: provider,
		log:      log,
	}
}

// Allocate produces routes for the given snapshot. Bins below the collection
// threshold and non-active trucks are ignored. Within one run a bin is
// claimed by at most one truck and a truck produces at most one route.
//
// When any priority bin (fill >= 100) exists, only priority bins are
// assigned this cycle; regular candidates wait for the next run even if some
// trucks received nothing. This mirrors the fleet-prioritization policy the
// rest of the system expects.
func (a *Allocator) Allocate(bins []model.Bin, trucks []model.Truck, depot string) ([]model.Route, error) {
	var candidates []model.Bin
	for _, b := range bins {
		if b.NeedsCollection() {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoBinsRequireCollection
	}

	var active []model.Truck
	for _, t := range trucks {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil, ErrNoActiveTrucks
	}

	var priorityBins, regularBins []model.Bin
	for _, b := range candidates {
		if b.FillLevel >= 100 {
			priorityBins = append(priorityBins, b)
		} else {
			regularBins = append(regularBins, b)
		}
	}

	if len(priorityBins) > 0 {
		// Fullest bins first, once, globally. Per-truck claiming re-sorts by
		// distance below.
		sort.SliceStable(priorityBins, func(i, j int) bool {
			return priorityBins[i].FillLevel > priorityBins[j].FillLevel
		})
		a.log.Debugf("priority pass: %d bins suppress %d regular candidates", len(priorityBins), len(regularBins))
		return a.assign(priorityBins, active, depot, maxPriorityBinsPerTruck, true), nil
	}

	return a.assign(regularBins, active, depot, maxRegularBinsPerTruck, false), nil
}

// assign runs the greedy claiming pass: each truck in fleet order claims up
// to maxBins bins nearest to its own location, and claimed bins leave the
// shared pool before the next truck is considered.
func (a *Allocator) assign(pool []model.Bin, trucks []model.Truck, depot string, maxBins int, priority bool) []model.Route {
	remaining := make([]model.Bin, len(pool))
	copy(remaining, pool)

	var routes []model.Route
	for _, truck := range trucks {
		if len(remaining) == 0 {
			break
		}
		start := truck.StartLocation(depot)

		sort.SliceStable(remaining, func(i, j int) bool {
			return model.Finite(a.provider.Distance(start, remaining[i].Location)) <
				model.Finite(a.provider.Distance(start, remaining[j].Location))
		})

		n := maxBins
		if n > len(remaining) {
			n = len(remaining)
		}
		claimed := make([]model.Bin, n)
		copy(claimed, remaining[:n])
		remaining = remaining[n:]

		built := a.builder.BuildRoute(start, claimed)
		route := model.Route{
			TruckID:          truck.ID,
			TruckPlate:       truck.Plate,
			BinSensorIDs:     built.SensorIDs,
			Stops:            built.Stops,
			TotalDistance:    built.TotalDistanceKm,
			EstimatedTimeMin: built.EstimatedTimeMin,
			Status:           model.RoutePlanned,
			PriorityRoute:    priority,
		}
		for i := range route.Stops {
			route.Stops[i].Priority = priority
		}
		a.log.Debugw("route built", map[string]any{
			"truck_id": truck.ID,
			"bins":     len(claimed),
			"km":       route.TotalDistance,
			"priority": priority,
		})
		routes = append(routes, route)
	}
	return routes
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
