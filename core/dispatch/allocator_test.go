package dispatch

import (
	"errors"
	"testing"

	"github.com/wasteflow/wasteflow/core/distance"
	"github.com/wasteflow/wasteflow/core/model"
)

func testProvider() *distance.StaticProvider {
	return distance.NewStaticProvider(map[string]map[string]float64{
		"depot": {"l1": 1, "l2": 2, "l3": 3, "l4": 4, "l5": 5, "l6": 6, "l7": 7, "l8": 8},
		"l1":    {"l2": 1, "l3": 2, "l4": 3, "l5": 4, "l6": 5, "l7": 6, "l8": 7},
		"l2":    {"l3": 1, "l4": 2, "l5": 3, "l6": 4, "l7": 5, "l8": 6},
		"l3":    {"l4": 1, "l5": 2, "l6": 3, "l7": 4, "l8": 5},
		"l4":    {"l5": 1, "l6": 2, "l7": 3, "l8": 4},
		"l5":    {"l6": 1, "l7": 2, "l8": 3},
		"l6":    {"l7": 1, "l8": 2},
		"l7":    {"l8": 1},
	}, 0)
}

func testAllocator() *Allocator {
	return NewAllocator(testProvider(), nil, nil)
}

func activeTruck(id string) model.Truck {
	return model.Truck{
		ID: id, Plate: "WF-" + id, Status: model.TruckActive,
		FuelCapacity: 100, CurrentFuelLevel: 90, FuelEfficiency: 10,
	}
}

func candidateBin(sensor, loc string, fill float64) model.Bin {
	return model.Bin{ID: sensor, SensorID: sensor, Location: loc, FillLevel: fill}
}

func TestAllocatePrioritySuppressesRegular(t *testing.T) {
	bins := []model.Bin{
		candidateBin("A", "l1", 100),
		candidateBin("B", "l2", 75),
	}
	trucks := []model.Truck{activeTruck("t1")}

	routes, err := testAllocator().Allocate(bins, trucks, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected one route got %d", len(routes))
	}
	r := routes[0]
	if !r.PriorityRoute {
		t.Fatalf("expected a priority route")
	}
	if len(r.BinSensorIDs) != 1 || r.BinSensorIDs[0] != "A" {
		t.Fatalf("expected only bin A assigned, got %v", r.BinSensorIDs)
	}
	for _, stop := range r.Stops {
		if !stop.Priority {
			t.Errorf("stop %s should carry the priority flag", stop.SensorID)
		}
	}

	// Once A is no longer priority, B gets collected.
	bins[0].FillLevel = 10
	routes, err = testAllocator().Allocate(bins, trucks, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 1 || len(routes[0].BinSensorIDs) != 1 || routes[0].BinSensorIDs[0] != "B" {
		t.Fatalf("expected bin B assigned in the follow-up run, got %+v", routes)
	}
	if routes[0].PriorityRoute {
		t.Fatalf("follow-up route must be regular")
	}
}

func TestAllocateNoCandidates(t *testing.T) {
	bins := []model.Bin{
		candidateBin("A", "l1", 70), // threshold is strict
		candidateBin("B", "l2", 12),
	}
	_, err := testAllocator().Allocate(bins, []model.Truck{activeTruck("t1")}, "depot")
	if !errors.Is(err, ErrNoBinsRequireCollection) {
		t.Fatalf("expected ErrNoBinsRequireCollection got %v", err)
	}
}

func TestAllocateNoActiveTrucks(t *testing.T) {
	bins := []model.Bin{candidateBin("A", "l1", 90)}
	trucks := []model.Truck{
		{ID: "t1", Status: model.TruckInactive},
		{ID: "t2", Status: model.TruckMaintenance},
	}
	_, err := testAllocator().Allocate(bins, trucks, "depot")
	if !errors.Is(err, ErrNoActiveTrucks) {
		t.Fatalf("expected ErrNoActiveTrucks got %v", err)
	}
}

func TestAllocatePriorityCap(t *testing.T) {
	bins := []model.Bin{
		candidateBin("A", "l1", 100),
		candidateBin("B", "l2", 110),
		candidateBin("C", "l3", 120),
		candidateBin("D", "l4", 130),
		candidateBin("E", "l5", 140),
	}
	trucks := []model.Truck{activeTruck("t1"), activeTruck("t2")}

	routes, err := testAllocator().Allocate(bins, trucks, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected two routes got %d", len(routes))
	}
	if len(routes[0].BinSensorIDs) != 3 {
		t.Fatalf("first truck must claim exactly 3 priority bins, got %d", len(routes[0].BinSensorIDs))
	}
	if len(routes[1].BinSensorIDs) != 2 {
		t.Fatalf("second truck must claim the remaining 2 bins, got %d", len(routes[1].BinSensorIDs))
	}
	seen := map[string]bool{}
	for _, r := range routes {
		for _, id := range r.BinSensorIDs {
			if seen[id] {
				t.Fatalf("bin %s claimed twice", id)
			}
			seen[id] = true
		}
	}
}

func TestAllocateRegularCap(t *testing.T) {
	bins := []model.Bin{
		candidateBin("A", "l1", 80),
		candidateBin("B", "l2", 80),
		candidateBin("C", "l3", 80),
		candidateBin("D", "l4", 80),
		candidateBin("E", "l5", 80),
		candidateBin("F", "l6", 80),
		candidateBin("G", "l7", 80),
	}
	trucks := []model.Truck{activeTruck("t1"), activeTruck("t2")}

	routes, err := testAllocator().Allocate(bins, trucks, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected two routes got %d", len(routes))
	}
	if len(routes[0].BinSensorIDs) != 5 {
		t.Fatalf("regular cap is 5 bins, got %d", len(routes[0].BinSensorIDs))
	}
	if len(routes[1].BinSensorIDs) != 2 {
		t.Fatalf("expected 2 leftover bins on truck 2, got %d", len(routes[1].BinSensorIDs))
	}
	for _, r := range routes {
		if r.PriorityRoute {
			t.Errorf("regular pass must not mark priority routes")
		}
	}
}

func TestAllocateStopOrdersContiguous(t *testing.T) {
	bins := []model.Bin{
		candidateBin("A", "l3", 80),
		candidateBin("B", "l1", 85),
		candidateBin("C", "l2", 90),
	}
	routes, err := testAllocator().Allocate(bins, []model.Truck{activeTruck("t1")}, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range routes {
		for i, stop := range r.Stops {
			if stop.Order != i+1 {
				t.Fatalf("stop %d has order %d, want %d", i, stop.Order, i+1)
			}
		}
	}
}

func TestAllocateTrucksWithoutBinsProduceNoRoute(t *testing.T) {
	bins := []model.Bin{candidateBin("A", "l1", 90)}
	trucks := []model.Truck{activeTruck("t1"), activeTruck("t2"), activeTruck("t3")}
	routes, err := testAllocator().Allocate(bins, trucks, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("only trucks with claims produce routes, got %d", len(routes))
	}
}

func TestAllocateDeterministic(t *testing.T) {
	bins := []model.Bin{
		candidateBin("A", "l1", 80),
		candidateBin("B", "l2", 90),
		candidateBin("C", "l3", 85),
	}
	trucks := []model.Truck{activeTruck("t1")}
	first, err := testAllocator().Allocate(bins, trucks, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := testAllocator().Allocate(bins, trucks, "depot")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("route count changed between runs")
		}
		for j := range again {
			if again[j].TotalDistance != first[j].TotalDistance {
				t.Fatalf("distances differ between identical runs")
			}
			for k := range again[j].Stops {
				if again[j].Stops[k].SensorID != first[j].Stops[k].SensorID {
					t.Fatalf("stop order differs between identical runs")
				}
			}
		}
	}
}

func TestAllocateTruckLocationFallsBackToDepot(t *testing.T) {
	bins := []model.Bin{candidateBin("A", "l1", 90)}
	truck := activeTruck("t1")
	truck.CurrentLocation = ""
	routes, err := testAllocator().Allocate(bins, []model.Truck{truck}, "depot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// depot->l1 and back: 2 km.
	if routes[0].TotalDistance != 2 {
		t.Fatalf("expected 2 km from depot fallback, got %v", routes[0].TotalDistance)
	}
}
