package routing

import (
	"testing"

	"github.com/wasteflow/wasteflow/core/model"
)

func TestMaxRouteDistance(t *testing.T) {
	cases := []struct {
		bins int
		want float64
	}{
		{0, 0},
		{1, 30},
		{5, 150},
		{10, 300},
		{25, 300}, // capped at 10 bins
	}
	for _, c := range cases {
		if got := MaxRouteDistance(c.bins); got != c.want {
			t.Errorf("MaxRouteDistance(%d) = %v, want %v", c.bins, got, c.want)
		}
	}
}

func TestFilterByFuel(t *testing.T) {
	trucks := []model.Truck{
		{ID: "low", Status: model.TruckActive, FuelEfficiency: 10, CurrentFuelLevel: 2},
		{ID: "ok", Status: model.TruckActive, FuelEfficiency: 10, CurrentFuelLevel: 3},
	}
	// One candidate bin: worst case 1*15*2 = 30 km, 3 L at 10 km/L.
	eligible := FilterByFuel(trucks, 1)
	if len(eligible) != 1 || eligible[0].ID != "ok" {
		t.Fatalf("expected only 'ok' to pass, got %+v", eligible)
	}
}

func TestValidateFuel(t *testing.T) {
	inactive := model.Truck{ID: "t1", Status: model.TruckMaintenance, FuelEfficiency: 10, CurrentFuelLevel: 50}
	if chk := ValidateFuel(inactive, 100); chk.Valid || chk.Reason != "Truck is not active" {
		t.Fatalf("expected inactive rejection, got %+v", chk)
	}

	thirsty := model.Truck{ID: "t2", Status: model.TruckActive, FuelEfficiency: 10, CurrentFuelLevel: 2}
	chk := ValidateFuel(thirsty, 30)
	if chk.Valid || chk.Reason != "Insufficient fuel for estimated route" {
		t.Fatalf("expected insufficient fuel, got %+v", chk)
	}
	if chk.RequiredFuel != 3 {
		t.Fatalf("expected 3 L required got %v", chk.RequiredFuel)
	}

	ready := model.Truck{ID: "t3", Status: model.TruckActive, FuelEfficiency: 12, CurrentFuelLevel: 40}
	chk = ValidateFuel(ready, 100)
	if !chk.Valid {
		t.Fatalf("expected valid, got %+v", chk)
	}
	if chk.RequiredFuel != 8.33 {
		t.Fatalf("expected 8.33 L got %v", chk.RequiredFuel)
	}
}
