package model

import "fmt"

// TruckStatus describes the operational state of a truck.
type TruckStatus string

const (
	TruckActive      TruckStatus = "active"
	TruckInactive    TruckStatus = "inactive"
	TruckMaintenance TruckStatus = "maintenance"
)

// Truck represents a collection vehicle in the fleet snapshot.
type Truck struct {
	ID               string
	Plate            string
	Status           TruckStatus
	CurrentLocation  string  // location name; falls back to the depot when empty
	FuelCapacity     float64 // tank capacity in liters
	CurrentFuelLevel float64 // fuel currently available in liters
	FuelEfficiency   float64 // kilometers per liter
}

// IsActive reports whether the truck can be considered for allocation.
func (t Truck) IsActive() bool {
	return t.Status == TruckActive
}

// StartLocation returns the truck's current location, or the depot when the
// location is unknown.
func (t Truck) StartLocation(depot string) string {
	if t.CurrentLocation == "" {
		return depot
	}
	return t.CurrentLocation
}

// FuelFor returns the fuel in liters required to drive the given distance.
// A non-positive efficiency yields zero so that malformed trucks never
// produce NaN or Inf downstream.
func (t Truck) FuelFor(distanceKm float64) float64 {
	if t.FuelEfficiency <= 0 {
		return 0
	}
	return distanceKm / t.FuelEfficiency
}

// Validate checks that the truck configuration is sound.
func (t Truck) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("truck: id must not be empty")
	}
	if t.FuelEfficiency < 0 {
		return fmt.Errorf("truck %s: fuel efficiency must not be negative", t.ID)
	}
	return nil
}
