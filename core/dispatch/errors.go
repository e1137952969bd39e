package dispatch

import "errors"

// Allocation errors surfaced to the caller. None of them are retried
// internally: a planning run either produces a complete plan or fails before
// producing any route. The messages are part of the caller contract.
var (
	// ErrNoActiveTrucks indicates the fleet has zero active trucks.
	ErrNoActiveTrucks = errors.New("No active trucks available")
	// ErrNoBinsRequireCollection indicates no bin is above the collection
	// threshold.
	ErrNoBinsRequireCollection = errors.New("No bins require collection")
	// ErrInsufficientFleetFuel indicates the fuel filter removed every
	// active truck. Deliberately distinct from ErrNoActiveTrucks.
	ErrInsufficientFleetFuel = errors.New("No trucks have sufficient fuel for the collection routes")
	// ErrUnknownTruck indicates a fuel validation was requested for a truck
	// id absent from the fleet snapshot.
	ErrUnknownTruck = errors.New("unknown truck id")
)
