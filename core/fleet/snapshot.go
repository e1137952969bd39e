// Package fleet maintains the in-memory bin and truck snapshot the planner
// works from. The store is fed by sensor telemetry and fleet updates; the
// planner always receives copies, never live references.
package fleet

import (
	"sort"
	"sync"
	"time"

	"github.com/wasteflow/wasteflow/core/model"
)

// SnapshotStore holds the latest known state of every bin and truck.
type SnapshotStore struct {
	mu     sync.RWMutex
	bins   map[string]model.Bin // keyed by sensor id
	trucks map[string]model.Truck
}

// NewSnapshotStore returns an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		bins:   make(map[string]model.Bin),
		trucks: make(map[string]model.Truck),
	}
}

// UpsertBin inserts or replaces a bin keyed by its sensor id.
func (s *SnapshotStore) UpsertBin(b model.Bin) {
	s.mu.Lock()
	s.bins[b.SensorID] = b
	s.mu.Unlock()
}

// UpsertTruck inserts or replaces a truck keyed by its id.
func (s *SnapshotStore) UpsertTruck(t model.Truck) {
	s.mu.Lock()
	s.trucks[t.ID] = t
	s.mu.Unlock()
}

// ApplyFill updates the fill level and last-seen time of the bin with the
// given sensor id. Reports for unknown sensors are dropped; the store does
// not invent bins the collection registry never declared.
func (s *SnapshotStore) ApplyFill(sensorID string, fill float64, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bins[sensorID]
	if !ok {
		return false
	}
	b.FillLevel = model.Finite(fill)
	b.LastSeenAt = at
	s.bins[sensorID] = b
	return true
}

// Bins returns a copy of all bins sorted by sensor id. The stable ordering
// keeps allocation runs deterministic for identical store contents.
func (s *SnapshotStore) Bins() []model.Bin {
	s.mu.RLock()
	out := make([]model.Bin, 0, len(s.bins))
	for _, b := range s.bins {
		out = append(out, b)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].SensorID < out[j].SensorID })
	return out
}

// Trucks returns a copy of all trucks sorted by id.
func (s *SnapshotStore) Trucks() []model.Truck {
	s.mu.RLock()
	out := make([]model.Truck, 0, len(s.trucks))
	for _, t := range s.trucks {
		out = append(out, t)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
