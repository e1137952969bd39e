package fleet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wasteflow/wasteflow/core/model"
)

// Snapshot is the on-disk bin and truck registry. The service seeds its store
// from one at startup; the one-shot commands plan directly over it.
type Snapshot struct {
	Bins   []model.Bin
	Trucks []model.Truck
}

// LoadFile reads a snapshot registry from a JSON file and validates every
// entry.
func LoadFile(path string) (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("read fleet registry: %w", err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("parse fleet registry: %w", err)
	}
	for _, b := range snap.Bins {
		if err := b.Validate(); err != nil {
			return snap, fmt.Errorf("fleet registry: %w", err)
		}
	}
	for _, t := range snap.Trucks {
		if err := t.Validate(); err != nil {
			return snap, fmt.Errorf("fleet registry: %w", err)
		}
	}
	return snap, nil
}

// Seed registers every bin and truck of the snapshot in the store.
func (s *SnapshotStore) Seed(snap Snapshot) {
	for _, b := range snap.Bins {
		s.UpsertBin(b)
	}
	for _, t := range snap.Trucks {
		s.UpsertTruck(t)
	}
}
