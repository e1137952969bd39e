package fleet

import "github.com/wasteflow/wasteflow/core/model"

// Stats aggregates the current bin and truck population.
type Stats struct {
	BinsByStatus map[model.BinStatus]int
	Trucks       int
	ActiveTrucks int
}

// Stats classifies every bin and counts trucks by activity.
func (s *SnapshotStore) Stats() Stats {
	st := Stats{BinsByStatus: make(map[model.BinStatus]int)}
	for _, b := range s.Bins() {
		st.BinsByStatus[b.Status()]++
	}
	for _, t := range s.Trucks() {
		st.Trucks++
		if t.IsActive() {
			st.ActiveTrucks++
		}
	}
	return st
}
