package metrics

import coremetrics "github.com/wasteflow/wasteflow/core/metrics"

// MultiSink fans events out to several sinks. The first error encountered is
// returned after all sinks were attempted.
type MultiSink struct {
	sinks []coremetrics.MetricsSink
}

// NewMultiSink combines the given sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPlan(ev coremetrics.PlanEvent) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordPlan(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *MultiSink) RecordRoutes(evs []coremetrics.RouteEvent) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordRoutes(evs); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RecordFleetSnapshot forwards the snapshot to every sink implementing
// FleetRecorder.
func (m *MultiSink) RecordFleetSnapshot(ev coremetrics.FleetSnapshotEvent) error {
	var first error
	for _, s := range m.sinks {
		if fr, ok := s.(coremetrics.FleetRecorder); ok {
			if err := fr.RecordFleetSnapshot(ev); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
