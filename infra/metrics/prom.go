package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/wasteflow/wasteflow/core/metrics"
	"github.com/wasteflow/wasteflow/core/model"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	plans       *prometheus.CounterVec
	planKm      *prometheus.HistogramVec
	routes      *prometheus.CounterVec
	binsStatus  *prometheus.GaugeVec
	trucksTotal prometheus.Gauge
	trucksUp    prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The metrics server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collection_plans_total",
		Help: "Total number of generated collection plans",
	}, []string{"mode"})
	planKm := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "collection_plan_distance_km",
		Help:    "Total planned distance per plan",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500},
	}, []string{"mode"})
	routes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collection_routes_total",
		Help: "Total number of truck routes generated",
	}, []string{"truck_id", "priority"})
	binsStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_bins",
		Help: "Number of bins per status category",
	}, []string{"status"})
	trucksTotal := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_trucks",
		Help: "Number of trucks in the fleet snapshot",
	})
	trucksUp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_trucks_active",
		Help: "Number of active trucks in the fleet snapshot",
	})

	s := &PromSink{
		plans:       plans,
		planKm:      planKm,
		routes:      routes,
		binsStatus:  binsStatus,
		trucksTotal: trucksTotal,
		trucksUp:    trucksUp,
	}

	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(planKm); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.planKm = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(routes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.routes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(binsStatus); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.binsStatus = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(trucksTotal); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.trucksTotal = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(trucksUp); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.trucksUp = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return s, nil
}

// RecordPlan increments the plan counter and observes the total distance.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.plans.WithLabelValues(string(ev.Mode)).Inc()
	s.planKm.WithLabelValues(string(ev.Mode)).Observe(ev.TotalKm)
	return nil
}

// RecordRoutes increments the route counter for each generated route.
func (s *PromSink) RecordRoutes(evs []coremetrics.RouteEvent) error {
	for _, ev := range evs {
		s.routes.WithLabelValues(ev.TruckID, strconv.FormatBool(ev.PriorityRoute)).Inc()
	}
	return nil
}

// RecordFleetSnapshot sets the bin and truck gauges.
func (s *PromSink) RecordFleetSnapshot(ev coremetrics.FleetSnapshotEvent) error {
	for _, status := range []model.BinStatus{model.StatusEmpty, model.StatusHalf, model.StatusFull, model.StatusPriority} {
		s.binsStatus.WithLabelValues(status.String()).Set(float64(ev.BinsByStatus[status]))
	}
	s.trucksTotal.Set(float64(ev.Trucks))
	s.trucksUp.Set(float64(ev.ActiveTrucks))
	return nil
}
