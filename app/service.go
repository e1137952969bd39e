package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wasteflow/wasteflow/config"
	"github.com/wasteflow/wasteflow/core/dispatch"
	"github.com/wasteflow/wasteflow/core/distance"
	"github.com/wasteflow/wasteflow/core/events"
	"github.com/wasteflow/wasteflow/core/fleet"
	coremetrics "github.com/wasteflow/wasteflow/core/metrics"
	"github.com/wasteflow/wasteflow/core/model"
	"github.com/wasteflow/wasteflow/core/prediction"
	"github.com/wasteflow/wasteflow/infra/logger"
	"github.com/wasteflow/wasteflow/infra/metrics"
	"github.com/wasteflow/wasteflow/infra/mqtt"
	"github.com/wasteflow/wasteflow/internal/eventbus"
)

// Service orchestrates telemetry ingestion and the periodic planning loop.
type Service struct {
	Manager   *dispatch.PlanManager
	Store     *fleet.SnapshotStore
	bus       *eventbus.Bus
	log       logger.Logger
	predictor *prediction.HistoryPredictor
	telemetry *mqtt.PahoTelemetry
	recorder  coremetrics.FleetRecorder
	mode      model.PlanMode
	interval  time.Duration

	promEnabled bool
	promPort    string

	mu       sync.Mutex
	lastFill map[string]float64
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}
	recorder, _ := sink.(coremetrics.FleetRecorder)

	provider := distance.NewStaticProvider(cfg.Engine.DistanceTable, cfg.Engine.DefaultDistanceKm)
	predictor := prediction.NewHistoryPredictor(cfg.Engine.PredictionWindow)
	bus := eventbus.New()
	allocator := dispatch.NewAllocator(provider, nil, logg)
	manager := dispatch.NewPlanManager(allocator, predictor, sink, bus, logg, cfg.Engine.Depot)

	store := fleet.NewSnapshotStore()
	if cfg.Engine.FleetFile != "" {
		snap, err := fleet.LoadFile(cfg.Engine.FleetFile)
		if err != nil {
			return nil, fmt.Errorf("fleet registry: %w", err)
		}
		store.Seed(snap)
		logg.Infof("fleet registry loaded: %d bins, %d trucks", len(snap.Bins), len(snap.Trucks))
	}

	svc := &Service{
		Manager:     manager,
		Store:       store,
		bus:         bus,
		log:         logg,
		predictor:   predictor,
		recorder:    recorder,
		mode:        model.PlanMode(cfg.Engine.Mode),
		interval:    time.Duration(cfg.Engine.PlanIntervalSeconds) * time.Second,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
		lastFill:    make(map[string]float64),
	}

	if cfg.MQTT.Enabled {
		telemetry, err := mqtt.NewPahoTelemetry(cfg.MQTT, svc.onReport)
		if err != nil {
			return nil, fmt.Errorf("mqtt telemetry: %w", err)
		}
		svc.telemetry = telemetry
	}
	return svc, nil
}

// onReport folds one sensor report into the fleet snapshot and feeds the
// fill growth history used by predictive planning.
func (s *Service) onReport(r mqtt.SensorReport) {
	if !s.Store.ApplyFill(r.SensorID, r.FillLevel, r.Timestamp) {
		s.log.Warnf("report for unknown sensor %s dropped", r.SensorID)
		return
	}
	s.mu.Lock()
	if prev, ok := s.lastFill[r.SensorID]; ok && r.FillLevel > prev {
		s.predictor.Observe(r.SensorID, r.FillLevel-prev)
	}
	s.lastFill[r.SensorID] = r.FillLevel
	s.mu.Unlock()

	s.bus.Publish(events.TelemetryEvent{SensorID: r.SensorID, FillLevel: r.FillLevel, Time: r.Timestamp})
}

// Run starts the planning loop and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	assignments, stopAssignments := eventbus.Filtered[events.AssignmentEvent](s.bus)
	defer stopAssignments()
	go s.notifyAssignments(assignments)

	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.planOnce()
		}
	}
}

// notifyAssignments mirrors route assignments to the log so dispatchers can
// follow allocation without scraping metrics.
func (s *Service) notifyAssignments(ch <-chan events.AssignmentEvent) {
	for asn := range ch {
		s.log.Infof("truck %s assigned %d bins over %.2f km (priority=%t)",
			asn.TruckID, asn.Bins, asn.TotalKm, asn.PriorityRoute)
	}
}

func (s *Service) planOnce() {
	bins := s.Store.Bins()
	trucks := s.Store.Trucks()
	s.recordFleet()

	plan, err := s.Manager.GeneratePlan(s.mode, bins, trucks)
	switch err {
	case nil:
		s.log.Infof("plan %s: %d routes over %d bins", plan.ID, len(plan.Routes), plan.BinCount())
	case dispatch.ErrNoBinsRequireCollection:
		s.log.Debugf("no bins require collection this cycle")
	case dispatch.ErrNoActiveTrucks, dispatch.ErrInsufficientFleetFuel:
		s.log.Warnf("planning skipped: %v", err)
	default:
		s.log.Errorf("plan generation: %v", err)
	}
}

func (s *Service) recordFleet() {
	if s.recorder == nil {
		return
	}
	stats := s.Store.Stats()
	ev := coremetrics.FleetSnapshotEvent{
		BinsByStatus: stats.BinsByStatus,
		Trucks:       stats.Trucks,
		ActiveTrucks: stats.ActiveTrucks,
	}
	if err := s.recorder.RecordFleetSnapshot(ev); err != nil {
		s.log.Errorf("record fleet snapshot: %v", err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.telemetry != nil {
		s.telemetry.Close()
	}
	s.bus.Close()
	return nil
}
