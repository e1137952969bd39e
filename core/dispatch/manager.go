package dispatch

import (
	"time"

	"github.com/google/uuid"

	"github.com/wasteflow/wasteflow/core/events"
	"github.com/wasteflow/wasteflow/core/logger"
	"github.com/wasteflow/wasteflow/core/metrics"
	"github.com/wasteflow/wasteflow/core/model"
	"github.com/wasteflow/wasteflow/core/prediction"
	"github.com/wasteflow/wasteflow/core/routing"
	"github.com/wasteflow/wasteflow/internal/eventbus"
)

// PlanManager runs the full planning cycle over a fleet snapshot: candidate
// selection, fuel filtering, allocation, efficiency estimation and event
// emission.
//
// The manager is a pure synchronous computation over the snapshot it is
// handed; it never re-reads storage mid-run. Two concurrent GeneratePlan
// calls over independently fetched snapshots can double-claim the same bin
// across two plans. Callers intended for concurrent use must either
// serialize plan generation or apply a claim check when persisting a plan.
type PlanManager struct {
	allocator *Allocator
	predictor prediction.FillPredictor
	sink      metrics.MetricsSink
	bus       eventbus.EventBus
	log       logger.Logger
	depot     string
	now       func() time.Time
}

// NewPlanManager wires a manager. predictor, sink and bus may be nil, in
// which case predictive mode reuses reported fills, metrics are discarded
// and no events are published.
func NewPlanManager(
	allocator *Allocator,
	predictor prediction.FillPredictor,
	sink metrics.MetricsSink,
	bus eventbus.EventBus,
	log logger.Logger,
	depot string,
) *PlanManager {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = nopLogger{}
	}
	return &PlanManager{
		allocator: allocator,
		predictor: predictor,
		sink:      sink,
		bus:       bus,
		log:       log,
		depot:     depot,
		now:       time.Now,
	}
}

// GeneratePlan produces a complete route plan or fails with one of the
// typed allocation errors before producing any route.
func (m *PlanManager) GeneratePlan(mode model.PlanMode, bins []model.Bin, trucks []model.Truck) (*model.RoutePlan, error) {
	working := bins
	if mode == model.ModePredictive && m.predictor != nil {
		working = make([]model.Bin, len(bins))
		copy(working, bins)
		for i := range working {
			working[i].FillLevel = m.predictor.PredictFill(working[i])
		}
	}

	var candidates []model.Bin
	for _, b := range working {
		if b.NeedsCollection() {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoBinsRequireCollection
	}

	var active []model.Truck
	for _, t := range trucks {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil, ErrNoActiveTrucks
	}

	eligible := routing.FilterByFuel(active, len(candidates))
	if len(eligible) == 0 {
		return nil, ErrInsufficientFleetFuel
	}

	routes, err := m.allocator.Allocate(candidates, eligible, m.depot)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Truck, len(eligible))
	for _, t := range eligible {
		byID[t.ID] = t
	}
	deductions := make(map[string]float64, len(routes))
	for _, r := range routes {
		deductions[r.TruckID] = model.Round2(byID[r.TruckID].FuelFor(r.TotalDistance))
	}

	plan := &model.RoutePlan{
		ID:             uuid.NewString(),
		Mode:           mode,
		Routes:         routes,
		Efficiency:     EstimateEfficiency(routes),
		GeneratedAt:    m.now(),
		FuelDeductions: deductions,
	}

	m.log.Infof("plan %s generated: %d routes, %d bins", plan.ID, len(plan.Routes), plan.BinCount())
	m.publish(plan)
	m.record(plan)

	return plan, nil
}

// ValidateTruckFuel answers a fuel validation query for one truck of the
// snapshot. An id absent from the snapshot yields ErrUnknownTruck.
func (m *PlanManager) ValidateTruckFuel(trucks []model.Truck, truckID string, estimatedKm float64) (routing.FuelCheck, error) {
	for _, t := range trucks {
		if t.ID == truckID {
			return routing.ValidateFuel(t, estimatedKm), nil
		}
	}
	return routing.FuelCheck{}, ErrUnknownTruck
}

func (m *PlanManager) publish(plan *model.RoutePlan) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(events.PlanGeneratedEvent{Plan: plan})
	for _, r := range plan.Routes {
		m.bus.Publish(events.AssignmentEvent{
			PlanID:        plan.ID,
			TruckID:       r.TruckID,
			Bins:          len(r.BinSensorIDs),
			TotalKm:       r.TotalDistance,
			PriorityRoute: r.PriorityRoute,
		})
	}
}

func (m *PlanManager) record(plan *model.RoutePlan) {
	totalKm := 0.0
	routeEvs := make([]metrics.RouteEvent, 0, len(plan.Routes))
	for _, r := range plan.Routes {
		totalKm += r.TotalDistance
		routeEvs = append(routeEvs, metrics.RouteEvent{
			PlanID:        plan.ID,
			TruckID:       r.TruckID,
			Bins:          len(r.BinSensorIDs),
			TotalKm:       r.TotalDistance,
			EstimatedMin:  r.EstimatedTimeMin,
			PriorityRoute: r.PriorityRoute,
			Time:          plan.GeneratedAt,
		})
	}
	ev := metrics.PlanEvent{
		PlanID:     plan.ID,
		Mode:       plan.Mode,
		Routes:     len(plan.Routes),
		Bins:       plan.BinCount(),
		TotalKm:    model.Round2(totalKm),
		Efficiency: plan.Efficiency,
		Time:       plan.GeneratedAt,
	}
	if err := m.sink.RecordPlan(ev); err != nil {
		m.log.Errorf("record plan metrics: %v", err)
	}
	if err := m.sink.RecordRoutes(routeEvs); err != nil {
		m.log.Errorf("record route metrics: %v", err)
	}
}
