package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/wasteflow/wasteflow/infra/logger"

	coremetrics "github.com/wasteflow/wasteflow/core/metrics"
)

// InfluxSink writes planning KPIs to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlan writes the plan summary as a single measurement point.
func (s *InfluxSink) RecordPlan(ev coremetrics.PlanEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := influxdb2.NewPoint("collection_plan",
		map[string]string{"mode": string(ev.Mode)},
		map[string]interface{}{
			"plan_id":           ev.PlanID,
			"routes":            ev.Routes,
			"bins":              ev.Bins,
			"total_km":          ev.TotalKm,
			"time_saved_min":    ev.Efficiency.TimeSavedMin,
			"distance_saved_km": ev.Efficiency.DistanceSavedKm,
			"fuel_saved_l":      ev.Efficiency.FuelSavedL,
		},
		ev.Time)
	if err := s.writeAPI.WritePoint(ctx, p); err != nil {
		s.log.Errorf("write plan point: %v", err)
		return err
	}
	return nil
}

// RecordRoutes writes one point per truck route.
func (s *InfluxSink) RecordRoutes(evs []coremetrics.RouteEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, ev := range evs {
		p := influxdb2.NewPoint("collection_route",
			map[string]string{
				"truck_id": ev.TruckID,
				"priority": strconv.FormatBool(ev.PriorityRoute),
			},
			map[string]interface{}{
				"plan_id":       ev.PlanID,
				"bins":          ev.Bins,
				"total_km":      ev.TotalKm,
				"estimated_min": ev.EstimatedMin,
			},
			ev.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			s.log.Errorf("write route point: %v", err)
			return err
		}
	}
	return nil
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
