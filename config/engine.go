package config

import "fmt"

// EngineConfig defines settings for the planning engine.
type EngineConfig struct {
	// Depot is the home location used when a truck's current location is
	// unknown.
	Depot string `json:"depot"`
	// FleetFile points at the JSON bin/truck registry seeding the snapshot
	// store at startup. Without it the service only knows the sensors that
	// telemetry can match against, which is none.
	FleetFile string `json:"fleet_file"`
	// Mode selects the fill levels the planner works from: "real-time" or
	// "predictive".
	Mode string `json:"mode"`
	// DefaultDistanceKm is returned for location pairs absent from the
	// distance table.
	DefaultDistanceKm float64 `json:"default_distance_km"`
	// DistanceTable maps origin -> destination -> kilometers. Lookups are
	// symmetric; each pair needs one entry.
	DistanceTable map[string]map[string]float64 `json:"distance_table"`
	// PlanIntervalSeconds is the period of the planning loop in service
	// mode.
	PlanIntervalSeconds int `json:"plan_interval_seconds"`
	// PredictionWindow is the number of per-cycle fill samples kept per
	// sensor for predictive planning.
	PredictionWindow int `json:"prediction_window"`
}

// SetDefaults applies sane defaults.
func (c *EngineConfig) SetDefaults() {
	if c.Mode == "" {
		c.Mode = "real-time"
	}
	if c.DefaultDistanceKm <= 0 {
		c.DefaultDistanceKm = 10
	}
	if c.PlanIntervalSeconds <= 0 {
		c.PlanIntervalSeconds = 300
	}
	if c.PredictionWindow <= 0 {
		c.PredictionWindow = 14
	}
}

// Validate checks mandatory fields.
func (c EngineConfig) Validate() error {
	if c.Depot == "" {
		return fmt.Errorf("engine: depot is required")
	}
	if c.Mode != "real-time" && c.Mode != "predictive" {
		return fmt.Errorf("engine: unknown mode %s", c.Mode)
	}
	return nil
}
