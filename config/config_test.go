package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `engine:
  depot: "central-depot"
  mode: "predictive"
  default_distance_km: 12
  plan_interval_seconds: 60
  distance_table:
    central-depot:
      rue-a: 3.5
mqtt:
  enabled: true
  broker: "tcp://localhost:1883"
  client_id: "cli"
  telemetry_topic: "bins/+/fill"
metrics:
  prometheus_enabled: true
  prometheus_port: ":9100"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"depot", cfg.Engine.Depot, "central-depot"},
		{"mode", cfg.Engine.Mode, "predictive"},
		{"default_distance_km", cfg.Engine.DefaultDistanceKm, 12.0},
		{"plan_interval_seconds", cfg.Engine.PlanIntervalSeconds, 60},
		{"distance_table", cfg.Engine.DistanceTable["central-depot"]["rue-a"], 3.5},
		{"prediction_window_default", cfg.Engine.PredictionWindow, 14},
		{"mqtt.enabled", cfg.MQTT.Enabled, true},
		{"mqtt.broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"mqtt.client_id", cfg.MQTT.ClientID, "cli"},
		{"mqtt.telemetry_topic", cfg.MQTT.TelemetryTopic, "bins/+/fill"},
		{"metrics.prometheus_port", cfg.Metrics.PrometheusPort, ":9100"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadMissingDepot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  mode: real-time\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing depot")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestEngineDefaults(t *testing.T) {
	var cfg EngineConfig
	cfg.SetDefaults()
	if cfg.Mode != "real-time" {
		t.Errorf("mode default mismatch: %s", cfg.Mode)
	}
	if cfg.DefaultDistanceKm != 10 {
		t.Errorf("default distance mismatch: %v", cfg.DefaultDistanceKm)
	}
	if cfg.PlanIntervalSeconds != 300 {
		t.Errorf("plan interval mismatch: %d", cfg.PlanIntervalSeconds)
	}
}
