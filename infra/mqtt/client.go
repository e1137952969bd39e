// Package mqtt ingests bin sensor telemetry from an MQTT broker. Each
// report carries a sensor id, a fill percentage and a timestamp; the
// configured handler decides what to do with it. The planner itself never
// talks to the broker.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/wasteflow/wasteflow/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Enabled        bool   `json:"enabled"`
	Broker         string `json:"broker"`
	ClientID       string `json:"client_id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	TelemetryTopic string `json:"telemetry_topic"`
	QoS            byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.TelemetryTopic == "" {
		c.TelemetryTopic = "wasteflow/bins/+/fill"
	}
	if c.ClientID == "" {
		c.ClientID = "wasteflow-" + uuid.NewString()
	}
}

// SensorReport is the payload bins publish on the telemetry topic.
type SensorReport struct {
	SensorID  string    `json:"sensorId"`
	FillLevel float64   `json:"fillLevel"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportHandler consumes parsed sensor reports.
type ReportHandler func(SensorReport)

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// PahoTelemetry subscribes to the telemetry topic and forwards parsed
// reports to the handler.
type PahoTelemetry struct {
	cli     pahoClient
	topic   string
	qos     byte
	handler ReportHandler
	logger  logger.Logger
}

// NewPahoTelemetry connects to the MQTT broker and subscribes to the
// telemetry topic.
func NewPahoTelemetry(cfg Config, handler ReportHandler) (*PahoTelemetry, error) {
	if handler == nil {
		return nil, fmt.Errorf("mqtt telemetry: handler must not be nil")
	}
	cfg.SetDefaults()

	log := logger.New("mqtt_telemetry")
	pt := &PahoTelemetry{
		topic:   cfg.TelemetryTopic,
		qos:     cfg.QoS,
		handler: handler,
		logger:  log,
	}

	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Subscribe(pt.topic, pt.qos, pt.onReport); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe error: %v", token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	pt.cli = c
	return pt, nil
}

// onReport parses one telemetry message. Malformed payloads are logged and
// dropped; they never abort the subscription.
func (pt *PahoTelemetry) onReport(_ paho.Client, msg paho.Message) {
	var report SensorReport
	if err := json.Unmarshal(msg.Payload(), &report); err != nil {
		pt.logger.Errorf("malformed telemetry payload on %s: %v", msg.Topic(), err)
		return
	}
	if report.SensorID == "" {
		pt.logger.Warnf("telemetry report without sensor id on %s", msg.Topic())
		return
	}
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now()
	}
	pt.handler(report)
}

// Close disconnects from the broker.
func (pt *PahoTelemetry) Close() {
	if pt.cli != nil && pt.cli.IsConnected() {
		pt.cli.Disconnect(250)
	}
}
