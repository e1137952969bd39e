package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// SimulatedBin publishes a fill report on every tick. The fill level grows
// by a jittered rate and drops back to zero once it passes the collection
// point, imitating a pickup.
type SimulatedBin struct {
	SensorID     string
	Broker       string
	TopicPrefix  string
	Interval     time.Duration
	Fill         float64
	GrowthPerMin float64
	Jitter       float64

	client paho.Client
	rng    *rand.Rand
}

// Tick advances the fill level by one interval and returns the new value.
func (b *SimulatedBin) Tick() float64 {
	growth := b.GrowthPerMin * b.Interval.Minutes()
	if b.Jitter > 0 {
		growth *= 1 + (b.rng.Float64()*2-1)*b.Jitter
	}
	b.Fill += growth
	if b.Fill > 110 {
		b.Fill = 0
	}
	return b.Fill
}

// Run connects to the broker and publishes reports until ctx is done.
func (b *SimulatedBin) Run(ctx context.Context) error {
	cli, err := newMQTTClient(b.Broker, "sim-bin-"+b.SensorID)
	if err != nil {
		return err
	}
	b.client = cli
	defer cli.Disconnect(250)

	topic := fmt.Sprintf("%s/bins/%s/fill", b.TopicPrefix, b.SensorID)
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			b.publish(topic, b.Tick())
		}
	}
}

func (b *SimulatedBin) publish(topic string, fill float64) {
	payload, err := json.Marshal(map[string]any{
		"sensorId":  b.SensorID,
		"fillLevel": fill,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("%s: encode report: %v", b.SensorID, err)
		return
	}
	if token := b.client.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
		log.Printf("%s: publish: %v", b.SensorID, token.Error())
	}
}
