package main

import (
	"math/rand"
	"testing"
	"time"
)

func TestTickGrows(t *testing.T) {
	b := &SimulatedBin{
		Interval:     time.Minute,
		Fill:         10,
		GrowthPerMin: 2,
		rng:          rand.New(rand.NewSource(1)),
	}
	if got := b.Tick(); got != 12 {
		t.Fatalf("expected 12 got %v", got)
	}
}

func TestTickResetsAfterPickup(t *testing.T) {
	b := &SimulatedBin{
		Interval:     time.Minute,
		Fill:         109.5,
		GrowthPerMin: 2,
		rng:          rand.New(rand.NewSource(1)),
	}
	if got := b.Tick(); got != 0 {
		t.Fatalf("expected reset to 0 got %v", got)
	}
}

func TestTickJitterBounded(t *testing.T) {
	b := &SimulatedBin{
		Interval:     time.Minute,
		GrowthPerMin: 1,
		Jitter:       0.5,
		rng:          rand.New(rand.NewSource(42)),
	}
	prev := 0.0
	for i := 0; i < 50; i++ {
		got := b.Tick()
		delta := got - prev
		if delta < 0.5 || delta > 1.5 {
			t.Fatalf("growth %v outside jitter bounds", delta)
		}
		prev = got
	}
}
