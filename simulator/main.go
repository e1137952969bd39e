package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Config holds the simulator flags.
type Config struct {
	Broker       string
	TopicPrefix  string
	Count        int
	Interval     time.Duration
	GrowthPerMin float64
	Jitter       float64
	Seed         int64
	Verbose      bool
}

func main() {
	cfg := parseFlags()
	if cfg.Count <= 0 {
		log.Fatal("count must be positive")
	}
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(cfg.Seed))
	bins := make([]*SimulatedBin, cfg.Count)
	for i := range bins {
		bins[i] = &SimulatedBin{
			SensorID:     fmt.Sprintf("sim-%03d", i),
			Broker:       cfg.Broker,
			TopicPrefix:  cfg.TopicPrefix,
			Interval:     cfg.Interval,
			Fill:         rng.Float64() * 60,
			GrowthPerMin: cfg.GrowthPerMin,
			Jitter:       cfg.Jitter,
			rng:          rand.New(rand.NewSource(rng.Int63())),
		}
	}
	runBins(ctx, bins)
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.Broker, "broker", "tcp://localhost:1883", "MQTT broker URL")
	flag.StringVar(&cfg.TopicPrefix, "topic-prefix", "wasteflow", "MQTT topic prefix")
	flag.IntVar(&cfg.Count, "count", 10, "number of simulated bins")
	flag.DurationVar(&cfg.Interval, "interval", 30*time.Second, "fill publish interval")
	flag.Float64Var(&cfg.GrowthPerMin, "growth", 0.5, "fill growth in percent per minute")
	flag.Float64Var(&cfg.Jitter, "jitter", 0.3, "relative growth jitter")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "random seed")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "enable verbose logging")
	flag.Parse()
	return cfg
}

func runBins(ctx context.Context, bins []*SimulatedBin) {
	var wg sync.WaitGroup
	for _, b := range bins {
		wg.Add(1)
		go func(b *SimulatedBin) {
			defer wg.Done()
			if err := b.Run(ctx); err != nil {
				log.Printf("%s: %v", b.SensorID, err)
			}
		}(b)
	}
	wg.Wait()
}
