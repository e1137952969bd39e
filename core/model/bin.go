package model

import (
	"fmt"
	"time"
)

// Bin represents a collection bin as last reported by its fill sensor.
type Bin struct {
	ID                string
	SensorID          string    // unique sensor identifier
	Location          string    // location name resolved by the distance provider
	FillLevel         float64   // reported fill percentage; values above 100 are accepted
	HistoricalAvgFill float64   // long-run average fill used by predictive planning
	LastSeenAt        time.Time // time of the last sensor report
}

// BinStatus is the collection urgency category derived from the fill level.
type BinStatus int

const (
	StatusEmpty BinStatus = iota
	StatusHalf
	StatusFull
	StatusPriority
)

// ClassifyFill maps a fill percentage to its status category. The mapping is
// total: any finite value falls into exactly one category and values above
// 100 remain Priority.
func ClassifyFill(fill float64) BinStatus {
	switch {
	case fill >= 100:
		return StatusPriority
	case fill >= 70:
		return StatusFull
	case fill >= 25:
		return StatusHalf
	default:
		return StatusEmpty
	}
}

// Status returns the bin's current status category.
func (b Bin) Status() BinStatus {
	return ClassifyFill(b.FillLevel)
}

// NeedsCollection reports whether the bin qualifies as a candidate for the
// next collection cycle. The threshold is strictly above 70 percent.
func (b Bin) NeedsCollection() bool {
	return b.FillLevel > 70
}

// Validate checks that the bin snapshot is usable by the planner.
func (b Bin) Validate() error {
	if b.SensorID == "" {
		return fmt.Errorf("bin %s: sensor id must not be empty", b.ID)
	}
	return nil
}

// String returns a human-readable representation of the status.
func (s BinStatus) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusHalf:
		return "half"
	case StatusFull:
		return "full"
	case StatusPriority:
		return "priority"
	default:
		return "unknown"
	}
}
