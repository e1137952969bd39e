package prediction

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/wasteflow/wasteflow/core/model"
)

// HistoryPredictor forecasts fill levels from recorded samples. The forecast
// is the current level plus the mean per-cycle growth observed for the
// sensor, padded by one standard deviation so that marginal bins err toward
// collection. Sensors without history fall back to the bin's long-run
// average fill as the growth estimate.
type HistoryPredictor struct {
	mu      sync.RWMutex
	samples map[string][]float64 // per-cycle fill growth by sensor id
	window  int
}

// NewHistoryPredictor returns a predictor keeping at most window samples per
// sensor. A non-positive window defaults to 14.
func NewHistoryPredictor(window int) *HistoryPredictor {
	if window <= 0 {
		window = 14
	}
	return &HistoryPredictor{samples: make(map[string][]float64), window: window}
}

// Observe records the fill growth measured for a sensor over one cycle.
func (p *HistoryPredictor) Observe(sensorID string, growth float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := append(p.samples[sensorID], growth)
	if len(s) > p.window {
		s = s[len(s)-p.window:]
	}
	p.samples[sensorID] = s
}

// PredictFill implements FillPredictor.
func (p *HistoryPredictor) PredictFill(bin model.Bin) float64 {
	p.mu.RLock()
	s := p.samples[bin.SensorID]
	p.mu.RUnlock()

	if len(s) == 0 {
		return model.Finite(bin.FillLevel + bin.HistoricalAvgFill)
	}

	mean := stat.Mean(s, nil)
	sd := 0.0
	if len(s) > 1 {
		sd = stat.StdDev(s, nil)
	}
	return model.Finite(bin.FillLevel + mean + sd)
}
