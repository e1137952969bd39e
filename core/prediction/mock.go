package prediction

import "github.com/wasteflow/wasteflow/core/model"

// MockFillPredictor returns configured forecasts for tests.
type MockFillPredictor struct {
	Fills map[string]float64
}

// PredictFill returns the configured forecast for the sensor, or the bin's
// current fill level when none is set.
func (m MockFillPredictor) PredictFill(bin model.Bin) float64 {
	if m.Fills == nil {
		return bin.FillLevel
	}
	if v, ok := m.Fills[bin.SensorID]; ok {
		return v
	}
	return bin.FillLevel
}
