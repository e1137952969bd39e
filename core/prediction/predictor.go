package prediction

import "github.com/wasteflow/wasteflow/core/model"

// FillPredictor forecasts the fill level a bin will reach by the next
// collection cycle.
type FillPredictor interface {
	// PredictFill returns the expected fill percentage for the bin at the
	// next cycle. Implementations must return a finite value.
	PredictFill(bin model.Bin) float64
}
