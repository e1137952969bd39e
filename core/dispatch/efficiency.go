package dispatch

import "github.com/wasteflow/wasteflow/core/model"

const (
	// baselinePerBinKm is the synthetic unoptimized cost: one dedicated
	// 5 km trip per bin. No real historical baseline is tracked.
	baselinePerBinKm = 5
	// baselineMinPerKm converts baseline distance to time.
	baselineMinPerKm = 6
	// fuelLPerKm assumes 8 liters per 100 km saved.
	fuelLPerKm = 0.08
)

// EstimateEfficiency compares the optimized route totals against the naive
// per-bin baseline. All savings are clamped at zero so the result is never
// negative regardless of input.
func EstimateEfficiency(routes []model.Route) model.Efficiency {
	totalBins := 0
	optimizedKm := 0.0
	optimizedMin := 0.0
	for _, r := range routes {
		totalBins += len(r.BinSensorIDs)
		optimizedKm += r.TotalDistance
		optimizedMin += float64(r.EstimatedTimeMin)
	}

	baselineKm := float64(totalBins) * baselinePerBinKm
	baselineMin := baselineKm * baselineMinPerKm

	eff := model.Efficiency{
		TimeSavedMin:    model.Round2(baselineMin - optimizedMin),
		DistanceSavedKm: model.Round2(baselineKm - optimizedKm),
	}
	if eff.TimeSavedMin < 0 {
		eff.TimeSavedMin = 0
	}
	if eff.DistanceSavedKm < 0 {
		eff.DistanceSavedKm = 0
	}
	eff.FuelSavedL = model.Round2(eff.DistanceSavedKm * fuelLPerKm)
	if eff.FuelSavedL < 0 {
		eff.FuelSavedL = 0
	}
	return eff
}
