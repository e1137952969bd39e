// Package export writes generated route plans to an io.Writer for
// consumption by dispatch boards or spreadsheets.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/wasteflow/wasteflow/core/model"
)

// WriteJSON writes the route plan to w in JSON format.
func WriteJSON(w io.Writer, plan *model.RoutePlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteCSV writes the route plan to w as one row per stop.
func WriteCSV(w io.Writer, plan *model.RoutePlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"truck_id", "stop_order", "sensor_id", "estimated_min", "priority"}); err != nil {
		return err
	}
	for _, r := range plan.Routes {
		for _, s := range r.Stops {
			rec := []string{
				r.TruckID,
				strconv.Itoa(s.Order),
				s.SensorID,
				strconv.Itoa(s.EstimatedTime),
				strconv.FormatBool(s.Priority),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
