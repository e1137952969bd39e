package distance

import "math"

const earthRadiusKm = 6371.0

// Coordinates is a geographic point used by the haversine provider.
type Coordinates struct {
	Lat float64
	Lon float64
}

// HaversineProvider computes great-circle distances for locations with known
// coordinates and delegates to a fallback provider for the rest. It suits
// deployments where bins carry GPS positions instead of a curated table.
type HaversineProvider struct {
	coords   map[string]Coordinates
	fallback Provider
}

// NewHaversineProvider builds a provider over the given coordinate set.
// fallback may be nil, in which case unknown locations resolve to DefaultKm.
func NewHaversineProvider(coords map[string]Coordinates, fallback Provider) *HaversineProvider {
	if fallback == nil {
		fallback = NewStaticProvider(nil, DefaultKm)
	}
	return &HaversineProvider{coords: coords, fallback: fallback}
}

// Distance returns the haversine distance when both locations have
// coordinates and defers to the fallback provider otherwise.
func (p *HaversineProvider) Distance(a, b string) float64 {
	ca, okA := p.coords[a]
	cb, okB := p.coords[b]
	if !okA || !okB {
		return p.fallback.Distance(a, b)
	}
	return haversine(ca, cb)
}

// Known reports whether both locations carry coordinates or the fallback
// knows the pair.
func (p *HaversineProvider) Known(a, b string) bool {
	_, okA := p.coords[a]
	_, okB := p.coords[b]
	if okA && okB {
		return true
	}
	if kr, ok := p.fallback.(KnownReporter); ok {
		return kr.Known(a, b)
	}
	return false
}

func haversine(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
