package distance

// DefaultKm is the fallback distance returned for pairs absent from the
// table. The flat 10 km default is a known approximation for sparse tables;
// it keeps malformed locations from aborting an allocation run.
const DefaultKm = 10

// StaticProvider looks distances up in a hand-authored table. The ordered
// pair is tried first, then the reverse pair, then the default applies.
type StaticProvider struct {
	table     map[[2]string]float64
	defaultKm float64
}

// NewStaticProvider builds a provider from origin->destination->km entries.
// A non-positive defaultKm falls back to DefaultKm.
func NewStaticProvider(table map[string]map[string]float64, defaultKm float64) *StaticProvider {
	if defaultKm <= 0 {
		defaultKm = DefaultKm
	}
	p := &StaticProvider{
		table:     make(map[[2]string]float64),
		defaultKm: defaultKm,
	}
	for from, row := range table {
		for to, km := range row {
			p.table[[2]string{from, to}] = km
		}
	}
	return p
}

// Distance returns the table entry for (a, b), the reverse entry for (b, a),
// or the configured default when neither exists.
func (p *StaticProvider) Distance(a, b string) float64 {
	if km, ok := p.table[[2]string{a, b}]; ok {
		return km
	}
	if km, ok := p.table[[2]string{b, a}]; ok {
		return km
	}
	return p.defaultKm
}

// Known reports whether the pair resolves without the default fallback.
func (p *StaticProvider) Known(a, b string) bool {
	if _, ok := p.table[[2]string{a, b}]; ok {
		return true
	}
	_, ok := p.table[[2]string{b, a}]
	return ok
}

// DefaultDistance returns the configured fallback distance.
func (p *StaticProvider) DefaultDistance() float64 {
	return p.defaultKm
}
