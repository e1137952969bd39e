// Package distance resolves travel distances between named locations.
//
// The planner treats distances as opaque kilometer values: it never assumes
// a metric space or triangle inequality, only that lookups are symmetric and
// total. Unknown pairs resolve to a configurable default so a sparse table
// degrades a plan instead of aborting it.
package distance

// Provider returns the travel distance in kilometers between two named
// locations. Lookups are symmetric and must always return a finite value.
type Provider interface {
	Distance(a, b string) float64
}

// KnownReporter is an optional extension implemented by providers that can
// tell whether a pair resolved without the default fallback. It exists so
// tests and diagnostics can distinguish a real distance from the
// approximation.
type KnownReporter interface {
	Known(a, b string) bool
}
