// Package events defines the planning related events emitted on the event
// bus.
//
// Available event types:
//   - PlanGeneratedEvent: a complete route plan was produced
//   - AssignmentEvent: one truck received a route within a plan
//   - TelemetryEvent: a sensor fill-level report was applied to the snapshot
package events
