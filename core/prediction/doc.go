// Package prediction provides interfaces for forecasting bin fill levels.
// Predictions are optional but let the planner schedule collections before
// bins overflow instead of reacting to sensor reports.
package prediction
