// Package observability defines the metrics and structured logging
// interfaces used across jsonshape.
//
// The central entry point is [Provider], which composes [Metrics] and
// [Logger] into a single injectable dependency. A nil Provider is valid
// everywhere jsonshape accepts one and disables observation.
//
// The semconv.go file contains the attribute-key and metric-name constants
// that should be used when recording observations.
package observability
