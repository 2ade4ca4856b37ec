// Package observe provides the telemetry primitives used around cache
// decisions: structured logging, OpenTelemetry spans, and decision metrics.
//
// The library runs embedded in a host build process, so this package never
// installs providers. Constructors take a trace.Tracer or metric.Meter owned
// by the host; everything defaults to no-op.
package observe
