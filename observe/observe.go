package observe

import "context"

// Decision outcomes used as metric and span attribute values.
const (
	OutcomeCacheable = "cacheable"
	OutcomeDeclined  = "declined"
)

// GoalMeta identifies the plugin goal execution a telemetry record belongs to.
type GoalMeta struct {
	PluginID    string // owning plugin, e.g. quarkus-maven-plugin
	ExecutionID string // plugin execution id, e.g. build
	Project     string // project the goal runs in (optional)
}

// GoalID returns the fully qualified goal identifier.
// Format: <plugin>:<execution> or just <plugin>.
func (m GoalMeta) GoalID() string {
	if m.ExecutionID != "" {
		return m.PluginID + ":" + m.ExecutionID
	}
	return m.PluginID
}

// SpanName returns the deterministic span name for a decision on this goal.
// Format: goal.decide.<plugin>.<execution>
func (m GoalMeta) SpanName() string {
	if m.ExecutionID != "" {
		return "goal.decide." + m.PluginID + "." + m.ExecutionID
	}
	return "goal.decide." + m.PluginID
}

// Logger is a minimal structured logging interface.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort and must not panic.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)
	WithGoal(meta GoalMeta) Logger
}

// Field represents a structured log field.
type Field struct {
	Key   string
	Value any
}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger { return &noopLogger{} }

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (l *noopLogger) Info(ctx context.Context, msg string, fields ...Field)  {}
func (l *noopLogger) Warn(ctx context.Context, msg string, fields ...Field)  {}
func (l *noopLogger) Error(ctx context.Context, msg string, fields ...Field) {}
func (l *noopLogger) Debug(ctx context.Context, msg string, fields ...Field) {}
func (l *noopLogger) WithGoal(meta GoalMeta) Logger                          { return l }
