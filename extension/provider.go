package extension

import (
	"context"

	"github.com/jonwraymond/goalcache/observe"
	"github.com/jonwraymond/goalcache/quarkus"
)

// The one plugin execution this provider configures. Everything else passes
// through untouched.
const (
	PluginID    = "quarkus-maven-plugin"
	ExecutionID = "build"
)

// Provider wires a quarkus.Decider to a host build-cache API. Register
// Configure as the host's per-goal metadata callback.
type Provider struct {
	decider *quarkus.Decider
}

// NewProvider creates a Provider around d. A nil decider gets production
// defaults.
func NewProvider(d *quarkus.Decider) *Provider {
	if d == nil {
		d = quarkus.NewDecider(quarkus.Options{})
	}
	return &Provider{decider: d}
}

// Configure evaluates mc and, when the goal is cacheable, replays the
// fingerprint spec through the host's builders. Executions of other plugins
// or other execution ids are ignored; a declined decision calls neither
// builder.
func (p *Provider) Configure(ctx context.Context, mc MetadataContext) {
	exec := mc.Execution()
	if exec.PluginID != PluginID || exec.ExecutionID != ExecutionID {
		return
	}

	decision := p.decider.Decide(ctx, observe.GoalMeta{
		PluginID:    exec.PluginID,
		ExecutionID: exec.ExecutionID,
		Project:     exec.Project,
	})
	if !decision.IsCacheable() {
		return
	}

	spec := decision.Spec
	mc.Inputs(func(in InputsBuilder) {
		for _, fs := range spec.FileSets {
			in.FileSet(fs.Name, fs.Dir, fs.Include, fs.Normalization)
		}
		in.Properties(spec.Properties...)
		for _, prop := range spec.Computed {
			in.Property(prop.Name, prop.Value)
		}
		in.Ignore(spec.Ignored...)
	})
	mc.Outputs(func(out OutputsBuilder) {
		for _, o := range spec.Outputs {
			out.File(o.Name, o.Pattern, o.Reason)
		}
	})
}
