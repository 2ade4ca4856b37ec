package quarkus

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonwraymond/goalcache/fingerprint"
	"github.com/jonwraymond/goalcache/observe"
	"github.com/jonwraymond/goalcache/props"
)

// Decider evaluates cache eligibility for quarkus-maven-plugin build goals.
//
// Contract:
// - Concurrency: safe for concurrent use; each Decide call is self-contained
//   and holds no state across invocations.
// - Errors: conditions rooted in project configuration never escape as
//   errors; they become NotCacheable decisions.
type Decider struct {
	config   props.Source
	env      fingerprint.Env
	platform fingerprint.Platform
	logger   observe.Logger
	tracer   observe.Tracer
	metrics  observe.Metrics
}

// Options configures a Decider. Zero-value fields fall back to production
// defaults: the on-disk application.properties, the process environment, the
// host platform, and no-op telemetry.
type Options struct {
	Config   props.Source
	Env      fingerprint.Env
	Platform fingerprint.Platform
	Logger   observe.Logger
	Tracer   observe.Tracer
	Metrics  observe.Metrics
}

// NewDecider creates a Decider from opts.
func NewDecider(opts Options) *Decider {
	d := &Decider{
		config:   opts.Config,
		env:      opts.Env,
		platform: opts.Platform,
		logger:   opts.Logger,
		tracer:   opts.Tracer,
		metrics:  opts.Metrics,
	}
	if d.config == nil {
		d.config = &props.File{}
	}
	if d.env == nil {
		d.env = fingerprint.OSEnv()
	}
	if d.platform == nil {
		d.platform = fingerprint.Host()
	}
	if d.logger == nil {
		d.logger = observe.NewNoopLogger()
	}
	if d.tracer == nil {
		d.tracer = observe.NewNoopTracer()
	}
	if d.metrics == nil {
		d.metrics = observe.NewNoopMetrics()
	}
	return d
}

// Decide produces exactly one Decision for the goal execution identified by
// meta. The evaluation is a single pass with no retries: classify the
// packaging mode, validate the container build when native, then build the
// fingerprint spec or decline.
func (d *Decider) Decide(ctx context.Context, meta observe.GoalMeta) Decision {
	start := time.Now()
	ctx, span := d.tracer.StartDecision(ctx, meta)

	log := d.logger.WithGoal(meta)
	invocation := uuid.NewString()

	decision := d.decide(ctx, log, invocation)

	outcome := observe.OutcomeCacheable
	if !decision.IsCacheable() {
		outcome = observe.OutcomeDeclined
	}
	d.metrics.RecordDecision(ctx, meta, outcome, time.Since(start))
	d.tracer.EndDecision(span, outcome)
	return decision
}

func (d *Decider) decide(ctx context.Context, log observe.Logger, invocation string) Decision {
	raw, err := props.Require(d.config, KeyPackageType)
	if err != nil {
		var missing *props.MissingKeyError
		if errors.As(err, &missing) {
			log.Warn(ctx, "define quarkus configuration property to allow goal caching",
				observe.Field{Key: "invocation", Value: invocation},
				observe.Field{Key: "property", Value: missing.Key},
			)
		}
		log.Info(ctx, "caching disabled for quarkus build",
			observe.Field{Key: "invocation", Value: invocation},
			observe.Field{Key: "reason", Value: err.Error()},
		)
		return NotCacheable(err.Error())
	}

	switch pt := ClassifyPackageType(raw); pt {
	case PackageUberJar:
		log.Info(ctx, "configuring caching for quarkus uberjar build",
			observe.Field{Key: "invocation", Value: invocation},
		)
		return Cacheable(buildSpec(pt, d.env, d.platform))

	case PackageNative:
		if !ReproducibleNativeBuild(d.config) {
			log.Warn(ctx, "caching disabled for quarkus build, please use a stable container build",
				observe.Field{Key: "invocation", Value: invocation},
			)
			return NotCacheable(ReasonNonContainerNativeBuild)
		}
		log.Info(ctx, "configuring caching for quarkus native build",
			observe.Field{Key: "invocation", Value: invocation},
		)
		return Cacheable(buildSpec(pt, d.env, d.platform))

	default:
		log.Info(ctx, "caching disabled for quarkus build, package type is not supported",
			observe.Field{Key: "invocation", Value: invocation},
			observe.Field{Key: "package.type", Value: raw},
		)
		return NotCacheable(ReasonUnsupportedPackageType)
	}
}
