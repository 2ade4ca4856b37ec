package quarkus

import "github.com/jonwraymond/goalcache/fingerprint"

// Decline reasons, stable for hosts that match on them.
const (
	ReasonUnsupportedPackageType  = "package type is not supported"
	ReasonNonContainerNativeBuild = "native build does not use a stable container build"
)

// Decision is the outcome of one cache-eligibility evaluation. Exactly one
// Decision is produced per goal execution; there is no partial or retried
// state.
type Decision struct {
	// Spec is non-nil exactly when the goal is cacheable.
	Spec *fingerprint.Spec

	// Reason explains a declined decision in human terms.
	Reason string
}

// Cacheable wraps a fingerprint spec into a positive decision.
func Cacheable(spec *fingerprint.Spec) Decision { return Decision{Spec: spec} }

// NotCacheable declines caching with a human-readable reason.
func NotCacheable(reason string) Decision { return Decision{Reason: reason} }

// IsCacheable reports whether the goal may be cached.
func (d Decision) IsCacheable() bool { return d.Spec != nil }
