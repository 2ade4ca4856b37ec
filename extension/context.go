package extension

import "github.com/jonwraymond/goalcache/fingerprint"

// Execution identifies one plugin goal execution inside the host build.
type Execution struct {
	PluginID    string
	ExecutionID string
	Project     string
}

// InputsBuilder receives the declared inputs of a goal, in declaration order.
// Hosts translate these calls into their own cache-key machinery; all content
// hashing happens on the host side.
type InputsBuilder interface {
	// FileSet declares a file-level input. dir and include may be empty, in
	// which case the goal's own defaults apply unfiltered.
	FileSet(name, dir, include string, norm fingerprint.Normalization)

	// Properties declares goal configuration fields the host resolves and
	// hashes itself.
	Properties(names ...string)

	// Property declares a precomputed scalar input.
	Property(name, value string)

	// Ignore excludes goal fields from the cache key.
	Ignore(names ...string)
}

// OutputsBuilder receives the declared outputs of a goal.
type OutputsBuilder interface {
	// File declares an output artifact with a cacheability justification.
	File(name, pattern, reason string)
}

// MetadataContext is the per-execution handle supplied by the host.
//
// Contract:
// - Inputs and Outputs are each called at most once per execution; calling
//   neither declines caching for the goal.
type MetadataContext interface {
	Execution() Execution
	Inputs(apply func(InputsBuilder))
	Outputs(apply func(OutputsBuilder))
}
