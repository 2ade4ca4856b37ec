package fingerprint

// Normalization selects how a file set's paths are canonicalized before the
// host hashes its contents.
type Normalization int

const (
	// NormalizationDefault leaves path handling to the host.
	NormalizationDefault Normalization = iota

	// NormalizationRelativePath hashes paths relative to the file set root,
	// so builds checked out at different absolute locations share cache
	// entries.
	NormalizationRelativePath
)

func (n Normalization) String() string {
	switch n {
	case NormalizationRelativePath:
		return "relative-path"
	default:
		return "default"
	}
}

// FileSet declares one file-level input of a goal.
type FileSet struct {
	Name          string
	Dir           string // base directory; empty means the goal's own default
	Include       string // inclusion pattern; empty includes everything under Dir
	Normalization Normalization
}

// Property is a computed scalar input whose value is fixed at decision time.
type Property struct {
	Name  string
	Value string
}

// Output declares one artifact a goal produces.
type Output struct {
	Name    string
	Pattern string // path or glob; may carry host placeholders like ${project.version}
	Reason  string // why caching the artifact is sound
}

// Spec is the full declared cache-key surface of one goal execution: what
// participates in the key, what is deliberately ignored, and what the goal
// produces. A Spec is built fresh per execution, handed to the host adapter,
// and then discarded.
type Spec struct {
	// FileSets are hashed by the host, in declaration order.
	FileSets []FileSet

	// Properties names goal configuration fields whose current values the
	// host resolves and hashes.
	Properties []string

	// Computed carries values resolved here rather than by the host, such as
	// the environment fingerprint and the OS identity.
	Computed []Property

	// Ignored names goal fields the host would otherwise hash but whose
	// values vary per invocation without affecting output. Declaring them
	// avoids cache misses caused by volatile object identities.
	Ignored []string

	Outputs []Output
}
