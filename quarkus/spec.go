package quarkus

import "github.com/jonwraymond/goalcache/fingerprint"

// goalProperties lists the build goal configuration fields whose values
// affect the packaged artifact.
var goalProperties = []string{
	"appArtifact",
	"closeBootstrappedApp",
	"finalName",
	"ignoredEntries",
	"manifestEntries",
	"manifestSections",
	"skip",
	"skipOriginalJarRename",
	"systemProperties",
	"properties",
}

// ignoredFields lists goal fields the host would otherwise hash but whose
// values are volatile object identities that never affect output.
var ignoredFields = []string{
	"project",
	"buildDir",
	"mojoExecution",
	"session",
	"repoSession",
	"repos",
	"pluginRepos",
}

const cacheableReason = "this plugin has CPU-bound goals with well-defined inputs and outputs"

// buildSpec assembles the declared cache-key surface for a build goal.
//
// Native and uberjar share the same inputs: artifact identity depends on
// source, configuration, and environment regardless of the target format.
// The jar is OS dependent too.
func buildSpec(pt PackageType, env fingerprint.Env, platform fingerprint.Platform) *fingerprint.Spec {
	spec := &fingerprint.Spec{
		FileSets: []fingerprint.FileSet{
			{
				Name:          "quarkusProperties",
				Dir:           "src/main/resources",
				Include:       "application.properties",
				Normalization: fingerprint.NormalizationRelativePath,
			},
			// Full recursive contents, no filtering.
			{Name: "generatedSourcesDirectory"},
		},
		Properties: goalProperties,
		Computed: []fingerprint.Property{
			{Name: "quarkusEnv", Value: fingerprint.HashEnv(env, EnvPrefix)},
			{Name: "osName", Value: platform.Name()},
			{Name: "osVersion", Value: platform.Version()},
			{Name: "osArch", Value: platform.Arch()},
		},
		Ignored: ignoredFields,
	}

	switch pt {
	case PackageNative:
		spec.Outputs = []fingerprint.Output{{
			Name:    "exe",
			Pattern: "${project.build.directory}/${project.name}-${project.version}-runner",
			Reason:  cacheableReason,
		}}
	case PackageUberJar:
		spec.Outputs = []fingerprint.Output{{
			Name:    "jar",
			Pattern: "${project.build.directory}/${project.name}-${project.version}-*.jar",
			Reason:  cacheableReason,
		}}
	}

	return spec
}
