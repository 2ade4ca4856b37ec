package quarkus

import (
	"reflect"
	"testing"

	"github.com/jonwraymond/goalcache/fingerprint"
)

var testPlatform = fingerprint.FixedPlatform{OS: "linux", Release: "6.1.0", CPU: "amd64"}

func computedByName(spec *fingerprint.Spec) map[string]string {
	m := make(map[string]string, len(spec.Computed))
	for _, p := range spec.Computed {
		m[p.Name] = p.Value
	}
	return m
}

func TestBuildSpec_SharedInputs(t *testing.T) {
	env := fingerprint.Map{"quarkus.profile": "prod"}

	native := buildSpec(PackageNative, env, testPlatform)
	uber := buildSpec(PackageUberJar, env, testPlatform)

	// Both modes declare identical inputs; only outputs differ.
	if !reflect.DeepEqual(native.FileSets, uber.FileSets) {
		t.Error("native and uberjar should declare the same file sets")
	}
	if !reflect.DeepEqual(native.Properties, uber.Properties) {
		t.Error("native and uberjar should declare the same properties")
	}
	if !reflect.DeepEqual(native.Computed, uber.Computed) {
		t.Error("native and uberjar should declare the same computed properties")
	}
	if !reflect.DeepEqual(native.Ignored, uber.Ignored) {
		t.Error("native and uberjar should declare the same ignore list")
	}
}

func TestBuildSpec_FileSets(t *testing.T) {
	spec := buildSpec(PackageUberJar, fingerprint.Map{}, testPlatform)

	if len(spec.FileSets) != 2 {
		t.Fatalf("expected 2 file sets, got %d", len(spec.FileSets))
	}

	cfg := spec.FileSets[0]
	if cfg.Name != "quarkusProperties" {
		t.Errorf("unexpected file set name %q", cfg.Name)
	}
	if cfg.Dir != "src/main/resources" || cfg.Include != "application.properties" {
		t.Errorf("unexpected configuration file set: %+v", cfg)
	}
	if cfg.Normalization != fingerprint.NormalizationRelativePath {
		t.Errorf("configuration file set should use relative-path normalization, got %v", cfg.Normalization)
	}

	gen := spec.FileSets[1]
	if gen.Name != "generatedSourcesDirectory" {
		t.Errorf("unexpected file set name %q", gen.Name)
	}
	if gen.Include != "" || gen.Dir != "" {
		t.Errorf("generated sources should be unfiltered: %+v", gen)
	}
}

func TestBuildSpec_Properties(t *testing.T) {
	spec := buildSpec(PackageNative, fingerprint.Map{}, testPlatform)

	want := []string{
		"appArtifact", "closeBootstrappedApp", "finalName", "ignoredEntries",
		"manifestEntries", "manifestSections", "skip", "skipOriginalJarRename",
		"systemProperties", "properties",
	}
	if !reflect.DeepEqual(spec.Properties, want) {
		t.Errorf("unexpected property list:\n  want %v\n  got  %v", want, spec.Properties)
	}
}

func TestBuildSpec_ComputedProperties(t *testing.T) {
	env := fingerprint.Map{"quarkus.profile": "prod"}
	spec := buildSpec(PackageNative, env, testPlatform)

	computed := computedByName(spec)
	if computed["quarkusEnv"] != fingerprint.HashEnv(env, EnvPrefix) {
		t.Errorf("quarkusEnv should be the environment fingerprint, got %q", computed["quarkusEnv"])
	}
	if computed["osName"] != "linux" || computed["osVersion"] != "6.1.0" || computed["osArch"] != "amd64" {
		t.Errorf("unexpected OS identity: %v", computed)
	}
}

func TestBuildSpec_IgnoreList(t *testing.T) {
	spec := buildSpec(PackageNative, fingerprint.Map{}, testPlatform)

	want := []string{"project", "buildDir", "mojoExecution", "session", "repoSession", "repos", "pluginRepos"}
	if !reflect.DeepEqual(spec.Ignored, want) {
		t.Errorf("unexpected ignore list:\n  want %v\n  got  %v", want, spec.Ignored)
	}
}

func TestBuildSpec_NativeOutput(t *testing.T) {
	spec := buildSpec(PackageNative, fingerprint.Map{}, testPlatform)

	if len(spec.Outputs) != 1 {
		t.Fatalf("expected exactly 1 output, got %d", len(spec.Outputs))
	}
	out := spec.Outputs[0]
	if out.Name != "exe" {
		t.Errorf("unexpected output name %q", out.Name)
	}
	if out.Pattern != "${project.build.directory}/${project.name}-${project.version}-runner" {
		t.Errorf("unexpected output pattern %q", out.Pattern)
	}
	if out.Reason == "" {
		t.Error("output must carry a cacheability justification")
	}
}

func TestBuildSpec_UberJarOutput(t *testing.T) {
	spec := buildSpec(PackageUberJar, fingerprint.Map{}, testPlatform)

	if len(spec.Outputs) != 1 {
		t.Fatalf("expected exactly 1 output, got %d", len(spec.Outputs))
	}
	out := spec.Outputs[0]
	if out.Name != "jar" {
		t.Errorf("unexpected output name %q", out.Name)
	}
	if out.Pattern != "${project.build.directory}/${project.name}-${project.version}-*.jar" {
		t.Errorf("unexpected output pattern %q", out.Pattern)
	}
	if out.Reason != cacheableReason {
		t.Errorf("unexpected justification %q", out.Reason)
	}
}
