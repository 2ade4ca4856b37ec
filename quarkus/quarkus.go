package quarkus

// Configuration keys inspected for cache decisions.
const (
	KeyPackageType          = "quarkus.package.type"
	KeyNativeContainerBuild = "quarkus.native.container-build"
	KeyNativeBuilderImage   = "quarkus.native.builder-image"
)

// EnvPrefix selects the environment variables hashed into the cache key.
const EnvPrefix = "quarkus."

const (
	packageNative  = "native"
	packageUberJar = "uber-jar"
)
