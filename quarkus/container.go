package quarkus

import (
	"strings"

	"github.com/jonwraymond/goalcache/props"
)

// ReproducibleNativeBuild reports whether a native build is configured to run
// inside a pinned builder image. Only container builds are bit-for-bit
// reproducible; a host-machine native build depends on uncontrolled local
// toolchain state and must never be cached.
//
// Requires quarkus.native.container-build to parse true (case-insensitive
// "true"; anything else is false) and quarkus.native.builder-image to be
// present and non-empty. Missing keys fail closed.
func ReproducibleNativeBuild(src props.Source) bool {
	flag, err := props.Require(src, KeyNativeContainerBuild)
	if err != nil {
		return false
	}
	image, err := props.Require(src, KeyNativeBuilderImage)
	if err != nil {
		return false
	}
	return strings.EqualFold(flag, "true") && image != ""
}
