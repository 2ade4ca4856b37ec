package quarkus

import "strings"

// PackageType is the Quarkus packaging mode relevant to cache decisions. It
// is derived once per goal execution and immutable for its lifetime.
type PackageType int

const (
	PackageUnsupported PackageType = iota
	PackageNative
	PackageUberJar
)

func (t PackageType) String() string {
	switch t {
	case PackageNative:
		return "native"
	case PackageUberJar:
		return "uber-jar"
	default:
		return "unsupported"
	}
}

// ClassifyPackageType maps a raw quarkus.package.type value to a PackageType.
// Matching is case-sensitive and untrimmed; values come from a controlled
// configuration vocabulary.
//
// "native" must match exactly. Any value containing "uber-jar" counts as
// uberjar; the substring leniency is historical and kept as-is.
func ClassifyPackageType(raw string) PackageType {
	switch {
	case raw == packageNative:
		return PackageNative
	case strings.Contains(raw, packageUberJar):
		return PackageUberJar
	default:
		return PackageUnsupported
	}
}
