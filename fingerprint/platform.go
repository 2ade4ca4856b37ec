package fingerprint

import "runtime"

// Platform identifies the host operating system for cache-key purposes.
// Packaged artifacts are not portable across any of these axes.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Determinism: values must be stable for the lifetime of the process.
type Platform interface {
	Name() string
	Version() string
	Arch() string
}

// Host returns the Platform of the running process.
func Host() Platform { return hostPlatform{} }

type hostPlatform struct{}

func (hostPlatform) Name() string    { return runtime.GOOS }
func (hostPlatform) Version() string { return osVersion() }
func (hostPlatform) Arch() string    { return runtime.GOARCH }

// FixedPlatform is a Platform with constant values, primarily for tests.
type FixedPlatform struct {
	OS      string
	Release string
	CPU     string
}

func (p FixedPlatform) Name() string    { return p.OS }
func (p FixedPlatform) Version() string { return p.Release }
func (p FixedPlatform) Arch() string    { return p.CPU }

var (
	_ Platform = hostPlatform{}
	_ Platform = FixedPlatform{}
)
