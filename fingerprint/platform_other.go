//go:build !unix

package fingerprint

func osVersion() string { return "unknown" }
