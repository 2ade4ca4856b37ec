package fingerprint

import (
	"crypto/sha256"
	"encoding/base64"
	"os"
	"sort"
	"strings"
)

// Env is a read-only view of the process environment.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Ownership: callers must not mutate the returned map.
type Env interface {
	Environ() map[string]string
}

// OSEnv returns an Env backed by the real process environment.
func OSEnv() Env { return osEnv{} }

type osEnv struct{}

func (osEnv) Environ() map[string]string {
	pairs := os.Environ()
	m := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// Map is a fixed in-memory Env, primarily for tests.
type Map map[string]string

func (m Map) Environ() map[string]string { return m }

// HashEnv digests every environment entry whose key starts with prefix into a
// short stable fingerprint.
//
// Entries are visited in sorted key order, so the result does not depend on
// enumeration order, which differs across platforms and processes. Each entry
// contributes its key immediately followed by its value. The digest is
// SHA-256, encoded with standard base64. No matching entries yields the
// digest of empty input, a defined stable value rather than an error.
func HashEnv(env Env, prefix string) string {
	entries := env.Environ()
	keys := make([]string, 0, len(entries))
	for k := range entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte(entries[k]))
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

var (
	_ Env = osEnv{}
	_ Env = Map(nil)
)
