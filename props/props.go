package props

import (
	"errors"
	"fmt"

	"github.com/magiconair/properties"
)

// DefaultPath is the project-relative location of the Quarkus configuration
// file, per the Quarkus convention.
const DefaultPath = "src/main/resources/application.properties"

// ErrKeyMissing is the sentinel wrapped by every MissingKeyError.
var ErrKeyMissing = errors.New("props: key missing")

// MissingKeyError reports a required configuration key that could not be
// resolved, either because the key is not set or the file is unreadable.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("props: configuration property [%s] is not set", e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrKeyMissing }

// Source is a read-only view of the project configuration.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Get reports absence via ok=false; it never fails the caller.
type Source interface {
	// Get returns the value for key. ok is false when the key is absent.
	// An empty value with ok=true is a distinct state from absence.
	Get(key string) (value string, ok bool)
}

// Require resolves key through src, converting absence into a *MissingKeyError
// carrying the key name.
func Require(src Source, key string) (string, error) {
	v, ok := src.Get(key)
	if !ok {
		return "", &MissingKeyError{Key: key}
	}
	return v, nil
}

// File is a Source backed by a key=value properties file on disk. The file is
// parsed on every Get; it is small and read at most a few times per goal
// execution, so no cross-call cache is kept.
type File struct {
	// Path of the properties file. Empty means DefaultPath.
	Path string
}

// Get implements Source. Any I/O or parse failure is treated as absence.
func (f *File) Get(key string) (string, bool) {
	path := f.Path
	if path == "" {
		path = DefaultPath
	}
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return "", false
	}
	// Values are cache-key material; ${...} references stay literal.
	p.DisableExpansion = true
	return p.Get(key)
}

// Map is an in-memory Source, primarily for tests.
type Map map[string]string

func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

var (
	_ Source = (*File)(nil)
	_ Source = Map(nil)
)
