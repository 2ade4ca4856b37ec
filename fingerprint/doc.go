// Package fingerprint defines the declarative cache-key model for a build
// goal and the deterministic environment hashing that feeds it.
//
// A Spec lists everything that participates in a goal's cache key (file sets,
// configuration properties, computed values) plus the artifacts the goal
// produces. It is plain data: host adapters translate it into their own
// cache-key builder calls, and the host owns all content hashing and storage.
package fingerprint
