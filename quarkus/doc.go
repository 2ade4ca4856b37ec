// Package quarkus decides whether the quarkus-maven-plugin build goal is safe
// to cache and, when it is, assembles the fingerprint spec that defines its
// cache key.
//
// The goal's output depends on state the host build tool cannot see: the
// packaging mode, quarkus-prefixed environment variables, and the operating
// system. Without modeling those explicitly, caching would risk serving a
// stale or wrong-platform artifact. Quarkus properties are assumed to live in
// the project's application.properties; there are too many configuration
// options and sources to support anything else.
package quarkus
