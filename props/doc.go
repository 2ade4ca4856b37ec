// Package props reads Quarkus build configuration from the project's
// application.properties file.
//
// Lookups are deliberately soft: a missing, unreadable, or malformed file
// behaves like an empty one. A key being absent is an expected condition that
// callers turn into a "do not cache" decision, never into a build failure.
package props
