// Package extension adapts cache decisions to a host build-cache API.
//
// The host invokes a registered provider once per goal execution with a
// metadata context. For quarkus-maven-plugin build executions the provider
// evaluates cache eligibility and replays the resulting fingerprint spec
// through the host's input and output builders; for everything else it does
// nothing. Declining caching means calling neither builder.
package extension
