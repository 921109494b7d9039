//go:build !vssdebug

package vss

// debugBuild selects the ".Debug" qualifier in resolved assembly names. It
// is a build-time property of the resolver, not of the host.
const debugBuild = false
