// Package vss binds the Windows Volume Shadow Copy Service behind a stable
// Provider interface. It resolves the platform-specific implementation
// assembly for the running host, loads it through a factory registry, and
// translates native VSS status codes into typed Go errors.
package vss
