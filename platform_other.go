//go:build !windows

package vss

// DetectPlatform reports an unknown platform off Windows, so resolution
// fails with the documented unsupported-platform error.
func DetectPlatform() HostPlatform {
	return HostPlatform{OS: OSUnknown, Arch: ArchUnknown}
}
