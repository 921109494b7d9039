//go:build windows

package vss

import "testing"

// x/sys/windows exposes OsVersionInfoEx.ProductType but not the VER_NT_*
// values, so the workstation constant is defined locally; pin it to the SDK
// value.
func TestVerNTWorkstationMatchesSDK(t *testing.T) {
	if verNTWorkstation != 1 {
		t.Fatalf("verNTWorkstation = %d, want 1", verNTWorkstation)
	}
}

func TestDetectPlatformReportsGoReachableArchitecture(t *testing.T) {
	platform := DetectPlatform()

	if platform.Arch != ArchX86 && platform.Arch != ArchX64 {
		t.Fatalf("arch = %v, want x86 or x64 on a windows Go binary", platform.Arch)
	}
}
