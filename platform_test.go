package vss

import (
	"errors"
	"regexp"
	"testing"

	"pgregory.net/rapid"
)

func TestResolveForSupportedPairs(t *testing.T) {
	tests := []struct {
		name string
		os   OSVersion
		arch Architecture
		want string
	}{
		{"xp x86", WindowsXP, ArchX86, "AlphaVSS.WinXP.x86"},
		{"xp x64", WindowsXP, ArchX64, "AlphaVSS.WinXP.x64"},
		{"2003 x86", WindowsServer2003, ArchX86, "AlphaVSS.Win2003.x86"},
		{"2003 x64", WindowsServer2003, ArchX64, "AlphaVSS.Win2003.x64"},
		{"vista x86", WindowsVista, ArchX86, "AlphaVSS.Win2008.x86"},
		{"vista x64", WindowsVista, ArchX64, "AlphaVSS.Win2008.x64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := resolveFor(HostPlatform{OS: tt.os, Arch: tt.arch})
			if err != nil {
				t.Fatalf("resolveFor failed: %v", err)
			}
			if id.ShortName != tt.want {
				t.Fatalf("short name = %q, want %q", id.ShortName, tt.want)
			}
			if id.Version != assemblyVersion || id.PublicKeyToken != publicKeyToken {
				t.Fatalf("identity not fully populated: %+v", id)
			}
		})
	}
}

// Server 2008 resolves to the Win2003 tag. That looks inconsistent with the
// Vista mapping but deployed assemblies are named this way, so the behavior
// is pinned.
func TestResolveServer2008KeepsWin2003Tag(t *testing.T) {
	id, err := resolveFor(HostPlatform{OS: WindowsServer2008, Arch: ArchX64})
	if err != nil {
		t.Fatalf("resolveFor failed: %v", err)
	}
	if id.ShortName != "AlphaVSS.Win2003.x64" {
		t.Fatalf("short name = %q, want AlphaVSS.Win2003.x64", id.ShortName)
	}
}

func TestResolveForUnsupportedPlatforms(t *testing.T) {
	tests := []struct {
		name       string
		os         OSVersion
		arch       Architecture
		wantReason string
	}{
		{"windows 2000", Windows2000, ArchX86, "Windows 2000 is not supported"},
		{"ia64", WindowsServer2003, ArchIA64, "IA64 architecture is not supported."},
		{"unknown os", OSUnknown, ArchX64, "Failed to detect running operating system, or current operating system not supported."},
		{"unknown arch", WindowsXP, ArchUnknown, "Failed to detect architecture of running operating system."},
		{"unknown both", OSUnknown, ArchUnknown, "Failed to detect running operating system, or current operating system not supported."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := resolveFor(HostPlatform{OS: tt.os, Arch: tt.arch})
			if err == nil {
				t.Fatalf("expected error, got identity %q", id.ShortName)
			}

			var unsupported *UnsupportedPlatformError
			if !errors.As(err, &unsupported) {
				t.Fatalf("error type = %T, want *UnsupportedPlatformError", err)
			}
			if unsupported.Reason != tt.wantReason {
				t.Fatalf("reason = %q, want %q", unsupported.Reason, tt.wantReason)
			}
			if id != (AssemblyIdentity{}) {
				t.Fatalf("expected zero identity on failure, got %+v", id)
			}
		})
	}
}

func TestResolveForNamingIsDeterministic(t *testing.T) {
	supportedOS := []OSVersion{WindowsXP, WindowsServer2003, WindowsVista, WindowsServer2008}
	supportedArch := []Architecture{ArchX86, ArchX64}
	pattern := regexp.MustCompile(`^AlphaVSS\.(WinXP|Win2003|Win2008)(\.Debug)?\.(x86|x64)$`)

	rapid.Check(t, func(t *rapid.T) {
		platform := HostPlatform{
			OS:   rapid.SampledFrom(supportedOS).Draw(t, "os"),
			Arch: rapid.SampledFrom(supportedArch).Draw(t, "arch"),
		}

		first, err := resolveFor(platform)
		if err != nil {
			t.Fatalf("resolveFor(%v) failed: %v", platform, err)
		}
		second, err := resolveFor(platform)
		if err != nil {
			t.Fatalf("resolveFor(%v) failed on repeat: %v", platform, err)
		}

		if first != second {
			t.Fatalf("resolution not stable: %+v vs %+v", first, second)
		}
		if !pattern.MatchString(first.ShortName) {
			t.Fatalf("short name %q does not match the naming convention", first.ShortName)
		}
	})
}

func TestOSVersionString(t *testing.T) {
	if got := WindowsServer2003.String(); got != "Windows Server 2003" {
		t.Fatalf("String() = %q", got)
	}
	if got := OSVersion(99).String(); got != "unknown" {
		t.Fatalf("String() for out of range value = %q", got)
	}
}
