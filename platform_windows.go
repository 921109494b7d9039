//go:build windows

package vss

import (
	"runtime"

	"golang.org/x/sys/windows"
)

// verNTWorkstation is the OSVERSIONINFOEX wProductType value for client
// editions; x/sys/windows does not export the VER_NT_* constants.
const verNTWorkstation byte = 0x1

// DetectPlatform reads the host's OS version and processor architecture.
func DetectPlatform() HostPlatform {
	return HostPlatform{OS: detectOSVersion(), Arch: detectArchitecture()}
}

func detectOSVersion() OSVersion {
	info := windows.RtlGetVersion()

	switch {
	case info.MajorVersion == 5 && info.MinorVersion == 0:
		return Windows2000
	case info.MajorVersion == 5 && info.MinorVersion == 1:
		return WindowsXP
	case info.MajorVersion == 5 && info.MinorVersion == 2:
		return WindowsServer2003
	case info.MajorVersion >= 6:
		// Everything from the Vista/Win2008 generation onward reports
		// the same VSS api surface; only the workstation/server split
		// matters for the variant tag.
		if info.MajorVersion == 6 && info.MinorVersion == 0 && info.ProductType == verNTWorkstation {
			return WindowsVista
		}
		return WindowsServer2008
	default:
		return OSUnknown
	}
}

func detectArchitecture() Architecture {
	// IA64 is unreachable from a Go binary; the enum member exists only
	// for the mapping table.
	switch runtime.GOARCH {
	case "386":
		return ArchX86
	case "amd64":
		return ArchX64
	default:
		return ArchUnknown
	}
}
