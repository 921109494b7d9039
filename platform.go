package vss

// OSVersion identifies the Windows release family reported by the host.
type OSVersion int

// OSVersion constants.
const (
	OSUnknown OSVersion = iota
	Windows2000
	WindowsXP
	WindowsServer2003
	WindowsVista
	WindowsServer2008
)

// String returns the release family name for diagnostics.
func (v OSVersion) String() string {
	switch v {
	case Windows2000:
		return "Windows 2000"
	case WindowsXP:
		return "Windows XP"
	case WindowsServer2003:
		return "Windows Server 2003"
	case WindowsVista:
		return "Windows Vista"
	case WindowsServer2008:
		return "Windows Server 2008"
	default:
		return "unknown"
	}
}

// Architecture identifies the host processor architecture.
type Architecture int

// Architecture constants.
const (
	ArchUnknown Architecture = iota
	ArchX86
	ArchIA64
	ArchX64
)

// String returns the architecture name for diagnostics.
func (a Architecture) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchIA64:
		return "IA64"
	case ArchX64:
		return "x64"
	default:
		return "unknown"
	}
}

// HostPlatform is the pair of host facts variant resolution is a pure
// function of. It is derived fresh on every resolution call, never cached.
type HostPlatform struct {
	OS   OSVersion
	Arch Architecture
}

// Resolve inspects the running host and returns the identity of the
// platform-specific implementation assembly appropriate for it. It either
// returns a fully formed identity or fails with *UnsupportedPlatformError.
func Resolve() (AssemblyIdentity, error) {
	return resolveFor(DetectPlatform())
}

func resolveFor(p HostPlatform) (AssemblyIdentity, error) {
	winTag, err := windowsTag(p.OS)
	if err != nil {
		return AssemblyIdentity{}, err
	}

	archTag, err := architectureTag(p.Arch)
	if err != nil {
		return AssemblyIdentity{}, err
	}

	return newAssemblyIdentity(winTag, archTag, debugBuild), nil
}

func windowsTag(v OSVersion) (string, error) {
	switch v {
	case Windows2000:
		return "", &UnsupportedPlatformError{Reason: "Windows 2000 is not supported"}
	case WindowsXP:
		return "WinXP", nil
	case WindowsServer2003:
		return "Win2003", nil
	case WindowsVista:
		// Vista shares the Win2008-generation VSS api surface.
		return "Win2008", nil
	case WindowsServer2008:
		// Kept as shipped; deployed assemblies carry this tag.
		return "Win2003", nil
	default:
		return "", &UnsupportedPlatformError{Reason: "Failed to detect running operating system, or current operating system not supported."}
	}
}

func architectureTag(a Architecture) (string, error) {
	switch a {
	case ArchX86:
		return "x86", nil
	case ArchX64:
		return "x64", nil
	case ArchIA64:
		return "", &UnsupportedPlatformError{Reason: "IA64 architecture is not supported."}
	default:
		return "", &UnsupportedPlatformError{Reason: "Failed to detect architecture of running operating system."}
	}
}
