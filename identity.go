package vss

import (
	"fmt"
	"strings"
)

const (
	assemblyFamily  = "AlphaVSS"
	assemblyVersion = "0.8.0.0"

	// publicKeyToken is the publisher identity the implementation
	// assemblies are signed with. Deployed modules are located by this
	// token, so it never changes.
	publicKeyToken = "959d3993561034e3"
)

// AssemblyIdentity names the platform-specific implementation assembly for
// one host variant. A resolved identity is always fully populated.
type AssemblyIdentity struct {
	ShortName      string
	Version        string
	PublicKeyToken string
	Debug          bool
}

func newAssemblyIdentity(winTag, archTag string, debug bool) AssemblyIdentity {
	parts := []string{assemblyFamily, winTag}
	if debug {
		parts = append(parts, "Debug")
	}
	parts = append(parts, archTag)

	return AssemblyIdentity{
		ShortName:      strings.Join(parts, "."),
		Version:        assemblyVersion,
		PublicKeyToken: publicKeyToken,
		Debug:          debug,
	}
}

// FullName returns the strong-name form used to locate deployed assemblies,
// e.g. "AlphaVSS.Win2003.x64, Version=0.8.0.0, PublicKeyToken=959d3993561034e3".
func (id AssemblyIdentity) FullName() string {
	return fmt.Sprintf("%s, Version=%s, PublicKeyToken=%s", id.ShortName, id.Version, id.PublicKeyToken)
}

// String returns the full strong name.
func (id AssemblyIdentity) String() string {
	return id.FullName()
}
