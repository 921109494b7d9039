package vss

import "testing"

func TestAssemblyIdentityFullName(t *testing.T) {
	id := newAssemblyIdentity("Win2003", "x64", false)

	want := "AlphaVSS.Win2003.x64, Version=0.8.0.0, PublicKeyToken=959d3993561034e3"
	if got := id.FullName(); got != want {
		t.Fatalf("FullName() = %q, want %q", got, want)
	}
	if got := id.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAssemblyIdentityDebugQualifier(t *testing.T) {
	id := newAssemblyIdentity("Win2003", "x64", true)

	if id.ShortName != "AlphaVSS.Win2003.Debug.x64" {
		t.Fatalf("debug short name = %q", id.ShortName)
	}
	if !id.Debug {
		t.Fatal("Debug flag not set")
	}
}
