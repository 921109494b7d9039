//go:build vsslegacy

package vss

import "testing"

func TestThawTimeoutCodeSubstitutedOnLegacyTargets(t *testing.T) {
	if codeTransactionThawTimeout != E_UNEXPECTED {
		t.Fatalf("thaw timeout code = %#x, want E_UNEXPECTED (%#x)",
			uint(codeTransactionThawTimeout), uint(E_UNEXPECTED))
	}
	if codeTransactionThawTimeout == 0 {
		t.Fatal("thaw timeout code must never be zero")
	}
}
