//go:build !vsslegacy

package vss

import "testing"

func TestThawTimeoutCodeIsNative(t *testing.T) {
	if codeTransactionThawTimeout != VSS_E_TRANSACTION_THAW_TIMEOUT {
		t.Fatalf("thaw timeout code = %#x, want %#x",
			uint(codeTransactionThawTimeout), uint(VSS_E_TRANSACTION_THAW_TIMEOUT))
	}
}
