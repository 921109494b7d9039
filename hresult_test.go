package vss

import "testing"

func TestHRESULTString(t *testing.T) {
	tests := []struct {
		code HRESULT
		want string
	}{
		{S_OK, "S_OK"},
		{VSS_E_TRANSACTION_THAW_TIMEOUT, "VSS_E_TRANSACTION_THAW_TIMEOUT"},
		{E_UNEXPECTED, "E_UNEXPECTED"},
		{HRESULT(0xDEADBEEF), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Fatalf("String(%#x) = %q, want %q", uint(tt.code), got, tt.want)
		}
	}
}
