package vss

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const thawDefaultMessage = "The system was unable to thaw the Distributed Transaction Coordinator (DTC) or the Kernel Transaction Manager (KTM)."

func TestNewErrorDefaultMessageIsStable(t *testing.T) {
	for i := 0; i < 3; i++ {
		err := NewError(codeTransactionThawTimeout)
		if err.Message() != thawDefaultMessage {
			t.Fatalf("construction %d: message = %q, want %q", i, err.Message(), thawDefaultMessage)
		}
		if err.Code() != codeTransactionThawTimeout {
			t.Fatalf("construction %d: code = %#x", i, uint(err.Code()))
		}
	}
}

func TestNewErrorWithMessagePreservesMessage(t *testing.T) {
	err := NewErrorWithMessage(codeTransactionThawTimeout, "KTM did not resume in time")

	if err.Message() != "KTM did not resume in time" {
		t.Fatalf("message = %q", err.Message())
	}
	if !strings.Contains(err.Error(), "KTM did not resume in time") {
		t.Fatalf("Error() = %q does not contain the caller message", err.Error())
	}
}

func TestNewErrorWithCauseChainsCause(t *testing.T) {
	cause := errors.New("writer went away")
	err := NewErrorWithCause(codeTransactionThawTimeout, "thaw failed", cause)

	if errors.Unwrap(err) != cause {
		t.Fatalf("Unwrap() = %v, want the original cause", errors.Unwrap(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is does not reach the chained cause")
	}
	if err.Message() != "thaw failed" {
		t.Fatalf("message = %q", err.Message())
	}
}

func TestSentinelMatchingByCode(t *testing.T) {
	err := NewErrorWithMessage(codeTransactionThawTimeout, "custom text")

	if !errors.Is(err, ErrTransactionThawTimeout) {
		t.Fatal("thaw timeout error does not match its sentinel")
	}
	if errors.Is(err, ErrBadState) {
		t.Fatal("thaw timeout error matches an unrelated sentinel")
	}
}

func TestErrorJSONRoundTrip(t *testing.T) {
	cause := errors.New("underlying failure")
	original := NewErrorWithCause(codeTransactionThawTimeout, "thaw failed", cause)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored Error
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if restored.Code() != original.Code() {
		t.Fatalf("code = %#x, want %#x", uint(restored.Code()), uint(original.Code()))
	}
	if restored.Message() != "thaw failed" {
		t.Fatalf("message = %q", restored.Message())
	}
	if !errors.Is(&restored, ErrTransactionThawTimeout) {
		t.Fatal("restored error lost its code class association")
	}
	if errors.Unwrap(&restored) == nil {
		t.Fatal("cause text was not restored")
	}
}

func TestErrorJSONRestoresDefaultMessage(t *testing.T) {
	var restored Error
	if err := json.Unmarshal([]byte(`{"code":2147754793}`), &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	// 2147754793 == 0x80042329
	if restored.Code() != VSS_E_TRANSACTION_THAW_TIMEOUT {
		t.Fatalf("code = %#x", uint(restored.Code()))
	}
}

func TestNewErrorUnknownCodeFallback(t *testing.T) {
	err := NewError(HRESULT(0x12345678))

	if !strings.Contains(err.Message(), "Unexpected VSS error") {
		t.Fatalf("fallback message = %q", err.Message())
	}
}

func TestUnsupportedPlatformErrorText(t *testing.T) {
	err := &UnsupportedPlatformError{Reason: "IA64 architecture is not supported."}

	if err.Error() != "VSS error: IA64 architecture is not supported." {
		t.Fatalf("Error() = %q", err.Error())
	}
}
