package main

import (
	"errors"
	"runtime"
	"testing"

	vss "github.com/alphavss/go-vss"
)

func TestRootCommandReportsErrorsItself(t *testing.T) {
	root := newRootCommand()

	if !root.SilenceErrors {
		t.Fatal("cobra would print failures a second time on stderr")
	}
	if !root.SilenceUsage {
		t.Fatal("usage text should not be shown on runtime failures")
	}
}

func TestRunFailsWithUnsupportedPlatformOffWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("resolution succeeds on windows hosts")
	}

	root := newRootCommand()
	err := run(root, nil)

	var unsupported *vss.UnsupportedPlatformError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *vss.UnsupportedPlatformError", err)
	}
}
