package vss

import (
	"errors"
	"runtime"
	"testing"
	"time"
)

type fakeProvider struct {
	name string
}

func (f *fakeProvider) CheckPrivileges() error {
	return nil
}

func (f *fakeProvider) CreateSnapshotSet(volumes []string, timeout time.Duration, opt Option) (SnapshotSet, error) {
	return nil, errors.ErrUnsupported
}

type fakeSnapshot struct{}

func (f *fakeSnapshot) ID() string           { return "{00000000-0000-0000-0000-000000000000}" }
func (f *fakeSnapshot) VolumeName() string   { return `C:\` }
func (f *fakeSnapshot) DeviceObject() string { return `\\?\GLOBALROOT\Device\HarddiskVolumeShadowCopy1` }
func (f *fakeSnapshot) Expose(string) error  { return errors.ErrUnsupported }
func (f *fakeSnapshot) Delete() error        { return errors.ErrUnsupported }

// Snapshot includes per-snapshot deletion alongside read access.
var _ Snapshot = (*fakeSnapshot)(nil)

func TestRegistryLoadReturnsRegisteredProvider(t *testing.T) {
	reg := NewRegistry()
	id := newAssemblyIdentity("Win2003", "x64", false)

	reg.Register(id.ShortName, func() (Provider, error) {
		return &fakeProvider{name: id.ShortName}, nil
	})

	provider, err := reg.load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	fake, ok := provider.(*fakeProvider)
	if !ok {
		t.Fatalf("provider type = %T", provider)
	}
	if fake.name != id.ShortName {
		t.Fatalf("provider name = %q", fake.name)
	}
}

func TestRegistryLoadUnknownName(t *testing.T) {
	reg := NewRegistry()
	id := newAssemblyIdentity("WinXP", "x86", false)

	_, err := reg.load(id)
	if !errors.Is(err, ErrProviderNotRegistered) {
		t.Fatalf("error = %v, want ErrProviderNotRegistered", err)
	}
}

func TestRegistryFactoryErrorPropagatesUnwrapped(t *testing.T) {
	reg := NewRegistry()
	id := newAssemblyIdentity("Win2008", "x64", false)
	factoryErr := errors.New("constructor blew up")

	reg.Register(id.ShortName, func() (Provider, error) {
		return nil, factoryErr
	})

	_, err := reg.load(id)
	if err != factoryErr {
		t.Fatalf("error = %v, want the factory's own error", err)
	}
}

func TestIsolatedRegistryDoesNotSeeDefaultEntries(t *testing.T) {
	id := newAssemblyIdentity("Win2003", "x86", false)

	DefaultRegistry.Register(id.ShortName, func() (Provider, error) {
		return &fakeProvider{}, nil
	})

	isolated := NewRegistry()
	if _, err := isolated.load(id); !errors.Is(err, ErrProviderNotRegistered) {
		t.Fatalf("isolated registry resolved a default entry: %v", err)
	}
}

func TestLoadImplementationPropagatesUnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("resolution succeeds on windows hosts")
	}

	_, err := LoadImplementation()

	var unsupported *UnsupportedPlatformError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *UnsupportedPlatformError", err)
	}
}
