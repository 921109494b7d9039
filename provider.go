package vss

import "time"

// ProviderFactory constructs a Provider with no arguments. Every
// implementation assembly exposes exactly one.
type ProviderFactory func() (Provider, error)

// Provider is the capability surface a loaded implementation assembly must
// satisfy. The caller owns the returned value; this package keeps no
// reference after loading.
type Provider interface {
	// CheckPrivileges returns nil when the calling process is allowed to
	// use the shadow copy service.
	CheckPrivileges() error

	// CreateSnapshotSet takes point-in-time snapshots of the given
	// volumes. It fails if the snapshots are not ready within timeout.
	CreateSnapshotSet(volumes []string, timeout time.Duration, opt Option) (SnapshotSet, error)
}

// SnapshotSet is a group of snapshots taken atomically.
type SnapshotSet interface {
	// ID returns the snapshot set identifier.
	ID() string

	// Snapshots returns the member snapshots, one per volume.
	Snapshots() []Snapshot

	// Delete completes the backup and releases every member snapshot.
	Delete() error
}

// Snapshot is a single point-in-time copy of one volume.
type Snapshot interface {
	// ID returns the snapshot identifier.
	ID() string

	// VolumeName returns the name of the snapshotted volume.
	VolumeName() string

	// DeviceObject returns the root path for reading the snapshot's
	// files and folders.
	DeviceObject() string

	// Expose mounts the snapshot locally at the given volume path.
	Expose(volume string) error

	// Delete releases this snapshot alone, leaving its siblings in the
	// set intact.
	Delete() error
}
