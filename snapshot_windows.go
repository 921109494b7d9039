//go:build windows

package vss

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// systemProvider is the COM-backed implementation every supported host
// variant resolves to. It satisfies the Provider interface.
type systemProvider struct{}

// newSystemProvider is the parameterless factory registered for each
// supported assembly name.
func newSystemProvider() (Provider, error) {
	return &systemProvider{}, nil
}

// CheckPrivileges returns nil if the user is allowed to use VSS.
func (p *systemProvider) CheckPrivileges() error {
	oleIUnknown, err := initializeVssCOMInterface()
	if oleIUnknown != nil {
		oleIUnknown.Release()
	}

	return err
}

// CreateSnapshotSet takes snapshots of the given volumes. If creating the
// snapshots doesn't finish within the timeout an error is returned.
//
// Call sequence per the VSS documentation:
//
//	CreateVssBackupComponents();
//	InitializeForBackup();
//	SetBackupState();
//	GatherWriterMetadata();
//	StartSnapshotSet();
//	AddToSnapshotSet();
//	PrepareForBackup();
//	DoSnapshotSet();
//	GetSnapshotProperties();
//	<Backup all files>
//	VssFreeSnapshotProperties();
//	BackupComplete();
func (p *systemProvider) CreateSnapshotSet(volumes []string, timeout time.Duration, opt Option) (SnapshotSet, error) {
	is64Bit, err := isRunningOn64BitWindows()
	if err != nil {
		return nil, NewErrorWithCause(VSS_E_UNEXPECTED, "Failed to detect windows architecture", err)
	}

	if (is64Bit && runtime.GOARCH != "amd64") || (!is64Bit && runtime.GOARCH != "386") {
		return nil, NewErrorWithMessage(VSS_E_UNEXPECTED, fmt.Sprintf("executables compiled for %s can't use "+
			"VSS on other architectures. Please use an executable compiled for your platform.",
			runtime.GOARCH))
	}

	timeoutInMillis := timeoutMillis(timeout)

	oleIUnknown, err := initializeVssCOMInterface()
	if oleIUnknown != nil {
		defer oleIUnknown.Release()
	}
	if err != nil {
		return nil, err
	}

	comInterface, err := queryInterface(oleIUnknown, UUID_IVSS)
	if err != nil {
		return nil, err
	}

	components := (*IVssBackupComponents)(unsafe.Pointer(comInterface))

	if err := components.InitializeForBackup(); err != nil {
		components.Release()
		return nil, err
	}

	if err := components.SetContext(opt.Context); err != nil {
		components.Release()
		return nil, err
	}

	if err := components.SetBackupState(false, opt.BackupBootableSystemState, opt.BackupType, false); err != nil {
		components.Release()
		return nil, err
	}

	err = callAsyncFunctionAndWait(components.GatherWriterMetadata,
		"GatherWriterMetadata", timeoutInMillis)
	if err != nil {
		components.Release()
		return nil, err
	}

	for _, volume := range volumes {
		isSupported, err := components.IsVolumeSupported(volume)
		if err != nil {
			components.Release()
			return nil, err
		}
		if !isSupported {
			components.Release()
			return nil, NewErrorWithMessage(VSS_E_VOLUME_NOT_SUPPORTED,
				fmt.Sprintf("Snapshots are not supported for volume %s", volume))
		}
	}

	snapshotSetID, err := components.StartSnapshotSet()
	if err != nil {
		components.Release()
		return nil, err
	}

	var snapshotIDs []ole.GUID
	for _, volume := range volumes {
		snapshotID, err := components.AddToSnapshotSet(volume, &snapshotSetID)
		if err != nil {
			components.Release()
			return nil, err
		}

		snapshotIDs = append(snapshotIDs, snapshotID)
	}

	err = callAsyncFunctionAndWait(components.PrepareForBackup, "PrepareForBackup",
		timeoutInMillis)
	if err != nil {
		// After PrepareForBackup, AbortBackup() must run before the VSS
		// instance is released for proper cleanup.
		components.AbortBackup()
		components.Release()
		return nil, err
	}

	err = callAsyncFunctionAndWait(components.DoSnapshotSet, "DoSnapshotSet",
		timeoutInMillis)
	if err != nil {
		components.AbortBackup()
		components.Release()
		return nil, err
	}

	set := &winSnapshotSet{
		components:      components,
		setID:           snapshotSetID,
		timeoutInMillis: timeoutInMillis,
	}

	for _, id := range snapshotIDs {
		var properties VssSnapshotProperties
		if err := components.GetSnapshotProperties(id, &properties); err != nil {
			components.AbortBackup()
			components.Release()
			return nil, err
		}

		set.snapshots = append(set.snapshots, &winSnapshot{
			components: components,
			setID:      snapshotSetID,
			id:         id,
			properties: properties,
		})
	}

	return set, nil
}

// winSnapshotSet implements SnapshotSet over a live IVssBackupComponents
// instance.
type winSnapshotSet struct {
	components      *IVssBackupComponents
	setID           ole.GUID
	snapshots       []*winSnapshot
	timeoutInMillis uint32
}

func (s *winSnapshotSet) ID() string {
	return s.setID.String()
}

func (s *winSnapshotSet) Snapshots() []Snapshot {
	out := make([]Snapshot, len(s.snapshots))
	for i, snap := range s.snapshots {
		out[i] = snap
	}
	return out
}

// Delete completes the backup and deletes every snapshot in the set.
func (s *winSnapshotSet) Delete() error {
	for _, snap := range s.snapshots {
		if err := vssFreeSnapshotProperties(&snap.properties); err != nil {
			return err
		}
	}

	if s.components == nil {
		return nil
	}
	defer s.components.Release()

	err := callAsyncFunctionAndWait(s.components.BackupComplete, "BackupComplete",
		s.timeoutInMillis)
	if err != nil {
		return err
	}

	if _, _, err := s.components.DeleteSnapshotSet(s.setID); err != nil {
		s.components.AbortBackup()
		return NewErrorWithCause(VSS_E_OBJECT_NOT_FOUND,
			fmt.Sprintf("Failed to delete snapshot set %s", s.setID.String()), err)
	}

	return nil
}

// winSnapshot implements Snapshot for a single volume of a set.
type winSnapshot struct {
	components *IVssBackupComponents
	setID      ole.GUID
	id         ole.GUID
	properties VssSnapshotProperties
}

func (p *winSnapshot) ID() string {
	return p.id.String()
}

func (p *winSnapshot) VolumeName() string {
	return ole.UTF16PtrToString(p.properties.originalVolumeName)
}

// DeviceObject returns the root path to access the snapshot files and
// folders.
func (p *winSnapshot) DeviceObject() string {
	return ole.UTF16PtrToString(p.properties.snapshotDeviceObject)
}

func (p *winSnapshot) Expose(volume string) error {
	return p.components.ExposeSnapshot(p.id, volume)
}

// Delete removes this one snapshot. Completing the backup and releasing the
// shared components instance stays with SnapshotSet.Delete.
func (p *winSnapshot) Delete() error {
	if err := vssFreeSnapshotProperties(&p.properties); err != nil {
		return err
	}

	if _, _, err := p.components.DeleteSnapshot(p.id); err != nil {
		return NewErrorWithCause(VSS_E_OBJECT_NOT_FOUND,
			fmt.Sprintf("Failed to delete snapshot %s", p.id.String()), err)
	}

	return nil
}
