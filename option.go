package vss

import (
	"math"
	"time"
)

// VssVolumeSnapshotAttribute is a custom type for the windows api _VSS_VOLUME_SNAPSHOT_ATTRIBUTES type.
// https://docs.microsoft.com/en-us/windows/win32/api/vss/ne-vss-vss_volume_snapshot_attributes
type VssVolumeSnapshotAttribute uint

const (
	VSS_VOLSNAP_ATTR_PERSISTENT           VssVolumeSnapshotAttribute = 0x00000001
	VSS_VOLSNAP_ATTR_NO_AUTORECOVERY      VssVolumeSnapshotAttribute = 0x00000002
	VSS_VOLSNAP_ATTR_CLIENT_ACCESSIBLE    VssVolumeSnapshotAttribute = 0x00000004
	VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE      VssVolumeSnapshotAttribute = 0x00000008
	VSS_VOLSNAP_ATTR_NO_WRITERS           VssVolumeSnapshotAttribute = 0x00000010
	VSS_VOLSNAP_ATTR_TRANSPORTABLE        VssVolumeSnapshotAttribute = 0x00000020
	VSS_VOLSNAP_ATTR_NOT_SURFACED         VssVolumeSnapshotAttribute = 0x00000040
	VSS_VOLSNAP_ATTR_NOT_TRANSACTED       VssVolumeSnapshotAttribute = 0x00000080
	VSS_VOLSNAP_ATTR_HARDWARE_ASSISTED    VssVolumeSnapshotAttribute = 0x00010000
	VSS_VOLSNAP_ATTR_DIFFERENTIAL         VssVolumeSnapshotAttribute = 0x00020000
	VSS_VOLSNAP_ATTR_PLEX                 VssVolumeSnapshotAttribute = 0x00040000
	VSS_VOLSNAP_ATTR_IMPORTED             VssVolumeSnapshotAttribute = 0x00080000
	VSS_VOLSNAP_ATTR_EXPOSED_LOCALLY      VssVolumeSnapshotAttribute = 0x00100000
	VSS_VOLSNAP_ATTR_EXPOSED_REMOTELY     VssVolumeSnapshotAttribute = 0x00200000
	VSS_VOLSNAP_ATTR_AUTORECOVER          VssVolumeSnapshotAttribute = 0x00400000
	VSS_VOLSNAP_ATTR_ROLLBACK_RECOVERY    VssVolumeSnapshotAttribute = 0x00800000
	VSS_VOLSNAP_ATTR_DELAYED_POSTSNAPSHOT VssVolumeSnapshotAttribute = 0x01000000
	VSS_VOLSNAP_ATTR_TXF_RECOVERY         VssVolumeSnapshotAttribute = 0x02000000
	VSS_VOLSNAP_ATTR_FILE_SHARE           VssVolumeSnapshotAttribute = 0x4000000
)

// VssContext constant values necessary for using VSS api.
const (
	VSS_CTX_BACKUP                    VssVolumeSnapshotAttribute = 0x00000000 // default
	VSS_CTX_APP_ROLLBACK              VssVolumeSnapshotAttribute = 0x00000009 // VSS_VOLSNAP_ATTR_PERSISTENT | VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE
	VSS_CTX_CLIENT_ACCESSIBLE_WRITERS VssVolumeSnapshotAttribute = 0x0000000d // VSS_VOLSNAP_ATTR_PERSISTENT | VSS_VOLSNAP_ATTR_CLIENT_ACCESSIBLE | VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE
	VSS_CTX_FILE_SHARE_BACKUP         VssVolumeSnapshotAttribute = 0x00000010 // VSS_VOLSNAP_ATTR_NO_WRITERS
	VSS_CTX_NAS_ROLLBACK              VssVolumeSnapshotAttribute = 0x00000019 // VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE | VSS_VOLSNAP_ATTR_NO_WRITERS | VSS_VOLSNAP_ATTR_NO_AUTORECOVERY
	VSS_CTX_CLIENT_ACCESSIBLE         VssVolumeSnapshotAttribute = 0x0000001d // VSS_VOLSNAP_ATTR_PERSISTENT | VSS_VOLSNAP_ATTR_CLIENT_ACCESSIBLE | VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE | VSS_VOLSNAP_ATTR_NO_WRITERS
	VSS_CTX_ALL                       VssVolumeSnapshotAttribute = 0xffffffff
)

// VssBackup is a custom type for the windows api VSS_BACKUP_TYPE type.
type VssBackup uint

// VssBackup constant values necessary for using VSS api.
const (
	VSS_BT_UNDEFINED VssBackup = iota
	VSS_BT_FULL
	VSS_BT_INCREMENTAL
	VSS_BT_DIFFERENTIAL
	VSS_BT_LOG
	VSS_BT_COPY
	VSS_BT_OTHER
)

// VssObjectType is a custom type for the windows api VSS_OBJECT_TYPE type.
type VssObjectType uint

// VssObjectType constant values necessary for using VSS api.
const (
	VSS_OBJECT_UNKNOWN VssObjectType = iota
	VSS_OBJECT_NONE
	VSS_OBJECT_SNAPSHOT_SET
	VSS_OBJECT_SNAPSHOT
	VSS_OBJECT_PROVIDER
	VSS_OBJECT_TYPE_COUNT
)

// Option configures snapshot creation.
type Option struct {
	Context                   VssVolumeSnapshotAttribute
	BackupBootableSystemState bool
	BackupType                VssBackup
}

// DefaultOption is the configuration used for plain copy backups.
var DefaultOption = Option{
	Context:                   VSS_CTX_BACKUP,
	BackupBootableSystemState: false,
	BackupType:                VSS_BT_COPY,
}

// timeoutMillis converts a timeout to the millisecond count the VSS wait
// apis take, clamped to the representable range.
func timeoutMillis(d time.Duration) uint32 {
	millis := d.Milliseconds()
	if millis < 0 {
		return 0
	}
	if millis > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(millis)
}
