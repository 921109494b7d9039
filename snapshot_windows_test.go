//go:build windows

package vss

// The COM-backed types must keep satisfying the portable capability
// interfaces, snapshot deletion included.
var (
	_ Provider    = (*systemProvider)(nil)
	_ SnapshotSet = (*winSnapshotSet)(nil)
	_ Snapshot    = (*winSnapshot)(nil)
)
