//go:build windows

package vss

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

// All supported host variants share the one statically linked COM
// implementation, so its factory is registered under every assembly name
// resolution can produce. Loading the same name twice is coalesced by the
// lazy DLL machinery underneath, not here.
func init() {
	for _, winTag := range []string{"WinXP", "Win2003", "Win2008"} {
		for _, archTag := range []string{"x86", "x64"} {
			id := newAssemblyIdentity(winTag, archTag, debugBuild)
			DefaultRegistry.Register(id.ShortName, newSystemProvider)
		}
	}
}

// loadIVssBackupComponentsConstructor finds the constructor of the VSS api
// inside the VSS dynamic library.
func loadIVssBackupComponentsConstructor() (*windows.LazyProc, error) {
	createInstanceName := "?CreateVssBackupComponents@@YAJPEAPEAVIVssBackupComponents@@@Z"

	if runtime.GOARCH == "386" {
		createInstanceName = "?CreateVssBackupComponents@@YGJPAPAVIVssBackupComponents@@@Z"
	}

	return findVssProc(createInstanceName)
}

// findVssProc finds a function with the given name inside the VSS api
// dynamic library. Load failures are the loader's own errors and are
// returned unwrapped.
func findVssProc(procName string) (*windows.LazyProc, error) {
	vssDll := windows.NewLazySystemDLL("VssApi.dll")
	if err := vssDll.Load(); err != nil {
		return &windows.LazyProc{}, err
	}

	proc := vssDll.NewProc(procName)
	if err := proc.Find(); err != nil {
		return &windows.LazyProc{}, err
	}

	return proc, nil
}

// vssFreeSnapshotProperties calls the equivalent VSS api.
func vssFreeSnapshotProperties(properties *VssSnapshotProperties) error {
	proc, err := findVssProc("VssFreeSnapshotProperties")
	if err != nil {
		return err
	}

	proc.Call(uintptr(unsafe.Pointer(properties)))
	return nil
}

// initializeVssCOMInterface initializes an instance of the VSS COM api.
func initializeVssCOMInterface() (*ole.IUnknown, error) {
	vssInstance, err := loadIVssBackupComponentsConstructor()
	if err != nil {
		return nil, err
	}

	// ensure COM is initialized before use
	ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)

	var oleIUnknown *ole.IUnknown
	result, _, _ := vssInstance.Call(uintptr(unsafe.Pointer(&oleIUnknown)))
	hresult := HRESULT(result)

	switch hresult {
	case S_OK:
	case E_ACCESSDENIED:
		return oleIUnknown, NewError(hresult)
	default:
		return oleIUnknown, NewErrorWithMessage(hresult, "Failed to create VSS instance")
	}

	if oleIUnknown == nil {
		return nil, NewErrorWithMessage(hresult, "Failed to initialize COM interface")
	}

	return oleIUnknown, nil
}

// queryInterface is a wrapper around the windows QueryInterface api.
func queryInterface(oleIUnknown *ole.IUnknown, guid *ole.GUID) (*interface{}, error) {
	var ivss *interface{}

	result, _, _ := syscall.Syscall(oleIUnknown.VTable().QueryInterface, 3,
		uintptr(unsafe.Pointer(oleIUnknown)), uintptr(unsafe.Pointer(guid)),
		uintptr(unsafe.Pointer(&ivss)))
	if result != 0 {
		return nil, NewErrorWithMessage(HRESULT(result), "QueryInterface failed")
	}

	return ivss, nil
}

// isRunningOn64BitWindows returns true if running on 64-bit windows.
func isRunningOn64BitWindows() (bool, error) {
	if runtime.GOARCH == "amd64" {
		return true, nil
	}

	isWow64 := false
	err := windows.IsWow64Process(windows.CurrentProcess(), &isWow64)
	if err != nil {
		return false, err
	}

	return isWow64, nil
}
