// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for pinning the calling OS thread to a logical
// CPU core, used to give each independent Executor in a multi-instance
// harness its own core. Platform-specific implementations are located in
// separate files (affinity_linux.go, affinity_windows.go,
// affinity_stub.go) guarded by build tags.

package affinity

import (
	"fmt"
	"runtime"
)

// SetAffinity pins the calling OS thread to cpuID. Returns an error for a
// negative core index or on unsupported platforms. The caller must have
// already called runtime.LockOSThread: affinity set on a goroutine that
// later migrates to a different OS thread has no lasting effect.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("affinity: invalid cpu id %d", cpuID)
	}
	return setAffinityPlatform(cpuID)
}

// PinCurrentThread pins the calling OS thread to the core assigned to
// workerID, wrapping around runtime.NumCPU() so any worker count can be
// spread across however many cores are actually available.
func PinCurrentThread(workerID int) error {
	if workerID < 0 {
		return fmt.Errorf("affinity: invalid worker id %d", workerID)
	}
	cores := runtime.NumCPU()
	if cores <= 0 {
		return fmt.Errorf("affinity: no usable CPU cores reported")
	}
	return SetAffinity(workerID % cores)
}
