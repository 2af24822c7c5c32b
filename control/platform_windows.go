//go:build windows
// +build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific debug probes. There is no epoll reactor backend on
// Windows (see reactor_stub.go), so there's no descriptor ceiling worth
// probing here; live goroutine count stands in as the scheduler-pressure
// signal instead.

package control

import "runtime"

// RegisterPlatformProbes adds platform.cpus and platform.goroutines.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.goroutines", func() any {
		return runtime.NumGoroutine()
	})
}
