//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific debug probes: CPU count plus the open-file-descriptor
// ceiling the reactor's epoll registrations compete against. A reactor
// that registers many descriptors can hit RLIMIT_NOFILE well before any
// CPU-bound limit, so it's worth surfacing here rather than just cpus.

package control

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// RegisterPlatformProbes adds platform.cpus and platform.max_open_files.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.max_open_files", func() any {
		var rlimit unix.Rlimit
		if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlimit); err != nil {
			return -1
		}
		return rlimit.Cur
	})
}
