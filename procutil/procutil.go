// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning checks if a process with the given PID is running.
// Works cross-platform (Windows and Unix). Non-positive PIDs are never
// considered running.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	exists, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}
	return exists
}
