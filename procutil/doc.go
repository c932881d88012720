// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// Package procutil provides cross-platform process liveness checks.
//
// It wraps github.com/shirou/gopsutil/v4/process, which uses the native
// platform APIs (OpenProcess on Windows, /proc on Linux, sysctl on macOS and
// the BSDs) and therefore does not suffer the stale-PID false positives that
// os.FindProcess plus Signal(0) has on Windows.
//
// The typical use is re-validating a PID discovered by an earlier process
// enumeration before acting on it:
//
//	if procutil.IsProcessRunning(rec.PID) {
//	    // still safe to offer the record as an attach target
//	}
package procutil
