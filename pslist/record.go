// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

// ProcessRecord is one decoded row of the process table.
type ProcessRecord struct {
	// PID is the process identifier, unique among running processes.
	PID int `json:"pid"`

	// PPID is the parent process identifier. The parent may no longer
	// exist.
	PPID int `json:"ppid"`

	// Command is the executable path or name. Listing commands truncate it
	// at a platform-dependent length.
	Command string `json:"command"`

	// Args is the remaining command-line text after the command token. May
	// be empty.
	Args string `json:"args,omitempty"`

	// Date is the process creation time in seconds since the epoch. Only
	// the Windows listing reports it; zero means not available.
	Date int64 `json:"date,omitempty"`
}
