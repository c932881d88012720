// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variable names.
const (
	// EnvSystemRoot locates the Windows installation; WMIC lives under it.
	EnvSystemRoot = "SystemRoot"

	// defaultSystemRoot is used when SystemRoot is unset.
	defaultSystemRoot = `C:\Windows`
)

// ListingCommand returns the executable and arguments of the process-listing
// command for the given GOOS value.
//
// The argument lists are load-bearing: they produce exactly the column
// layouts the parsers from ParserFor expect. On macOS and Linux the comm
// header is padded with filler characters to force the column width; the
// resulting header row does not parse as a record and is discarded like any
// other unmatched line.
func ListingCommand(goos string) (name string, args []string) {
	switch goos {
	case "windows":
		root := os.Getenv(EnvSystemRoot)
		if root == "" {
			root = defaultSystemRoot
		}
		return filepath.Join(root, "System32", "wbem", "WMIC.exe"),
			[]string{"process", "get", "CommandLine,CreationDate,ParentProcessId,ProcessId"}
	case "darwin":
		return "/bin/ps",
			[]string{"-x", "-o", "pid=,ppid=,comm=" + strings.Repeat("c", darwinCommWidth) + ",command="}
	default:
		return "/bin/ps",
			[]string{"-ax", "-o", "pid=,ppid=,comm=" + strings.Repeat("c", linuxCommWidth) + ",command="}
	}
}
