// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import (
	"strings"
	"testing"
)

func TestListingCommandWindows(t *testing.T) {
	t.Setenv(EnvSystemRoot, `D:\OS`)

	name, args := ListingCommand("windows")
	if !strings.HasSuffix(name, "WMIC.exe") {
		t.Errorf("name = %q, want WMIC.exe path", name)
	}
	if !strings.Contains(name, `D:\OS`) && !strings.Contains(name, "D:\\OS") {
		t.Errorf("name = %q, want SystemRoot honored", name)
	}
	if len(args) != 3 || args[2] != "CommandLine,CreationDate,ParentProcessId,ProcessId" {
		t.Errorf("args = %v, want fixed WMIC column list", args)
	}
}

func TestListingCommandWindowsDefaultRoot(t *testing.T) {
	t.Setenv(EnvSystemRoot, "")

	name, _ := ListingCommand("windows")
	if !strings.Contains(name, `C:\Windows`) {
		t.Errorf("name = %q, want default SystemRoot", name)
	}
}

func TestListingCommandUnix(t *testing.T) {
	name, args := ListingCommand("darwin")
	if name != "/bin/ps" {
		t.Errorf("darwin name = %q, want /bin/ps", name)
	}
	if !strings.Contains(args[len(args)-1], strings.Repeat("c", 256)) {
		t.Errorf("darwin args = %v, want 256-wide comm padding", args)
	}

	name, args = ListingCommand("linux")
	if name != "/bin/ps" {
		t.Errorf("linux name = %q, want /bin/ps", name)
	}
	last := args[len(args)-1]
	if !strings.Contains(last, strings.Repeat("c", 20)) || strings.Contains(last, strings.Repeat("c", 21)) {
		t.Errorf("linux args = %v, want 20-wide comm padding", args)
	}
}
