// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import (
	"regexp"
	"strconv"
	"strings"
)

// wmicRow matches one data row of
// "WMIC process get CommandLine,CreationDate,ParentProcessId,ProcessId".
// WMIC emits the columns in alphabetic order: the command-line blob, the
// creation date (whose integer seconds are captured, discarding the
// fractional part and UTC offset), the parent pid, and the pid.
var wmicRow = regexp.MustCompile(`^(.*)\s+(\d+)\.\d+[+-]\d+\s+(\d+)\s+(\d+)\s*$`)

type windowsParser struct{}

// NewWindowsParser returns the parser for WMIC process output.
func NewWindowsParser() LineParser {
	return windowsParser{}
}

func (windowsParser) ParseLine(line string) (ProcessRecord, bool) {
	m := wmicRow.FindStringSubmatch(line)
	if len(m) != 5 {
		return ProcessRecord{}, false
	}

	blob := strings.TrimSpace(m[1])
	if blob == "" {
		return ProcessRecord{}, false
	}

	pid, err := strconv.Atoi(m[4])
	if err != nil {
		return ProcessRecord{}, false
	}
	ppid, err := strconv.Atoi(m[3])
	if err != nil {
		return ProcessRecord{}, false
	}
	date, _ := strconv.ParseInt(m[2], 10, 64)

	command, args := splitCommandBlob(blob)
	return ProcessRecord{
		PID:     pid,
		PPID:    ppid,
		Command: command,
		Args:    args,
		Date:    date,
	}, true
}

// splitCommandBlob separates a WMIC CommandLine value into the executable
// and its arguments. A quoted executable ("C:\Program Files\node.exe" ...)
// is delimited by its closing quote; otherwise the first space wins.
func splitCommandBlob(blob string) (command, args string) {
	if strings.HasPrefix(blob, `"`) {
		end := strings.Index(blob[1:], `"`)
		if end < 0 {
			return blob, ""
		}
		command = blob[1 : end+1]
		// Skip the closing quote and one separating character.
		if end+3 <= len(blob) {
			args = blob[end+3:]
		}
		return command, args
	}

	if sp := strings.Index(blob, " "); sp > 0 {
		return blob[:sp], blob[sp+1:]
	}
	return blob, ""
}
