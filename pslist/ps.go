// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import "strings"

// ps column geometry. Both Unix layouts start with width-5 pid and ppid
// columns; they differ in the width of the padded comm column, which
// determines where the full command line begins.
const (
	commOffset = 12

	darwinCommWidth = 256
	darwinArgsBase  = commOffset + darwinCommWidth + 1 // 269

	linuxCommWidth  = 20
	linuxArgsOffset = commOffset + linuxCommWidth + 1 // 33
)

type darwinParser struct{}

// NewDarwinParser returns the parser for macOS ps output, which pads the
// comm column to 256 characters.
func NewDarwinParser() LineParser {
	return darwinParser{}
}

func (darwinParser) ParseLine(line string) (ProcessRecord, bool) {
	pid, ppid, ok := pidPair(line)
	if !ok {
		return ProcessRecord{}, false
	}

	command := strings.TrimSpace(field(line, commOffset, darwinCommWidth))

	// The command column repeats the executable path, so the arguments
	// start past the padded comm column plus the characters the trimmed
	// command accounts for.
	var args string
	if start := darwinArgsBase + len(command); start < len(line) {
		args = line[start:]
	}

	return ProcessRecord{PID: pid, PPID: ppid, Command: command, Args: args}, true
}

type linuxParser struct{}

// NewLinuxParser returns the parser for Linux ps output, which pads the
// comm column to 20 characters.
func NewLinuxParser() LineParser {
	return linuxParser{}
}

func (linuxParser) ParseLine(line string) (ProcessRecord, bool) {
	pid, ppid, ok := pidPair(line)
	if !ok {
		return ProcessRecord{}, false
	}

	command := strings.TrimSpace(field(line, commOffset, linuxCommWidth))

	var full string
	if linuxArgsOffset < len(line) {
		full = line[linuxArgsOffset:]
	}
	command, args := refineCommand(command, full)

	return ProcessRecord{PID: pid, PPID: ppid, Command: command, Args: args}, true
}

// refineCommand reconstructs the executable path from the full command line.
// The Linux comm column truncates the executable name, so the truncated form
// is located inside the full command-line text and extended to the next
// space; everything up to that point is the executable, the rest (minus one
// separating character) the arguments. When the truncated name does not
// occur in the text the narrow split is kept unchanged.
func refineCommand(comm, full string) (command, args string) {
	pos := strings.Index(full, comm)
	if pos < 0 {
		return comm, full
	}

	end := pos + len(comm)
	for end < len(full) && full[end] != ' ' {
		end++
	}

	command = full[:end]
	if end < len(full) {
		args = full[end+1:]
	}
	return command, args
}
