// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import (
	"strconv"
	"strings"
)

// LineParser decodes one complete, separator-stripped line of listing output
// into a ProcessRecord. The second return value is false when the line does
// not match the expected layout (header rows, damaged rows); such lines are
// skipped without failing the enumeration.
type LineParser interface {
	ParseLine(line string) (ProcessRecord, bool)
}

// ParserFor returns the parser matching the given GOOS value. Unrecognized
// values get the Linux parser, which covers the remaining ps-compatible
// platforms.
func ParserFor(goos string) LineParser {
	switch goos {
	case "windows":
		return NewWindowsParser()
	case "darwin":
		return NewDarwinParser()
	default:
		return NewLinuxParser()
	}
}

// field extracts a fixed-width column from line, tolerating lines shorter
// than the column's nominal extent.
func field(line string, offset, width int) string {
	if offset >= len(line) {
		return ""
	}
	end := offset + width
	if end > len(line) {
		end = len(line)
	}
	return line[offset:end]
}

// pidPair decodes the pid and ppid columns shared by the ps-based layouts:
// width-5 fields at offsets 0 and 6.
func pidPair(line string) (pid, ppid int, ok bool) {
	pid, err := strconv.Atoi(strings.TrimSpace(field(line, 0, 5)))
	if err != nil {
		return 0, 0, false
	}
	ppid, err = strconv.Atoi(strings.TrimSpace(field(line, 6, 5)))
	if err != nil {
		return 0, 0, false
	}
	return pid, ppid, true
}
