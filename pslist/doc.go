// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// Package pslist enumerates the running processes of the host by invoking the
// platform's native process-listing command and decoding its tabular output.
//
// # How it works
//
// One listing subprocess is launched per call (WMIC on Windows, ps on macOS
// and Linux). Its standard output is reassembled into lines and each line is
// decoded into a ProcessRecord by a platform-specific LineParser. Records are
// folded one at a time into a caller-supplied accumulator:
//
//	procs, err := pslist.Enumerate(ctx,
//	    func(r pslist.ProcessRecord, acc []pslist.ProcessRecord) []pslist.ProcessRecord {
//	        return append(acc, r)
//	    }, nil)
//
// The fold is the extension point: callers choose the accumulator type and
// the combining function, so filtering, indexing by PID, or counting all cost
// nothing extra.
//
// # Parsing model
//
// None of the three listing formats delimit the executable path from its
// arguments in a machine-parsable way (the path itself may contain spaces),
// so each parser applies a disambiguation heuristic tuned to its platform's
// observed column layout. Lines that fail to decode (the header row, damaged
// rows) are discarded silently; subprocess-level failures (launch errors,
// stderr output, non-zero exit, signals) fail the whole call.
//
// All three parsers are always compiled and selectable via ParserFor, which
// keeps every strategy testable on every platform. Enumerate picks the one
// matching runtime.GOOS.
package pslist
