// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// Package debugargs extracts debug-protocol listener coordinates from a
// command-line argument string.
//
// Node.js style runtimes open an inspector listener when started with
// --inspect or --inspect-brk, optionally specifying host and port
// (--inspect=localhost:9229). A separate --inspect-port flag overrides the
// port regardless of where it appears on the command line. Analyze recognizes
// these flag families (and their legacy --debug spellings) and returns
// whatever host and port information they carry.
package debugargs

import (
	"regexp"
	"strconv"
)

// Target holds the debug listener coordinates found in an argument string.
// Zero values mean the corresponding piece was not present: an empty Address
// means no host was given, a zero Port means no port was given.
type Target struct {
	Address string `json:"address,omitempty"`
	Port    int    `json:"port,omitempty"`
}

var (
	// debugFlags matches --inspect / --inspect-brk / --debug / --debug-brk,
	// optionally followed by =[host:]port. The host may be a bracketed IPv6
	// literal, a dotted IPv4 literal, or a bare hostname.
	debugFlags = regexp.MustCompile(`--(inspect|debug)(-brk)?(=((\[[0-9a-fA-F:]*\]|[a-zA-Z0-9.]*):)?(\d+))?`)

	// debugPortOverride matches the dedicated port-only flag, whose value
	// always wins over a port embedded in the enable flag.
	debugPortOverride = regexp.MustCompile(`--(inspect|debug)-port=(\d+)`)
)

// Analyze scans an argument string for debug flags and returns the extracted
// host and port. It is pure: the same input always yields the same result,
// and input without any recognized flag yields the zero Target.
func Analyze(args string) Target {
	var target Target

	if m := debugFlags.FindStringSubmatch(args); m != nil {
		target.Address = m[5]
		if m[6] != "" {
			target.Port, _ = strconv.Atoi(m[6])
		}
	}

	if m := debugPortOverride.FindStringSubmatch(args); len(m) == 3 {
		target.Port, _ = strconv.Atoi(m[2])
	}

	return target
}
