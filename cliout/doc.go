// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Two output formats: default human-readable text and JSON
//   - ANSI colors with automatic suppression when stdout is not a terminal
//   - Unicode symbols with ASCII fallbacks for legacy terminals
//   - Simple tables with automatic column width calculation
//
// # Basic Usage
//
//	cliout.Success("attached to process %d", pid)
//	cliout.Error("listing failed: %s", err)
//	cliout.Warning("process exited before attach")
//	cliout.Info("found %d debuggable processes", n)
//
// # Output Formats
//
// Set the output format with SetFormat("json") for automation; the Print
// function then marshals the data object instead of running the
// human-readable formatter:
//
//	err := cliout.Print(records, func() {
//	    cliout.Table(headers, rows)
//	})
//
// # Tables
//
//	headers := []string{"PID", "Command", "Debug"}
//	rows := []cliout.TableRow{
//	    {"PID": "200", "Command": "node", "Debug": "localhost:9229"},
//	}
//	cliout.Table(headers, rows)
package cliout
