// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/attachkit/attach-core/cliout"
	"github.com/attachkit/attach-core/configutil"
	"github.com/attachkit/attach-core/debugargs"
	"github.com/attachkit/attach-core/procutil"
	"github.com/attachkit/attach-core/pslist"
)

// listEntry is one row of list output: a process record plus the debug
// target extracted from its arguments and a liveness re-check.
type listEntry struct {
	pslist.ProcessRecord
	Debug   *debugargs.Target `json:"debug,omitempty"`
	Running bool              `json:"running"`
}

func newListCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List running processes and their debug listeners",
		Long: `List enumerates the running processes via the platform's native listing
command and shows, for each process whose arguments carry debug flags, the
address and port of its debug listener. With --all every process is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configutil.Load(configPath)
			if err != nil {
				return err
			}
			if outputFormat == "" && cfg.Format != "" {
				if err := cliout.SetFormat(cfg.Format); err != nil {
					return err
				}
			}
			if cfg.ShowAll {
				showAll = true
			}

			opts := pslist.Options{
				Command: cfg.Listing.Command,
				Args:    cfg.Listing.Args,
			}
			records, err := pslist.EnumerateWithOptions(cmd.Context(),
				func(r pslist.ProcessRecord, acc []pslist.ProcessRecord) []pslist.ProcessRecord {
					return append(acc, r)
				}, nil, opts)
			if err != nil {
				return fmt.Errorf("enumerating processes: %w", err)
			}

			entries := buildEntries(records, showAll)
			for i := range entries {
				entries[i].Running = procutil.IsProcessRunning(entries[i].PID)
			}

			return cliout.Print(entries, func() {
				renderEntries(entries, showAll)
			})
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include processes without debug flags")
	return cmd
}

// buildEntries analyzes each record's arguments and keeps those advertising
// a debug listener, or all of them when showAll is set.
func buildEntries(records []pslist.ProcessRecord, showAll bool) []listEntry {
	entries := make([]listEntry, 0, len(records))
	for _, r := range records {
		target := debugargs.Analyze(r.Args)
		hasDebug := target != (debugargs.Target{})
		if !hasDebug && !showAll {
			continue
		}

		entry := listEntry{ProcessRecord: r}
		if hasDebug {
			entry.Debug = &target
		}
		entries = append(entries, entry)
	}
	return entries
}

func renderEntries(entries []listEntry, showAll bool) {
	if len(entries) == 0 {
		if showAll {
			cliout.Warning("no processes found")
		} else {
			cliout.Info("no debuggable processes found (use --all to list everything)")
		}
		return
	}

	headers := []string{"PID", "PPID", "Command", "Debug", "Running"}
	rows := make([]cliout.TableRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, cliout.TableRow{
			"PID":     strconv.Itoa(e.PID),
			"PPID":    strconv.Itoa(e.PPID),
			"Command": e.Command,
			"Debug":   formatTarget(e.Debug),
			"Running": strconv.FormatBool(e.Running),
		})
	}
	cliout.Table(headers, rows)
}

// formatTarget renders a debug target as host:port, filling in the defaults
// an inspector uses when the flag omits them.
func formatTarget(t *debugargs.Target) string {
	if t == nil {
		return ""
	}
	address := t.Address
	if address == "" {
		address = "localhost"
	}
	if t.Port == 0 {
		return address
	}
	return fmt.Sprintf("%s:%d", address, t.Port)
}
