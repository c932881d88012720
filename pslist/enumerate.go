// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/attachkit/attach-core/logutil"
	"github.com/attachkit/attach-core/streamutil"
)

// CombineFunc folds one decoded record into the accumulator and returns the
// new accumulator value.
type CombineFunc[T any] func(record ProcessRecord, acc T) T

// Options customizes an enumeration. The zero value selects the platform
// defaults.
type Options struct {
	// Command and Args override the platform listing command. Both must be
	// set together; the output must still match the layout the parser
	// expects.
	Command string
	Args    []string

	// Parser overrides the platform parser.
	Parser LineParser

	// Limiter, when set, is awaited before the listing subprocess is
	// launched. Embedding tools can share one limiter across calls to keep
	// repeated refreshes from hammering the OS process table.
	Limiter *rate.Limiter
}

// Enumerate lists the running processes with the platform defaults. See
// EnumerateWithOptions.
func Enumerate[T any](ctx context.Context, combine CombineFunc[T], initial T) (T, error) {
	return EnumerateWithOptions(ctx, combine, initial, Options{})
}

// EnumerateWithOptions launches the process-listing command, decodes each
// output line into a ProcessRecord, and folds the records into the
// accumulator in output order. It returns the final accumulator once the
// subprocess exits cleanly.
//
// The call fails, returning initial, when the subprocess cannot be started,
// writes anything to stderr (even if it then exits zero), is terminated by a
// signal, or exits non-zero. Lines that fail to parse are skipped silently.
// There is no internal timeout; cancel ctx to abandon a hung listing.
func EnumerateWithOptions[T any](ctx context.Context, combine CombineFunc[T], initial T, opts Options) (T, error) {
	log := logutil.NewLogger("pslist")

	if opts.Limiter != nil {
		if err := opts.Limiter.Wait(ctx); err != nil {
			return initial, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	name := opts.Command
	args := opts.Args
	if name == "" {
		name, args = ListingCommand(runtime.GOOS)
	}
	parser := opts.Parser
	if parser == nil {
		parser = ParserFor(runtime.GOOS)
	}

	acc := initial
	var decoded, discarded int

	// The handler runs only from the stdout pump, in arrival order, so the
	// fold needs no locking of its own.
	stdout := streamutil.NewWriter(func(line string) {
		record, ok := parser.ParseLine(line)
		if !ok {
			discarded++
			return
		}
		decoded++
		acc = combine(record, acc)
	})

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	log.Debug("launching process listing", "command", name, "args", args)

	runErr := cmd.Run()
	observeRows(decoded, discarded)

	if runErr != nil && cmd.ProcessState == nil {
		observeEnumeration(outcomeLaunchError)
		return initial, fmt.Errorf("error launching process listing command %q: %w", name, runErr)
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		observeEnumeration(outcomeStderr)
		return initial, fmt.Errorf("process listing failed: %s", msg)
	}

	state := cmd.ProcessState
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		observeEnumeration(outcomeSignal)
		return initial, fmt.Errorf("process listing terminated by signal %s", ws.Signal())
	}
	if code := state.ExitCode(); code != 0 {
		observeEnumeration(outcomeExitCode)
		return initial, fmt.Errorf("process listing exited with code %d", code)
	}

	log.Debug("process listing complete", "decoded", decoded, "discarded", discarded)
	observeEnumeration(outcomeOK)
	return acc, nil
}
