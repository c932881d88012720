// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// psattach discovers running processes and the debug-protocol listeners
// their command lines advertise, as a building block for attaching
// debuggers to already-running programs.
package main

import (
	"context"
	"os"

	"github.com/attachkit/attach-core/cliout"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		cliout.Error("%s", err)
		os.Exit(1)
	}
}
