// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attachkit/attach-core/cliout"
	"github.com/attachkit/attach-core/debugargs"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <args>...",
		Short: "Extract debug host and port from a command-line string",
		Example: `  psattach analyze -- node --inspect=localhost:9229 server.js
  psattach analyze -- "--inspect-brk=9229 --inspect-port=9230"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := debugargs.Analyze(strings.Join(args, " "))

			return cliout.Print(target, func() {
				if target == (debugargs.Target{}) {
					cliout.Info("no debug flags found")
					return
				}
				if target.Address != "" {
					cliout.Label("Address", target.Address)
				}
				if target.Port != 0 {
					cliout.Label("Port", strconv.Itoa(target.Port))
				}
			})
		},
	}
}
