// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/attachkit/attach-core/cliout"
	"github.com/attachkit/attach-core/logutil"
	"github.com/attachkit/attach-core/version"
)

var (
	outputFormat string
	debugLog     bool
	configPath   string
)

func newRootCmd() *cobra.Command {
	info := version.New("psattach")

	root := &cobra.Command{
		Use:   "psattach",
		Short: "Discover debuggable processes",
		Long: `psattach lists the running processes of the host and extracts the
debug-protocol host and port advertised by their command-line flags
(--inspect, --inspect-brk, --inspect-port), so a debugger can be pointed at
an already-running program.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debugLog, false)
			return cliout.SetFormat(outputFormat)
		},
	}

	registerGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(),
		newAnalyzeCmd(),
		version.NewCommand(info, &outputFormat),
	)
	return root
}

func registerGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&outputFormat, "format", "f", "", "Output format: default or json")
	flags.BoolVar(&debugLog, "debug", false, "Enable debug logging")
	flags.StringVarP(&configPath, "config", "c", "", "Path to a psattach config file")
}
