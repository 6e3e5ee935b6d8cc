// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version variables set at build time (e.g., with -ldflags).
var (
	version = "0.0.0"
	commit  = "none"
	date    = "unknown"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show swiftbed version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("version: %s\n", version)
		fmt.Printf(" commit: %s\n", commit)
		fmt.Printf("   date: %s\n", date)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
