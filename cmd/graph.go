// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dotFile string

// graphCmd represents the graph command.
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "generate a graph of the environment topology",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBed()
		if err != nil {
			return err
		}

		env, err := b.DescribeEnvironment()
		if err != nil {
			return err
		}

		if dotFile == "" {
			dotFile = fmt.Sprintf("%s.dot", env.Name)
		}

		return b.GenerateDotGraph(dotFile)
	},
}

func init() {
	RootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringVarP(&dotFile, "dot", "", "", "file path to save the dot graph")
}
