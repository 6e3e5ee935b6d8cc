// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var inventoryFile string

// inventoryCmd represents the inventory command.
var inventoryCmd = &cobra.Command{
	Use:     "inventory",
	Aliases: []string{"inv"},
	Short:   "generate an ansible inventory of the environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBed()
		if err != nil {
			return err
		}

		_, err = b.DescribeEnvironment()
		if err != nil {
			return err
		}

		w := os.Stdout
		if inventoryFile != "" {
			f, err := os.Create(inventoryFile)
			if err != nil {
				return err
			}
			defer f.Close()

			w = f
		}

		return b.GenerateInventory(w)
	},
}

func init() {
	RootCmd.AddCommand(inventoryCmd)

	inventoryCmd.Flags().StringVarP(&inventoryFile, "file", "", "",
		"file path to save the inventory, prints to stdout when unset")
}
