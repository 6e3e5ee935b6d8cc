// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	exportTemplate string
	exportFile     string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "export environment data using a template",
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
		if exportFile != "" {
			f, err := os.Create(exportFile)
			if err != nil {
				return err
			}
			defer f.Close()

			w = f
		}

		return b.GenerateExport(w, exportTemplate)
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportTemplate, "template", "", "",
		"path to an export template, the built-in one is used when unset")
	exportCmd.Flags().StringVarP(&exportFile, "file", "", "",
		"file path to save the export, prints to stdout when unset")
}
