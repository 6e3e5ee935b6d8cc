// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"github.com/openstack-labs/swiftbed/types"
	"github.com/openstack-labs/swiftbed/utils"
)

var (
	describeFormat string
	describeFile   string
)

var supportedFormats = []string{"yaml", "json"}

// describeCmd represents the describe command.
var describeCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"desc", "gen"},
	Short:   "describe the swift test bed environment defined by the settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(supportedFormats, describeFormat) {
			return fmt.Errorf("output format %q is not supported, use one of %v",
				describeFormat, supportedFormats)
		}

		b, err := newBed()
		if err != nil {
			return err
		}

		env, err := b.DescribeEnvironment()
		if err != nil {
			return err
		}

		out, err := marshalEnvironment(env, describeFormat)
		if err != nil {
			return err
		}

		log.Debugf("described environment: %s", string(out))

		if describeFile != "" {
			return utils.CreateFile(describeFile, string(out))
		}

		fmt.Println(string(out))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVarP(&describeFormat, "format", "f", "yaml",
		fmt.Sprintf("output format. One of %v", supportedFormats))
	describeCmd.Flags().StringVarP(&describeFile, "file", "", "",
		"file path to save the described environment")
}

func marshalEnvironment(env *types.Environment, format string) ([]byte, error) {
	if format == "json" {
		return json.MarshalIndent(env, "", "  ")
	}

	return yaml.Marshal(env)
}
