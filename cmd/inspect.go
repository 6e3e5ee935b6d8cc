// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openstack-labs/swiftbed/types"
)

var inspectFormat string

// nodeDetails contains information that is commonly outputted to tables.
type nodeDetails struct {
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	MachineID string `json:"machine_id,omitempty"`
	Networks  string `json:"networks,omitempty"`
	Disks     int    `json:"disks,omitempty"`
	Memory    string `json:"memory,omitempty"`
	VCPU      uint   `json:"vcpu,omitempty"`
}

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Short:   "inspect environment details",
	Long:    "show the networks and nodes of the environment described by the settings",
	Aliases: []string{"ins", "i"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if inspectFormat != "table" && inspectFormat != "json" {
			return fmt.Errorf("output format %q is not supported, use one of [table, json]", inspectFormat)
		}

		b, err := newBed()
		if err != nil {
			return err
		}

		env, err := b.DescribeEnvironment()
		if err != nil {
			return err
		}

		details := environmentDetails(env)

		if inspectFormat == "json" {
			out, err := json.MarshalIndent(details, "", "  ")
			if err != nil {
				log.Fatalf("failed to marshal node details: %v", err)
			}

			fmt.Println(string(out))

			return nil
		}

		printEnvironmentInspect(env.Name, details)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "table",
		"output format. One of [table, json]")
}

func environmentDetails(env *types.Environment) []nodeDetails {
	details := make([]nodeDetails, 0, len(env.Nodes))
	for _, n := range env.Nodes {
		details = append(details, nodeDetails{
			Name:      n.Name,
			Role:      n.Role,
			MachineID: n.MachineID,
			Networks:  strings.Join(n.NetworkNames(), ","),
			Disks:     len(n.Disks),
			Memory:    humanize.IBytes(n.Memory),
			VCPU:      n.VCPU,
		})
	}

	return details
}

func toTableData(det []nodeDetails) [][]string {
	tabData := make([][]string, 0, len(det))
	for i, d := range det {
		tabData = append(tabData, []string{
			fmt.Sprintf("%d", i+1), d.Name, d.Role, d.Networks,
			fmt.Sprintf("%d", d.Disks), d.Memory, fmt.Sprintf("%d", d.VCPU),
		})
	}

	return tabData
}

func printEnvironmentInspect(envName string, details []nodeDetails) {
	table := tablewriter.NewWriter(os.Stdout)
	header := []string{"#", "Name", "Role", "Networks", "Disks", "Memory", "VCPU"}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(toTableData(details))

	fmt.Printf("environment: %s\n", envName)
	table.Render()
}
