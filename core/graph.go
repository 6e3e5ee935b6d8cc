// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"github.com/awalterschulze/gographviz"
	log "github.com/sirupsen/logrus"

	"github.com/openstack-labs/swiftbed/types"
	"github.com/openstack-labs/swiftbed/utils"
)

var roleFillColors = map[string]string{
	types.RoleMaster:   "red",
	types.RoleKeystone: "orange",
	types.RoleStorage:  "green",
	types.RoleProxy:    "blue",
}

// GenerateDotGraph generates a graph of the environment topology: networks
// and nodes become graph nodes, interfaces become edges.
func (b *Bed) GenerateDotGraph(dotfile string) error {
	log.Info("Generating environment graph...")

	g := gographviz.NewGraph()
	if err := g.SetName(b.Env.Name); err != nil {
		return err
	}
	if err := g.SetDir(false); err != nil {
		return err
	}

	var attr map[string]string

	// process the networks
	for _, network := range b.Env.Networks {
		attr = make(map[string]string)
		attr["shape"] = "ellipse"
		attr["style"] = "filled"
		attr["fillcolor"] = "lightblue"

		attr["label"] = network.Name
		if network.DHCPServer {
			attr["xlabel"] = "dhcp"
		}

		if err := g.AddNode(b.Env.Name, network.Name, attr); err != nil {
			return err
		}
	}

	// process the nodes and their network attachments
	for _, node := range b.Env.Nodes {
		attr = make(map[string]string)
		attr["style"] = "filled"
		attr["fillcolor"] = "grey"
		if c, ok := roleFillColors[node.Role]; ok {
			attr["fillcolor"] = c
		}

		attr["label"] = node.Name
		attr["xlabel"] = node.Role

		if err := g.AddNode(b.Env.Name, node.Name, attr); err != nil {
			return err
		}

		for _, iface := range node.Interfaces {
			eattr := map[string]string{"color": "black"}
			if err := g.AddEdge(node.Name, iface.Network, false, eattr); err != nil {
				return err
			}
		}
	}

	if err := utils.CreateFile(dotfile, g.String()); err != nil {
		return err
	}

	log.Infof("Created %s", dotfile)

	return nil
}
