// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import "fmt"

// Names of the three networks that make up every environment.
const (
	NetworkInternal = "internal"
	NetworkPrivate  = "private"
	NetworkPublic   = "public"
)

// Environment is the full test-bed description for one CI run.
// Networks and Nodes keep their append order; downstream provisioning
// relies on it being stable between builds.
type Environment struct {
	Name     string     `yaml:"name" json:"name"`
	Networks []*Network `yaml:"networks" json:"networks"`
	Nodes    []*Node    `yaml:"nodes" json:"nodes"`
}

// GetNetwork returns the network with the given name or nil if the
// environment has no such network.
func (e *Environment) GetNetwork(name string) *Network {
	for _, n := range e.Networks {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// GetNode returns the node with the given name or nil if the environment
// has no such node.
func (e *Environment) GetNode(name string) *Node {
	for _, n := range e.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// NodeNames returns the node names in append order.
func (e *Environment) NodeNames() []string {
	names := make([]string, 0, len(e.Nodes))
	for _, n := range e.Nodes {
		names = append(names, n.Name)
	}
	return names
}

// Network is a named virtual subnet that nodes attach to with their
// interfaces.
type Network struct {
	Name       string `yaml:"name" json:"name"`
	DHCPServer bool   `yaml:"dhcp_server" json:"dhcp_server"`
	IPv4Subnet string `yaml:"ipv4_subnet,omitempty" json:"ipv4_subnet,omitempty"`
}

// Node is a machine definition attached to one or more networks via its
// interfaces.
type Node struct {
	Name       string            `yaml:"name" json:"name"`
	Role       string            `yaml:"role" json:"role"`
	MachineID  string            `yaml:"machine_id,omitempty" json:"machine_id,omitempty"`
	Interfaces []*Interface      `yaml:"interfaces" json:"interfaces"`
	Disks      []*Disk           `yaml:"disks,omitempty" json:"disks,omitempty"`
	Memory     uint64            `yaml:"memory,omitempty" json:"memory,omitempty"` // bytes
	VCPU       uint              `yaml:"vcpu,omitempty" json:"vcpu,omitempty"`
	Labels     map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

func (n *Node) String() string {
	return fmt.Sprintf("node %s [%s]", n.Name, n.Role)
}

// NetworkNames returns the names of the networks the node is attached to,
// in interface order.
func (n *Node) NetworkNames() []string {
	names := make([]string, 0, len(n.Interfaces))
	for _, iface := range n.Interfaces {
		names = append(names, iface.Network)
	}
	return names
}

// Interface attaches a node to a network. Network references the network by
// name, the interface does not own it.
type Interface struct {
	Name    string `yaml:"name" json:"name"`
	Network string `yaml:"network" json:"network"`
	MAC     string `yaml:"mac,omitempty" json:"mac,omitempty"`
}

// Disk is a block device attached to a node.
type Disk struct {
	Name   string `yaml:"name" json:"name"`
	Size   uint64 `yaml:"size" json:"size"` // bytes
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}
