// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	_ "embed"
	"io"
	"text/template"

	"github.com/openstack-labs/swiftbed/types"
)

//go:embed assets/inventory_ansible.go.tpl
var ansibleInvT string

// AnsibleInventory represents the data structure used to generate the
// ansible inventory file.
type AnsibleInventory struct {
	// environment nodes aggregated by their role
	Roles map[string][]*types.Node
}

// GenerateInventory writes an ansible inventory of the environment to w.
// Role groups are emitted in lexical order, node names keep their
// environment order within a group.
func (b *Bed) GenerateInventory(w io.Writer) error {
	inv := AnsibleInventory{
		Roles: make(map[string][]*types.Node),
	}

	for _, n := range b.Env.Nodes {
		inv.Roles[n.Role] = append(inv.Roles[n.Role], n)
	}

	t, err := template.New("ansible").Parse(ansibleInvT)
	if err != nil {
		return err
	}

	return t.Execute(w, inv)
}
