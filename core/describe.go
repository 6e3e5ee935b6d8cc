package core

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/openstack-labs/swiftbed/labels"
	"github.com/openstack-labs/swiftbed/types"
	"github.com/openstack-labs/swiftbed/utils"
	"github.com/pkg/errors"
)

// NodeDescriber describes a single node attached to the given networks.
// It is the extension point for consumers that assign interfaces, disks or
// resources differently than the default describer does.
type NodeDescriber interface {
	DescribeNode(name, role string, networks []*types.Network) (*types.Node, error)
}

// defaultDescriber builds nodes from the settings' node defaults.
type defaultDescriber struct {
	settings *types.Settings

	genMAC func() string
	genID  func() string
}

// NewDefaultDescriber returns the describer used when no custom one is set
// on the bed.
func NewDefaultDescriber(s *types.Settings) NodeDescriber {
	return &defaultDescriber{
		settings: s,
		genMAC:   func() string { return utils.GenMac(SwiftbedOUI) },
		genID:    func() string { return uuid.New().String() },
	}
}

// DescribeNode builds a node definition with one interface per network and
// role-specific disks. Interface order follows the networks order.
func (d *defaultDescriber) DescribeNode(
	name, role string,
	networks []*types.Network,
) (*types.Node, error) {
	memory, err := d.settings.GetMemoryBytes()
	if err != nil {
		return nil, errors.Wrapf(err, "node %q", name)
	}

	node := &types.Node{
		Name:      name,
		Role:      role,
		MachineID: d.genID(),
		Memory:    memory,
		VCPU:      d.settings.GetVCPU(),
		Labels: map[string]string{
			labels.NodeNameLabel: name,
			labels.NodeRoleLabel: role,
		},
	}

	for i, network := range networks {
		node.Interfaces = append(node.Interfaces, &types.Interface{
			Name:    fmt.Sprintf("eth%d", i),
			Network: network.Name,
			MAC:     d.genMAC(),
		})
	}

	node.Disks, err = d.describeDisks(role)
	if err != nil {
		return nil, errors.Wrapf(err, "node %q", name)
	}

	return node, nil
}

// describeDisks assigns the system disk every node gets and, for storage
// nodes, the extra data disks.
func (d *defaultDescriber) describeDisks(role string) ([]*types.Disk, error) {
	systemSize, err := d.settings.GetSystemDiskBytes()
	if err != nil {
		return nil, err
	}

	disks := []*types.Disk{{
		Name:   "system",
		Size:   systemSize,
		Format: d.settings.GetDiskFormat(),
	}}

	if role != types.RoleStorage {
		return disks, nil
	}

	dataSize, err := d.settings.GetDataDiskBytes()
	if err != nil {
		return nil, err
	}

	for i := uint(0); i < d.settings.GetDataDiskCount(); i++ {
		disks = append(disks, &types.Disk{
			Name:   fmt.Sprintf("data%d", i+1),
			Size:   dataSize,
			Format: d.settings.GetDiskFormat(),
		})
	}

	return disks, nil
}
