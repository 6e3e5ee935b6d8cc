package core

import (
	log "github.com/sirupsen/logrus"

	"github.com/openstack-labs/swiftbed/types"
)

// DescribeEnvironment builds the environment description out of the
// configured role name lists. Networks come first: internal, private and
// public; then the master node and one node per keystone, storage and proxy
// name, each attached to all three networks, in that order.
func (b *Bed) DescribeEnvironment() (*types.Environment, error) {
	environment := &types.Environment{Name: b.Settings.GetName()}

	internal := &types.Network{
		Name:       types.NetworkInternal,
		DHCPServer: true,
		IPv4Subnet: b.Settings.GetSubnet(types.NetworkInternal),
	}
	environment.Networks = append(environment.Networks, internal)

	private := &types.Network{
		Name:       types.NetworkPrivate,
		DHCPServer: false,
		IPv4Subnet: b.Settings.GetSubnet(types.NetworkPrivate),
	}
	environment.Networks = append(environment.Networks, private)

	public := &types.Network{
		Name:       types.NetworkPublic,
		DHCPServer: true,
		IPv4Subnet: b.Settings.GetSubnet(types.NetworkPublic),
	}
	environment.Networks = append(environment.Networks, public)

	networks := []*types.Network{internal, private, public}

	master, err := b.describer.DescribeNode("master", types.RoleMaster, networks)
	if err != nil {
		return nil, err
	}
	environment.Nodes = append(environment.Nodes, master)

	roles := b.Settings.GetRoles()
	for _, nodeName := range roles.Keystones {
		node, err := b.describer.DescribeNode(nodeName, types.RoleKeystone, networks)
		if err != nil {
			return nil, err
		}
		environment.Nodes = append(environment.Nodes, node)
	}
	for _, nodeName := range roles.Storages {
		node, err := b.describer.DescribeNode(nodeName, types.RoleStorage, networks)
		if err != nil {
			return nil, err
		}
		environment.Nodes = append(environment.Nodes, node)
	}
	for _, nodeName := range roles.Proxies {
		node, err := b.describer.DescribeNode(nodeName, types.RoleProxy, networks)
		if err != nil {
			return nil, err
		}
		environment.Nodes = append(environment.Nodes, node)
	}

	log.Debugf("described environment %q with %d networks and %d nodes",
		environment.Name, len(environment.Networks), len(environment.Nodes))

	b.Env = environment

	return environment, nil
}
