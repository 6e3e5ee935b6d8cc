package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/openstack-labs/swiftbed/types"
)

var describeEnvironmentTestSet = map[string]struct {
	settings  *types.Settings
	wantName  string
	wantNodes []string
}{
	"example": {
		settings: &types.Settings{
			Roles: &types.RoleNames{
				Keystones: []string{"keystone-1"},
				Storages:  []string{"storage-1", "storage-2"},
			},
		},
		wantName:  "swift",
		wantNodes: []string{"master", "keystone-1", "storage-1", "storage-2"},
	},
	"all_roles": {
		settings: &types.Settings{
			Name: "swift-ci",
			Roles: &types.RoleNames{
				Keystones: []string{"keystone-1", "keystone-2"},
				Storages:  []string{"storage-1"},
				Proxies:   []string{"proxy-1", "proxy-2"},
			},
		},
		wantName: "swift-ci",
		wantNodes: []string{
			"master", "keystone-1", "keystone-2", "storage-1", "proxy-1", "proxy-2",
		},
	},
	"empty_roles": {
		settings:  &types.Settings{Roles: &types.RoleNames{}},
		wantName:  "swift",
		wantNodes: []string{"master"},
	},
	"nil_roles": {
		settings:  &types.Settings{},
		wantName:  "swift",
		wantNodes: []string{"master"},
	},
}

func TestDescribeEnvironment(t *testing.T) {
	for name, tt := range describeEnvironmentTestSet {
		t.Run(name, func(t *testing.T) {
			b, err := NewBed(WithSettings(tt.settings))
			require.NoError(t, err)

			env, err := b.DescribeEnvironment()
			require.NoError(t, err)

			require.Equal(t, tt.wantName, env.Name)

			wantNetworks := []*types.Network{
				{Name: types.NetworkInternal, DHCPServer: true},
				{Name: types.NetworkPrivate, DHCPServer: false},
				{Name: types.NetworkPublic, DHCPServer: true},
			}
			if diff := cmp.Diff(wantNetworks, env.Networks); diff != "" {
				t.Errorf("networks mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantNodes, env.NodeNames()); diff != "" {
				t.Errorf("node order mismatch (-want +got):\n%s", diff)
			}

			// every node is attached to all three networks
			for _, node := range env.Nodes {
				wantAttached := []string{
					types.NetworkInternal, types.NetworkPrivate, types.NetworkPublic,
				}
				if diff := cmp.Diff(wantAttached, node.NetworkNames()); diff != "" {
					t.Errorf("node %s attachment mismatch (-want +got):\n%s", node.Name, diff)
				}
			}
		})
	}
}

func TestDescribeEnvironmentSubnets(t *testing.T) {
	s := &types.Settings{
		Networks: map[string]*types.NetworkDefinition{
			types.NetworkInternal: {IPv4Subnet: "10.0.0.0/24"},
			types.NetworkPublic:   {IPv4Subnet: "172.18.0.0/24"},
		},
	}

	b, err := NewBed(WithSettings(s))
	require.NoError(t, err)

	env, err := b.DescribeEnvironment()
	require.NoError(t, err)

	require.Equal(t, "10.0.0.0/24", env.GetNetwork(types.NetworkInternal).IPv4Subnet)
	require.Equal(t, "", env.GetNetwork(types.NetworkPrivate).IPv4Subnet)
	require.Equal(t, "172.18.0.0/24", env.GetNetwork(types.NetworkPublic).IPv4Subnet)
}

func TestDescribeEnvironmentNameOverride(t *testing.T) {
	b, err := NewBed(
		WithSettings(&types.Settings{Name: "from-settings"}),
		WithEnvironmentName("from-flag"),
	)
	require.NoError(t, err)

	env, err := b.DescribeEnvironment()
	require.NoError(t, err)

	require.Equal(t, "from-flag", env.Name)
}

func TestDescribeEnvironmentDescriberError(t *testing.T) {
	s := &types.Settings{
		Defaults: &types.NodeDefaults{Memory: "not-a-size"},
	}

	b, err := NewBed(WithSettings(s))
	require.NoError(t, err)

	_, err = b.DescribeEnvironment()
	require.Error(t, err)
}
