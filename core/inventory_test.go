package core

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/openstack-labs/swiftbed/types"
)

func TestGenerateInventory(t *testing.T) {
	b, err := NewBed(WithSettings(&types.Settings{
		Roles: &types.RoleNames{
			Keystones: []string{"keystone-1"},
			Storages:  []string{"storage-1", "storage-2"},
			Proxies:   []string{"proxy-1"},
		},
	}))
	require.NoError(t, err)

	_, err = b.DescribeEnvironment()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.GenerateInventory(&buf))

	// role groups come out in lexical order, nodes keep environment order
	want := "[keystone]\nkeystone-1\n\n" +
		"[master]\nmaster\n\n" +
		"[proxy]\nproxy-1\n\n" +
		"[storage]\nstorage-1\nstorage-2\n\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("inventory mismatch (-want +got):\n%s", diff)
	}
}
