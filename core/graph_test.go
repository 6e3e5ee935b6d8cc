package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openstack-labs/swiftbed/types"
)

func TestGenerateDotGraph(t *testing.T) {
	b, err := NewBed(WithSettings(&types.Settings{
		Roles: &types.RoleNames{
			Storages: []string{"storage-1"},
		},
	}))
	require.NoError(t, err)

	_, err = b.DescribeEnvironment()
	require.NoError(t, err)

	dotfile := filepath.Join(t.TempDir(), "swift.dot")
	require.NoError(t, b.GenerateDotGraph(dotfile))

	data, err := os.ReadFile(dotfile)
	require.NoError(t, err)

	out := string(data)

	for _, want := range []string{"swift", "internal", "private", "public", "master", "storage-1"} {
		require.Containsf(t, out, want, "dot output misses %q", want)
	}

	// one undirected edge per (node, network) pair
	require.Equal(t, 2*3, strings.Count(out, "--"))
}
