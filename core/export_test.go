package core

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/openstack-labs/swiftbed/types"
)

func describeTestBed(t *testing.T) *Bed {
	t.Helper()

	b, err := NewBed(WithSettings(&types.Settings{
		Roles: &types.RoleNames{
			Keystones: []string{"keystone-1"},
			Proxies:   []string{"proxy-1"},
		},
	}))
	require.NoError(t, err)

	_, err = b.DescribeEnvironment()
	require.NoError(t, err)

	return b
}

func TestGenerateExportDefaultTemplate(t *testing.T) {
	b := describeTestBed(t)

	var buf bytes.Buffer
	require.NoError(t, b.GenerateExport(&buf, ""))

	// the default template must produce valid json
	var got struct {
		Name     string   `json:"name"`
		Type     string   `json:"type"`
		Networks []string `json:"networks"`
		Nodes    []string `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Equal(t, "swift", got.Name)
	require.Equal(t, "swiftbed", got.Type)

	if diff := cmp.Diff([]string{"internal", "private", "public"}, got.Networks); diff != "" {
		t.Errorf("networks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"master", "keystone-1", "proxy-1"}, got.Nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateExportMissingTemplateFallsBack(t *testing.T) {
	b := describeTestBed(t)

	var buf bytes.Buffer
	require.NoError(t, b.GenerateExport(&buf, filepath.Join(t.TempDir(), "missing.tmpl")))

	var got struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Equal(t, "swift", got.Name)
	require.Equal(t, "swiftbed", got.Type)
}

func TestGenerateExportCustomTemplate(t *testing.T) {
	b := describeTestBed(t)

	tmpl := filepath.Join(t.TempDir(), "names.tmpl")
	require.NoError(t, os.WriteFile(tmpl, []byte("{{ .Name }}:{{ len .Nodes }}"), 0644))

	var buf bytes.Buffer
	require.NoError(t, b.GenerateExport(&buf, tmpl))

	require.Equal(t, "swift:3", buf.String())
}
