package types

import (
	"github.com/docker/go-units"
)

// DefaultSchemaVersion is assumed when a settings file carries no version.
const DefaultSchemaVersion = "1.0"

// defaults applied when the settings file omits node resources.
const (
	defaultEnvironmentName = "swift"
	defaultMemory          = "2GB"
	defaultVCPU            = 1
	defaultSystemDisk      = "10GB"
	defaultDataDisk        = "50GB"
	defaultDataDiskCount   = 2
	defaultDiskFormat      = "qcow2"
)

// Settings defines the swiftbed settings as provided in the YAML file.
type Settings struct {
	Version  string                        `yaml:"version,omitempty"`
	Name     string                        `yaml:"name,omitempty"`
	Roles    *RoleNames                    `yaml:"roles,omitempty"`
	Defaults *NodeDefaults                 `yaml:"defaults,omitempty"`
	Networks map[string]*NetworkDefinition `yaml:"networks,omitempty"`
}

// RoleNames holds the ordered node name lists per role. The master node is
// implicit and not listed here.
type RoleNames struct {
	Keystones []string `yaml:"keystones,omitempty"`
	Storages  []string `yaml:"storages,omitempty"`
	Proxies   []string `yaml:"proxies,omitempty"`
}

// NetworkDefinition carries per-network overrides.
type NetworkDefinition struct {
	IPv4Subnet string `yaml:"ipv4_subnet,omitempty"`
}

// NodeDefaults defines the resources every described node gets. Sizes are
// human readable strings ("2GB", "512MB").
type NodeDefaults struct {
	Memory        string `yaml:"memory,omitempty"`
	VCPU          uint   `yaml:"vcpu,omitempty"`
	SystemDisk    string `yaml:"system-disk,omitempty"`
	DataDisk      string `yaml:"data-disk,omitempty"`
	DataDiskCount *uint  `yaml:"data-disk-count,omitempty"`
	DiskFormat    string `yaml:"disk-format,omitempty"`
}

func (s *Settings) GetVersion() string {
	if s == nil || s.Version == "" {
		return DefaultSchemaVersion
	}
	return s.Version
}

func (s *Settings) GetName() string {
	if s == nil || s.Name == "" {
		return defaultEnvironmentName
	}
	return s.Name
}

// GetRoles never returns nil so that callers can range over the lists
// without guarding.
func (s *Settings) GetRoles() *RoleNames {
	if s == nil || s.Roles == nil {
		return &RoleNames{}
	}
	return s.Roles
}

// GetSubnet returns the configured IPv4 subnet for the named network, or an
// empty string when none was set.
func (s *Settings) GetSubnet(network string) string {
	if s == nil || s.Networks == nil {
		return ""
	}
	if nd, ok := s.Networks[network]; ok && nd != nil {
		return nd.IPv4Subnet
	}
	return ""
}

// GetMemoryBytes parses the node memory size into bytes.
func (s *Settings) GetMemoryBytes() (uint64, error) {
	m := defaultMemory
	if s != nil && s.Defaults != nil && s.Defaults.Memory != "" {
		m = s.Defaults.Memory
	}
	size, err := units.RAMInBytes(m)
	if err != nil {
		return 0, err
	}
	return uint64(size), nil
}

func (s *Settings) GetVCPU() uint {
	if s != nil && s.Defaults != nil && s.Defaults.VCPU != 0 {
		return s.Defaults.VCPU
	}
	return defaultVCPU
}

// GetSystemDiskBytes parses the system disk size into bytes.
func (s *Settings) GetSystemDiskBytes() (uint64, error) {
	d := defaultSystemDisk
	if s != nil && s.Defaults != nil && s.Defaults.SystemDisk != "" {
		d = s.Defaults.SystemDisk
	}
	size, err := units.RAMInBytes(d)
	if err != nil {
		return 0, err
	}
	return uint64(size), nil
}

// GetDataDiskBytes parses the data disk size into bytes.
func (s *Settings) GetDataDiskBytes() (uint64, error) {
	d := defaultDataDisk
	if s != nil && s.Defaults != nil && s.Defaults.DataDisk != "" {
		d = s.Defaults.DataDisk
	}
	size, err := units.RAMInBytes(d)
	if err != nil {
		return 0, err
	}
	return uint64(size), nil
}

// GetDataDiskCount returns the number of data disks a storage node gets.
// An explicit zero in the settings file disables data disks.
func (s *Settings) GetDataDiskCount() uint {
	if s != nil && s.Defaults != nil && s.Defaults.DataDiskCount != nil {
		return *s.Defaults.DataDiskCount
	}
	return defaultDataDiskCount
}

func (s *Settings) GetDiskFormat() string {
	if s != nil && s.Defaults != nil && s.Defaults.DiskFormat != "" {
		return s.Defaults.DiskFormat
	}
	return defaultDiskFormat
}
