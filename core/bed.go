package core

import (
	"time"

	"github.com/openstack-labs/swiftbed/types"
	"github.com/pkg/errors"
)

const (
	// prefix is used to distinct swiftbed created files and resources.
	defaultPrefix = "swiftbed"
	// swiftbed's reserved OUI for generated interface MACs.
	SwiftbedOUI = "aa:5b:ed"
)

// Bed describes one swift test bed: the settings it is built from and the
// environment produced out of them.
type Bed struct {
	Settings *types.Settings
	Env      *types.Environment

	describer NodeDescriber

	debug   bool
	timeout time.Duration
}

type BedOption func(b *Bed) error

func WithDebug(d bool) BedOption {
	return func(b *Bed) error {
		b.debug = d
		return nil
	}
}

func WithTimeout(dur time.Duration) BedOption {
	return func(b *Bed) error {
		if dur <= 0 {
			return errors.New("zero or negative timeouts are not allowed")
		}
		b.timeout = dur
		return nil
	}
}

// WithSettingsFile loads the settings file referenced by file into the bed.
func WithSettingsFile(file string) BedOption {
	return func(b *Bed) error {
		if file == "" {
			return nil
		}

		s, err := LoadSettings(file)
		if err != nil {
			return errors.Wrap(err, "failed to read settings file")
		}

		b.Settings = s

		return nil
	}
}

// WithSettings sets the settings value directly, bypassing file loading.
func WithSettings(s *types.Settings) BedOption {
	return func(b *Bed) error {
		if s == nil {
			return errors.New("nil settings")
		}
		b.Settings = s
		return nil
	}
}

// WithEnvironmentName overrides the environment name from the settings.
func WithEnvironmentName(n string) BedOption {
	return func(b *Bed) error {
		if n != "" {
			b.Settings.Name = n
		}
		return nil
	}
}

// WithDescriber sets the node describer used to build node definitions.
func WithDescriber(d NodeDescriber) BedOption {
	return func(b *Bed) error {
		if d == nil {
			return errors.New("nil node describer")
		}
		b.describer = d
		return nil
	}
}

// NewBed defines a new swift test bed. Options are applied in order, so
// settings-loading options must precede options that mutate the settings.
func NewBed(opts ...BedOption) (*Bed, error) {
	b := &Bed{
		Settings: &types.Settings{},
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	if b.describer == nil {
		b.describer = NewDefaultDescriber(b.Settings)
	}

	return b, nil
}
