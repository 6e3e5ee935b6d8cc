// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a8m/envsubst"
	gover "github.com/hashicorp/go-version"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	swifterrors "github.com/openstack-labs/swiftbed/errors"
	"github.com/openstack-labs/swiftbed/types"
	"github.com/openstack-labs/swiftbed/utils"
)

const (
	settingsGlob = "*.swiftbed.y*ml"
	dotEnvFile   = ".env"
)

// settings schema versions this build can read.
var schemaConstraint = gover.MustConstraints(gover.NewConstraint(">= 1.0, < 2.0"))

// FindSettingsFileByPath takes a settings path, which might be the path to a
// directory, and returns the settings file name if found.
func FindSettingsFileByPath(path string) (string, error) {
	finfo, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	// by default we assume the path points to a settings file
	file := path

	// we might have gotten a dirname
	// lets try to find a single *.swiftbed.y*ml
	if finfo.IsDir() {
		matches, err := filepath.Glob(filepath.Join(path, settingsGlob))
		if err != nil {
			return "", err
		}

		switch len(matches) {
		case 1:
			// single file found, using it
			file = matches[0]
		case 0:
			// no files found
			return "", fmt.Errorf("no settings files found in directory %q", path)
		default:
			// multiple files found
			var filenames []string
			// extract just filename -> no path
			for _, match := range matches {
				filenames = append(filenames, filepath.Base(match))
			}

			return "", fmt.Errorf(
				"found multiple settings files [ %s ] in a given directory %q. "+
					"Provide the specific filename",
				strings.Join(filenames, ", "),
				path,
			)
		}
	}

	return file, nil
}

// DefaultSettingsPath returns the per-user settings file location.
func DefaultSettingsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "."+defaultPrefix, "settings.yml"), nil
}

// LoadSettings reads the settings file referenced by path, expands
// environment variables in it and parses it into a Settings structure.
// A .env file living next to the settings file is loaded first.
func LoadSettings(path string) (*types.Settings, error) {
	file, err := FindSettingsFileByPath(path)
	if err != nil {
		return nil, err
	}

	envFile := filepath.Join(filepath.Dir(file), dotEnvFile)
	if utils.FileExists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %v", envFile, err)
		}

		log.Debugf("loaded env file: %s", envFile)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	// expand env vars if any
	data, err = envsubst.Bytes(data)
	if err != nil {
		return nil, err
	}

	s := &types.Settings{}

	err = yaml.UnmarshalStrict(data, s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %v", file, err)
	}

	if err := checkSchemaVersion(s); err != nil {
		return nil, err
	}

	return s, nil
}

func checkSchemaVersion(s *types.Settings) error {
	v, err := gover.NewVersion(s.GetVersion())
	if err != nil {
		return fmt.Errorf("%w: %v", swifterrors.ErrIncorrectInput, err)
	}

	if !schemaConstraint.Check(v) {
		return fmt.Errorf("%w: version %s does not satisfy %s",
			swifterrors.ErrUnsupportedSchema, v, schemaConstraint)
	}

	return nil
}
