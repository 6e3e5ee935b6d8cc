// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openstack-labs/swiftbed/core"
	"github.com/openstack-labs/swiftbed/utils"
)

var (
	debugCount   int
	logLevel     string
	timeout      time.Duration
	settingsFile string
	name         string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:               "swiftbed",
	Short:             "describe virtual test bed environments for swift CI deployments",
	PersistentPreRunE: preRunFn,
	Aliases:           []string{"sbed"},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.SilenceUsage = true
	RootCmd.PersistentFlags().CountVarP(&debugCount, "debug", "d", "enable debug mode")
	RootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "",
		"path to the settings file or a directory containing one")
	_ = RootCmd.MarkPersistentFlagFilename("settings", "*.yaml", "*.yml")
	RootCmd.PersistentFlags().StringVarP(&name, "name", "", "", "environment name")
	RootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "", 120*time.Second,
		"timeout for external API requests, e.g: 30s, 1m, 2m30s")
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info",
		"logging level; one of [trace, debug, info, warning, error, fatal]")
}

func preRunFn(cobraCmd *cobra.Command, _ []string) error {
	// setting log level
	switch {
	case debugCount > 0:
		log.SetLevel(log.DebugLevel)
	default:
		l, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}

		log.SetLevel(l)
	}

	// setting output to stderr, so that json and yaml outputs can be parsed
	log.SetOutput(os.Stderr)

	return getSettingsFilePath(cobraCmd)
}

// getSettingsFilePath finds a *.swiftbed.y*ml file in the current working
// directory if the file was not specified, falling back to the per-user
// settings location.
func getSettingsFilePath(cmd *cobra.Command) error {
	// set commands which use the settings file find functionality,
	// the rest don't need it
	switch cmd.Name() {
	case "describe", "inspect", "graph", "inventory", "export":
	default:
		return nil
	}

	if settingsFile != "" {
		return nil
	}

	log.Debugf("trying to find settings files automatically")

	files, err := filepath.Glob(settingsFileGlob)
	if err != nil {
		return err
	}

	switch len(files) {
	case 0:
		p, err := core.DefaultSettingsPath()
		if err != nil {
			return err
		}

		if !utils.FileExists(p) {
			return errors.New(
				"no settings files matching the pattern *.swiftbed.yml or *.swiftbed.yaml found")
		}

		settingsFile = p
	case 1:
		settingsFile = files[0]
	default:
		return fmt.Errorf(
			"more than one settings file matching the pattern %s found, can't pick one: %q",
			settingsFileGlob, files)
	}

	log.Debugf("settings file found: %s", settingsFile)

	return nil
}

const settingsFileGlob = "*.swiftbed.y*ml"

// newBed builds the bed object out of the persistent flags.
func newBed() (*core.Bed, error) {
	return core.NewBed(
		core.WithDebug(debugCount > 0),
		core.WithTimeout(timeout),
		core.WithSettingsFile(settingsFile),
		core.WithEnvironmentName(name),
	)
}
