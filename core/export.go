// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	_ "embed"
	"io"
	"path/filepath"
	"text/template"

	log "github.com/sirupsen/logrus"

	"github.com/openstack-labs/swiftbed/types"
)

// EnvironmentExport holds the data passed to export templates.
type EnvironmentExport struct {
	Name     string           `json:"name"`
	Type     string           `json:"type"`
	Networks []*types.Network `json:"networks,omitempty"`
	Nodes    []*types.Node    `json:"nodes,omitempty"`
}

//go:embed export_templates/auto.tmpl
var defaultExportTemplate string

// GenerateExport generates the environment data export and writes it to f.
// `p` is the path to a user provided template; when empty, the built-in
// template is used. A failing template falls back to a minimal document that
// at least names the environment.
func (b *Bed) GenerateExport(f io.Writer, p string) error {
	err := b.exportEnvironmentDataWithTemplate(f, p)
	if err != nil {
		log.Warnf("failed to execute the export template %q: %v", p, err)

		// a minimal data file that just names an environment that failed to
		// generate proper export data
		return b.exportEnvironmentDataWithMinimalTemplate(f)
	}

	return nil
}

// exportEnvironmentDataWithTemplate generates and writes environment data to
// w using a template referenced by path `p`.
func (b *Bed) exportEnvironmentDataWithTemplate(w io.Writer, p string) error {
	name := "export"
	if p != "" {
		name = filepath.Base(p)
	}

	t := template.New(name)

	var err error

	if p != "" {
		_, err = t.ParseFiles(p)
	} else {
		_, err = t.Parse(defaultExportTemplate)
	}
	if err != nil {
		return err
	}

	e := EnvironmentExport{
		Name:     b.Env.Name,
		Type:     defaultPrefix,
		Networks: b.Env.Networks,
		Nodes:    b.Env.Nodes,
	}

	err = t.Execute(w, e)
	if err != nil {
		return err
	}

	log.Debugf("exported environment data using %q template", p)

	return nil
}

// generates and writes environment data to w using a minimal built-in
// template.
func (b *Bed) exportEnvironmentDataWithMinimalTemplate(w io.Writer) error {
	tdef := `{
  "name": "{{ .Name }}",
  "type": "{{ .Type }}"
}`

	t, err := template.New("minimal").Parse(tdef)
	if err != nil {
		return err
	}

	e := EnvironmentExport{
		Name: b.Env.Name,
		Type: defaultPrefix,
	}

	err = t.Execute(w, e)
	if err != nil {
		return err
	}

	log.Debug("exported environment data using built-in minimal template")

	return nil
}
