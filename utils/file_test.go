// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")

	if err := CreateFile(path, "hello"); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("got %q, want %q", string(data), "hello")
	}

	// truncates on rewrite
	if err := CreateFile(path, "x"); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "x" {
		t.Errorf("got %q, want %q", string(data), "x")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	if FileExists(path) {
		t.Error("expected false for missing file")
	}

	if err := CreateFile(path, ""); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("expected true for existing file")
	}

	if FileExists(dir) {
		t.Error("expected false for a directory")
	}
	if !FileOrDirExists(dir) {
		t.Error("expected true for an existing directory")
	}
}

func TestCreateDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")

	if err := CreateDirectory(path, 0755); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
	if !FileOrDirExists(path) {
		t.Error("expected directory to exist")
	}
}
