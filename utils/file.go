// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"os"
)

// FileExists returns true if a file referenced by filename exists
// and is a regular file.
func FileExists(filename string) bool {
	f, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !f.IsDir()
}

// FileOrDirExists returns true if a file or dir referenced by path exists.
func FileOrDirExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// CreateFile writes content to a file referenced by path, truncating it if
// it already exists.
func CreateFile(file, content string) error {
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666) // skipcq: GSC-G302
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

// CreateDirectory creates a directory with all its parents by a path
// and with the given permissions.
func CreateDirectory(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
