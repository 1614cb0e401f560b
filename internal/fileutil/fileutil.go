// Package fileutil holds file modes and helpers shared by code that writes
// generated sources.
package fileutil

import (
	"bufio"
	"bytes"
	"os"
)

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for directories holding generated
// source code.
const DirReadableByAll os.FileMode = 0o755

// HasHeader reports whether the first line of the file at path is header.
// A missing file is reported as false without an error.
func HasHeader(path, header string) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // callers pass paths inside the output directory
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	line, err := bufio.NewReader(f).ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return false, nil //nolint:nilerr // empty or unreadable first line means no header
	}
	return string(bytes.TrimRight(line, "\r\n")) == header, nil
}
