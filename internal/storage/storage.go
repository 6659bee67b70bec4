// Package storage keeps uploaded meter photos on the local filesystem and
// builds the public URLs they are served back at.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a directory-backed file store. It implements measure.FileStore.
type Dir struct {
	root    string
	baseURL string
}

func NewDir(root, baseURL string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating files directory: %w", err)
	}

	return &Dir{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes data under filename and returns the URL the file is reachable
// at. Any path components in filename are stripped.
func (d *Dir) Save(_ context.Context, filename string, data []byte) (string, error) {
	name := filepath.Base(filename)

	if err := os.WriteFile(filepath.Join(d.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return d.baseURL + "/files/" + name, nil
}

// Root returns the directory files are written to, for the static mount.
func (d *Dir) Root() string {
	return d.root
}
