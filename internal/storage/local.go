// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local stores uploads on the local filesystem under a single directory.
// Files are served by the HTTP server under baseURL.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates the uploads directory if needed and returns a Local
// storage rooted there. baseURL is the public path prefix, e.g. "/uploads".
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the file to the uploads directory and returns its URL.
func (l *Local) Save(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	// Uploads never contain path separators, but never trust the name.
	name := filepath.Base(filename)

	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return l.baseURL + "/" + name, nil
}

// Delete removes the file behind the URL. Missing files are tolerated.
func (l *Local) Delete(ctx context.Context, url string) error {
	name := filepath.Base(url)
	if name == "." || name == "/" {
		return fmt.Errorf("delete upload: invalid url %q", url)
	}

	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// Dir returns the directory uploads are written to, for static serving.
func (l *Local) Dir() string {
	return l.dir
}
