// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage abstracts where uploaded media files live. The default
// backend writes to a local uploads directory served by the HTTP server;
// an S3-compatible backend is available for object storage deployments.
package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files and resolves their public URLs.
type Storage interface {
	// Save writes the file under the given name and returns the public
	// URL it will be served from.
	Save(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)

	// Delete removes the file behind a previously returned URL. A file
	// already gone is not an error; the database record is the source
	// of truth and stray files are harmless.
	Delete(ctx context.Context, url string) error
}
