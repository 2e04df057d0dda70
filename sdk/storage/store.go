// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

// Package storage provides read-only access to the dataset object store.
package storage

import (
	"context"
	"io"
)

// SizeUnknown is returned by Get when the backend does not report a length.
const SizeUnknown int64 = -1

// Store is a read-only view of a keyed object store. Keys use forward
// slashes regardless of backend.
type Store interface {
	// Has reports whether the key exists.
	Has(ctx context.Context, key string) (bool, error)
	// Get opens the object for reading. The returned size is the content
	// length in bytes, or SizeUnknown. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, int64, error)
	// Keys lists object keys under a prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Downloader is implemented by stores that can write an object straight
// to a WriterAt. Used for the large frame archives; callers fall back to
// Get when a store does not implement it.
type Downloader interface {
	DownloadTo(ctx context.Context, key string, w io.WriterAt) (int64, error)
}
