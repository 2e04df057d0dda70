// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

type localFS struct {
	fs   afero.Fs
	root string
}

// NewLocalFS returns a Store over a filesystem tree rooted at root.
// Used for local dataset mirrors and as a test double.
func NewLocalFS(fs afero.Fs, root string) Store {
	return &localFS{fs: fs, root: root}
}

func (l *localFS) path(key string) string {
	return path.Join(l.root, key)
}

func (l *localFS) Has(_ context.Context, key string) (bool, error) {
	ok, err := afero.Exists(l.fs, l.path(key))
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	return ok, nil
}

func (l *localFS) Get(_ context.Context, key string) (io.ReadCloser, int64, error) {
	f, err := l.fs.Open(l.path(key))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open %s: %w", key, err)
	}
	size := SizeUnknown
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	return f, size, nil
}

func (l *localFS) Keys(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	err := afero.Walk(l.fs, l.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		key := strings.TrimPrefix(strings.TrimPrefix(p, l.root), "/")
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", l.root, err)
	}
	return keys, nil
}
