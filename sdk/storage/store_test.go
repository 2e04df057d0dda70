// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocalFSStore(t testing.TB) Store {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "remote/processed_data/penguin/transforms_train.json", []byte(`{"frames":[]}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "remote/processed_data/penguin/transforms_val.json", []byte(`{}`), 0o644))

	return NewLocalFS(fs, "remote")
}

func setupHTTPStore(t testing.TB) Store {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/processed_data/penguin/transforms_train.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"frames":[]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewHTTP(srv.URL, srv.Client())
}

func TestLocalFSHas(t *testing.T) {
	store := setupLocalFSStore(t)
	ctx := context.Background()

	has, err := store.Has(ctx, "processed_data/penguin/transforms_train.json")
	require.NoError(t, err)
	require.True(t, has)

	has, err = store.Has(ctx, "processed_data/penguin/frames_1.tar.gz")
	require.NoError(t, err)
	require.False(t, has)
}

func TestLocalFSGet(t *testing.T) {
	store := setupLocalFSStore(t)

	rdr, size, err := store.Get(context.Background(), "processed_data/penguin/transforms_train.json")
	require.NoError(t, err)
	defer rdr.Close()

	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, `{"frames":[]}`, string(b))
	assert.Equal(t, int64(len(b)), size)
}

func TestLocalFSGetMissing(t *testing.T) {
	store := setupLocalFSStore(t)

	_, _, err := store.Get(context.Background(), "processed_data/wolf/transforms_train.json")
	require.Error(t, err)
}

func TestLocalFSKeys(t *testing.T) {
	store := setupLocalFSStore(t)

	keys, err := store.Keys(context.Background(), "processed_data/penguin/")
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	keys, err = store.Keys(context.Background(), "processed_data/wolf/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestHTTPGet(t *testing.T) {
	store := setupHTTPStore(t)

	rdr, size, err := store.Get(context.Background(), "processed_data/penguin/transforms_train.json")
	require.NoError(t, err)
	defer rdr.Close()

	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, `{"frames":[]}`, string(b))
	assert.Equal(t, int64(len(b)), size)
}

func TestHTTPGetMissing(t *testing.T) {
	store := setupHTTPStore(t)

	_, _, err := store.Get(context.Background(), "processed_data/wolf/frames_1.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPHas(t *testing.T) {
	store := setupHTTPStore(t)
	ctx := context.Background()

	has, err := store.Has(ctx, "processed_data/penguin/transforms_train.json")
	require.NoError(t, err)
	require.True(t, has)

	has, err = store.Has(ctx, "processed_data/wolf/frames_1.tar.gz")
	require.NoError(t, err)
	require.False(t, has)
}

func TestHTTPKeysUnsupported(t *testing.T) {
	store := setupHTTPStore(t)

	_, err := store.Keys(context.Background(), "processed_data/")
	require.Error(t, err)
}
